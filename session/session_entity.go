package session

import (
	"context"
	"time"

	"github.com/fundwit/go-commons/types"
)

// Identity is the operator who signed a session. There is no account store:
// operators identify themselves by name only, and the id is minted at login.
type Identity struct {
	ID   types.ID `json:"id"`
	Name string   `json:"name"`
}

type Session struct {
	Token    string   `json:"token"`
	Identity Identity `json:"identity"`

	SigningTime time.Time `json:"-"`

	Context context.Context `json:"-"`
}

func (s *Session) Clone() Session {
	return Session{Token: s.Token, Identity: s.Identity, SigningTime: s.SigningTime, Context: s.Context}
}
