package testinfra

import (
	"avda/session"
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

// ExecuteRequest runs req against router and returns status, body and headers.
func ExecuteRequest(req *http.Request, router *gin.Engine) (int, string, http.Header) {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code, w.Body.String(), w.Header()
}

// BuildSession builds an operator session for direct service calls in tests.
func BuildSession(uid types.ID, name string) *session.Session {
	return &session.Session{Token: "test-token", Identity: session.Identity{ID: uid, Name: name},
		Context: context.Background()}
}
