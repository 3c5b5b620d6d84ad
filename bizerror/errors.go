package bizerror

import (
	"errors"
	"net/http"
)

var ErrUnauthenticated = errors.New("unauthenticated")
var ErrNotFound = errors.New("record not found")
var ErrNameConflict = errors.New("simulation case name already used")

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// ErrWorkingPathUnavailable reports a working path which does not exist
// and could not be created, or exists but is not a directory.
type ErrWorkingPathUnavailable struct {
	Path  string
	Cause error
}

func (e *ErrWorkingPathUnavailable) Unwrap() error {
	return e.Cause
}
func (e *ErrWorkingPathUnavailable) Error() string {
	if e.Cause != nil {
		return "working path unavailable: " + e.Path + ": " + e.Cause.Error()
	}
	return "working path unavailable: " + e.Path
}
func (e *ErrWorkingPathUnavailable) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "simulation_case.working_path_unavailable",
		Message: e.Error(), Data: e.Path}
}
