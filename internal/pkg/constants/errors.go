package constants

import "net/http"

// CodedError is a domain error carrying the HTTP status it should surface
// with. The API error handler unwraps to the first CodedError in the chain.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string { return e.msg }

func (e *CodedError) Code() int { return e.code }

var (
	ErrProjectNotFound = NewCodedError(http.StatusNotFound, "Project not found")
	ErrReportNotFound  = NewCodedError(http.StatusNotFound, "Report not found")

	ErrFileRequired          = NewCodedError(http.StatusBadRequest, "file is required")
	ErrProjectFieldRequired  = NewCodedError(http.StatusBadRequest, "project field is required")
	ErrInvalidProjectPayload = NewCodedError(http.StatusBadRequest, "Invalid project payload")
	ErrInvalidJSONBody       = NewCodedError(http.StatusBadRequest, "invalid json body")
)
