package constants

import "net/http"

// CodedError is an error carrying the HTTP status it should be reported with.
// Handlers return these (possibly wrapped), the api error handler unwraps them.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound = NewCodedError(http.StatusNotFound, "record not found")

	ErrMissingToken = NewCodedError(http.StatusUnauthorized, "authorization required")
	ErrTokenExpired = NewCodedError(http.StatusUnauthorized, "token expired")
	ErrTokenInvalid = NewCodedError(http.StatusUnauthorized, "invalid token")

	ErrForbidden      = NewCodedError(http.StatusForbidden, "insufficient access rights")
	ErrAdminRequired  = NewCodedError(http.StatusForbidden, "admin rights required")
	ErrEmptyBody      = NewCodedError(http.StatusBadRequest, "no data provided")
	ErrEmailTaken     = NewCodedError(http.StatusBadRequest, "user with this email already exists")
	ErrBadCredentials = NewCodedError(http.StatusUnauthorized, "invalid credentials")
	ErrUserNotFound   = NewCodedError(http.StatusNotFound, "user not found")
	ErrResetToken     = NewCodedError(http.StatusBadRequest, "invalid or expired token")
)

// NewValidationError reports a malformed or out-of-range input.
func NewValidationError(msg string) *CodedError {
	return NewCodedError(http.StatusBadRequest, msg)
}
