package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) Unwrap() error {
	return e.err
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...interface{}) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

// NewUnauthorizedError marks a remote response that signals an expired or
// invalid bearer credential. The web layer turns this into a redirect to
// the sign-in page.
func NewUnauthorizedError(err error) *httpError {
	return newError(http.StatusUnauthorized, err)
}

func NewAuthenticationError(err error) *httpError {
	return newError(http.StatusForbidden, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, err)
}

func GetHttpStatus(err error) int {
	if err != nil {
		myError, ok := err.(httpErrorCoder)
		if ok {
			return myError.GetHTTPErrorCode()
		}
	}
	return http.StatusInternalServerError
}

func IsUnauthorized(err error) bool {
	return err != nil && GetHttpStatus(err) == http.StatusUnauthorized
}

// GetUserMessage strips the status wrapping and returns the underlying
// message. Pages that show an error to the user render this, never the
// full Error() string.
func GetUserMessage(err error) string {
	if err == nil {
		return ""
	}

	var coded *httpError
	if errors.As(err, &coded) {
		return coded.err.Error()
	}

	return err.Error()
}
