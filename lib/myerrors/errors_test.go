package myerrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err            error
		expectedStatus int
	}{
		{NewInvalidInputError(fmt.Errorf("bad")), http.StatusBadRequest},
		{NewNotFoundError(fmt.Errorf("missing")), http.StatusNotFound},
		{NewUnauthorizedError(fmt.Errorf("expired")), http.StatusUnauthorized},
		{NewAuthenticationError(fmt.Errorf("forbidden")), http.StatusForbidden},
		{NewInternalError(fmt.Errorf("broken")), http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expectedStatus, GetHttpStatus(tc.err))
	}
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(NewUnauthorizedError(fmt.Errorf("expired"))))
	assert.False(t, IsUnauthorized(NewInternalError(fmt.Errorf("broken"))))
	assert.False(t, IsUnauthorized(nil))
}

func TestGetUserMessage(t *testing.T) {
	assert.Equal(t, "Your card was declined.", GetUserMessage(NewInvalidInputError(fmt.Errorf("Your card was declined."))))
	assert.Equal(t, "plain", GetUserMessage(fmt.Errorf("plain")))
	assert.Equal(t, "", GetUserMessage(nil))
	assert.NotContains(t, GetUserMessage(NewUnavailableError(fmt.Errorf("api down"))), "status:")
}
