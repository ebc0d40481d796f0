package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorWrapping(t *testing.T) {
	cause := errors.New("row not found")
	appErr := ErrNotFound(cause)

	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)

	var target *AppError
	assert.True(t, errors.As(appErr, &target))
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := InternalError(errors.New("pq: connection refused"))

	b, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(b), "connection refused")
	assert.Contains(t, string(b), "Internal server error")
}

func TestInvalidTransitionIsConflict(t *testing.T) {
	appErr := ErrInvalidTransition("application", "already decided")
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
	assert.Equal(t, CodeInvalidTransition, appErr.Code)
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	details := map[string]string{"email": "email must be a valid email address"}
	appErr := ValidationError(details)

	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}
