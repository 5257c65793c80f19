package exceptions

import (
	"errors"
	"testing"

	"nivlek-client/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestErrBackendRejected(t *testing.T) {
	t.Run("UsesBackendMessageWhenPresent", func(t *testing.T) {
		err := ErrBackendRejected(constvars.StatusUnauthorized, "Invalid email or password", "Failed to fetch Profile")
		assert.Equal(t, "Invalid email or password", err.ClientMessage)
		assert.Equal(t, constvars.StatusUnauthorized, err.StatusCode)
	})

	t.Run("FallsBackWhenBodyHadNoMessage", func(t *testing.T) {
		err := ErrBackendRejected(constvars.StatusInternalServerError, "", "Failed to fetch Patient")
		assert.Equal(t, "Failed to fetch Patient", err.ClientMessage)
	})

	t.Run("NotANetworkError", func(t *testing.T) {
		err := ErrBackendRejected(constvars.StatusNotFound, "", "Failed to fetch Patient")
		assert.False(t, IsNetworkError(err))
	})
}

func TestErrSendHTTPRequest(t *testing.T) {
	err := ErrSendHTTPRequest(errors.New("dial tcp: connection refused"))

	assert.True(t, IsNetworkError(err))
	assert.Equal(t, constvars.ErrClientCannotReachBackend, err.ClientMessage)
	assert.Equal(t, constvars.StatusServiceUnavailable, err.StatusCode)
}

func TestClientMessageOf(t *testing.T) {
	t.Run("CustomError", func(t *testing.T) {
		err := WrapWithoutError(constvars.StatusBadRequest, "Cannot do that", "dev detail")
		assert.Equal(t, "Cannot do that", ClientMessageOf(err))
	})

	t.Run("PlainError", func(t *testing.T) {
		assert.Equal(t, "plain failure", ClientMessageOf(errors.New("plain failure")))
	})
}

func TestCustomErrorLocation(t *testing.T) {
	err := ErrTokenMissing(nil)

	// Location should point at this test, not at the exceptions package.
	assert.Contains(t, err.Location.File, "error_test.go")
	assert.Contains(t, err.Error(), constvars.ErrDevAuthTokenMissing)
}
