package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("ErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewUpstreamFetchError("overview fetch failed", cause)

		assert.Equal(t, "UPSTREAM_FETCH_FAILED: overview fetch failed (caused by: connection refused)", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("ErrorWithoutCause", func(t *testing.T) {
		err := NewLocationNotFoundError("no area matches")

		assert.Equal(t, "LOCATION_NOT_FOUND: no area matches", err.Error())
	})
}

func TestTypeOf(t *testing.T) {
	t.Run("DirectAppError", func(t *testing.T) {
		assert.Equal(t, ErrorTypeDataUnavailable, TypeOf(NewDataUnavailableError("gone", nil)))
	})

	t.Run("WrappedAppError", func(t *testing.T) {
		wrapped := fmt.Errorf("resolving: %w", NewLocationNotFoundError("no match"))
		assert.Equal(t, ErrorTypeLocationNotFound, TypeOf(wrapped))
	})

	t.Run("ForeignError", func(t *testing.T) {
		assert.Equal(t, ErrorTypeUnknown, TypeOf(errors.New("boom")))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
	})
}
