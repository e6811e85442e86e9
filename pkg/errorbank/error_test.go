package errorbank

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodePerKind(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{BadRequest("bad"), http.StatusBadRequest},
		{Unauthorized("denied"), http.StatusUnauthorized},
		{Conflict("dup"), http.StatusConflict},
		{NotFound("missing"), http.StatusNotFound},
		{Unprocessable("nope"), http.StatusUnprocessableEntity},
		{Unavailable("down"), http.StatusServiceUnavailable},
		{Internal("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode())
	}
}

func TestWithCauseUnwraps(t *testing.T) {
	cause := errors.New("root cause")
	err := Internal("wrapped", WithCause(cause))

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "root cause")
}

func TestWithDetailAccumulates(t *testing.T) {
	err := BadRequest("invalid", WithDetail("field", "amount"), WithDetail("reason", "negative"))

	details := err.Details()
	require.Len(t, details, 2)
	assert.Equal(t, "amount", details["field"])
}

func TestFromPassesThroughAppErrors(t *testing.T) {
	original := NotFound("missing")

	assert.Same(t, original, From(original))
}

func TestFromWrapsPlainErrors(t *testing.T) {
	plain := errors.New("oops")

	wrapped := From(plain)
	require.NotNil(t, wrapped)
	assert.Equal(t, KindInternal, wrapped.Kind())
	assert.ErrorIs(t, wrapped, plain)
}

func TestFromNil(t *testing.T) {
	assert.Nil(t, From(nil))
}
