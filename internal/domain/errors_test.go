package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewServiceUnavailableError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "SERVICE_UNAVAILABLE")
	assert.Contains(t, err.Error(), "dial tcp: refused")
}

func TestDomainError_MarshalHidesDiagnostics(t *testing.T) {
	err := NewMalformedJSONError("{ secret raw output", errors.New("unexpected EOF"))

	b, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"code":"MALFORMED_JSON","message":"matched substring is not valid JSON"}`, string(b))
	assert.Equal(t, "{ secret raw output", err.Raw)
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("generating: %w", NewSchemaMismatchError("bad shape", nil))

	assert.Equal(t, CodeSchemaMismatch, CodeOf(wrapped))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}
