package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(ErrInvalidRequest, "culture is required")
	assert.Equal(t, "[INVALID_REQUEST] culture is required", err.Error())

	cause := errors.New("dial tcp: refused")
	wrapped := NewError(ErrAnalyzerUnavailable, "analyzer down").WithCause(cause)
	assert.Contains(t, wrapped.Error(), "refused")
	assert.ErrorIs(t, wrapped, cause)
}

func TestErrorHelpers(t *testing.T) {
	err := NewAnalyzerUnavailableError(errors.New("boom"))
	assert.True(t, IsRetryable(err))
	assert.True(t, IsErrorCode(err, ErrAnalyzerUnavailable))
	assert.Equal(t, ErrAnalyzerUnavailable, GetErrorCode(err))

	tmplErr := NewUnknownTemplateError("hammock")
	assert.False(t, IsRetryable(tmplErr))
	assert.Contains(t, tmplErr.Error(), `"hammock"`)

	assert.Empty(t, GetErrorCode(errors.New("plain")))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsErrorCode(nil, ErrInvalidRequest))
}
