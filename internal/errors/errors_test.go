package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCode(t *testing.T) {
	base := InvalidInput("bad column name")
	wrapped := Wrap(base, "loading column")

	require.Error(t, wrapped)
	assert.Equal(t, CodeInvalidInput, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "loading column")
	assert.Contains(t, wrapped.Error(), "bad column name")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "nothing happened"))
	assert.NoError(t, Wrapf(nil, "nothing %s", "happened"))
}

func TestWrapForeignError(t *testing.T) {
	cause := stderrors.New("disk on fire")
	wrapped := Wrap(cause, "reading file")

	assert.Equal(t, CodeInternalError, GetCode(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
}
