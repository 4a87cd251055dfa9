package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidInput_WrapsSentinel(t *testing.T) {
	err := InvalidInput("badge list needs at least 2 entries")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "INVALID_INPUT")
	assert.Contains(t, err.Error(), "badge list needs at least 2 entries")
}

func TestAlreadyExists_MessageFormat(t *testing.T) {
	err := AlreadyExists("product", "serial_number", "FS-2026-001")

	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), `product with serial_number "FS-2026-001" already exists`)
}

func TestInternal_PreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}

func TestWrap_AddsContext(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, "seed database")

	require.Error(t, err)
	assert.Equal(t, "seed database: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAppError_As(t *testing.T) {
	var appErr *AppError
	err := InvalidInput("nope")

	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "INVALID_INPUT", appErr.Code)
}
