package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	err := error(NotFoundError{ID: 99999})

	assert.Equal(t, "Asset with ID 99999 not found", err.Error())
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrStorage))

	var nf NotFoundError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &nf))
	assert.Equal(t, int64(99999), nf.ID)
}

func TestDuplicateSerialNumberError(t *testing.T) {
	err := error(DuplicateSerialNumberError{SerialNumber: "SN-001"})

	assert.Equal(t, "Asset with serial number 'SN-001' already exists", err.Error())
	assert.True(t, errors.Is(err, ErrDuplicateSerialNumber))

	var dup DuplicateSerialNumberError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "SN-001", dup.SerialNumber)
}

func TestValidationError_Details(t *testing.T) {
	err := NewValidationError("invalid input").
		WithDetail("purchase_price", "must be greater than 0").
		WithDetail("name", "is required")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "invalid input", err.Error())
	assert.Len(t, err.Details, 2)

	var zero ValidationError
	zero.WithDetail("x", "y")
	assert.Equal(t, "y", zero.Details["x"])
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("connection reset")

	err := NewStorageError("failed to create asset", cause)
	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "failed to create asset")
	assert.Contains(t, err.Error(), "connection reset")

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, NewStorageError("x", nil))
	})

	t.Run("domain errors pass through", func(t *testing.T) {
		dup := DuplicateSerialNumberError{SerialNumber: "A"}
		got := NewStorageError("failed", dup)
		assert.Equal(t, error(dup), got)
		assert.False(t, errors.Is(got, ErrStorage))
	})
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(NotFoundError{ID: 1}))
	assert.True(t, IsDomainError(fmt.Errorf("x: %w", DuplicateSerialNumberError{})))
	assert.True(t, IsDomainError(NewValidationError("bad")))
	assert.True(t, IsDomainError(&StorageError{Message: "m"}))
	assert.False(t, IsDomainError(errors.New("boom")))
}
