// Package common defines the error taxonomy shared by the repository,
// service and transport layers. Each kind is a concrete type carrying the
// context needed to render a message, and each one also matches a sentinel
// so callers can use either errors.As or errors.Is.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound              = errors.New("not found")
	ErrDuplicateSerialNumber = errors.New("duplicate serial number")

	// Input errors raised before storage is touched.
	ErrValidation = errors.New("validation error")

	// Unclassified persistence failures.
	ErrStorage = errors.New("storage error")
)

// NotFoundError reports that no asset with ID exists.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Asset with ID %d not found", e.ID)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateSerialNumberError reports that SerialNumber is already held by
// another asset.
type DuplicateSerialNumberError struct {
	SerialNumber string
}

func (e DuplicateSerialNumberError) Error() string {
	return fmt.Sprintf("Asset with serial number '%s' already exists", e.SerialNumber)
}

func (e DuplicateSerialNumberError) Is(target error) bool { return target == ErrDuplicateSerialNumber }

// ValidationError describes structurally invalid input. Details maps a field
// name to the reason it was rejected.
type ValidationError struct {
	Message string
	Details map[string]any
}

// NewValidationError builds a ValidationError with an empty details map.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message, Details: map[string]any{}}
}

// WithDetail adds a field-level reason and returns the receiver.
func (e *ValidationError) WithDetail(field string, reason any) *ValidationError {
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Details[field] = reason
	return e
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StorageError wraps an unexpected persistence failure. Message names the
// operation that failed; Err is the driver error.
type StorageError struct {
	Message string
	Err     error
}

// NewStorageError wraps err unless it already belongs to the taxonomy, in
// which case it is returned as is.
func NewStorageError(message string, err error) error {
	if err == nil {
		return nil
	}
	if IsDomainError(err) {
		return err
	}
	return &StorageError{Message: message, Err: err}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return "Database error: " + e.Message
	}
	return fmt.Sprintf("Database error: %s: %v", e.Message, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

// IsDomainError reports whether err is one of the taxonomy kinds.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrDuplicateSerialNumber) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrStorage)
}
