package service

import (
	"github.com/Estefano-cmd/impulsoApi/internal/repository"
	"github.com/Estefano-cmd/impulsoApi/internal/validation"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when the requested record or result set is empty
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when a password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports input rejected before reaching the store
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError carries a failure of the record store. Its message is the
// underlying error text unchanged.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// fromStore maps repository errors onto the service error taxonomy
func fromStore(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return &StorageError{Err: err}
}

// validate runs struct validation and wraps failures in a ValidationError
func validate(v interface{}) error {
	if err := validation.ValidateStruct(v); err != nil {
		return &ValidationError{Message: validation.Message(err)}
	}
	return nil
}
