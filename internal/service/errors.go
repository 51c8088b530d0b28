package service

import (
	"errors"
	"fmt"

	"github.com/templui/nyr/internal/progress"
	"github.com/templui/nyr/internal/repository"
	"github.com/templui/nyr/internal/validation"
)

var (
	ErrInvalidTarget = progress.ErrInvalidTarget
	ErrNotFound      = repository.ErrNotFound
	ErrValidation    = validation.ErrInvalid
	ErrStorage       = errors.New("storage error")
)

// storageErr classifies a repository error: lookup misses pass through,
// anything else becomes a storage failure.
func storageErr(op string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
