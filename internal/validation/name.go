package validation

import (
	"fmt"
	"strings"
)

// ValidateName validates a target name
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if len(trimmed) > 100 {
		return fmt.Errorf("%w: name is too long (max 100 characters)", ErrInvalid)
	}

	return nil
}
