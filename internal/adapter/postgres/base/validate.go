package base

import "github.com/pavlo-petrychenko/labb/internal/domain"

// ValidateID rejects non-positive surrogate keys.
func ValidateID(id int64, field string) error {
	if id <= 0 {
		return domain.NewValidationError(field, "must be positive")
	}
	return nil
}
