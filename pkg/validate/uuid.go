package validate

import (
	"github.com/google/uuid"
)

const canonicalUUIDLen = 36

// IsUUID accepts only the canonical 8-4-4-4-12 form.
func IsUUID(s string) bool {
	if len(s) != canonicalUUIDLen {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
