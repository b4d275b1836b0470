package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// IsUniqueViolation detects a Postgres unique violation (code "23505").
// String fallback keeps it compatible with both lib/pq and wrapped pgx errors.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}

// ValidatorFieldErrors flattens validator.v10 errors into the response field map.
func ValidatorFieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		out[field] = append(out[field], fe.Tag())
	}
	return out
}
