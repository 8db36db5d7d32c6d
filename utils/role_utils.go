package utils

import (
	"strings"
)

var ValidEmployeeRoles = map[string]bool{
	"owner":    true,
	"employee": true,
}

// ValidateAndNormalizeRole validates and normalizes a role string.
// Returns the normalized role (lowercase) and a boolean indicating if it's valid.
func ValidateAndNormalizeRole(role string) (string, bool) {
	normalized := strings.ToLower(role)
	return normalized, ValidEmployeeRoles[normalized]
}

// IsValidRole checks if a role is valid without normalizing it
func IsValidRole(role string) bool {
	return ValidEmployeeRoles[strings.ToLower(role)]
}
