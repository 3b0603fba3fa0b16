package utils

// IsSeparator checks if a rune commonly separates digit groups in phone numbers
func IsSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '-', '.', '/', '(', ')', '+':
		return true
	}
	return false
}

// IsValidTarget checks if input looks like a number worth searching:
// at least one ASCII digit and nothing but ASCII digits and separators.
// Batch entries skip this check since any character is allowed there.
func IsValidTarget(s string) bool {
	if !ContainsDigits(s) {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && !IsSeparator(r) {
			return false
		}
	}
	return true
}
