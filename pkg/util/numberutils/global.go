package numberutils

import "unicode"

// IsDigits checks if the given string contains only digits (0-9).
// It returns true if all characters in the string are digits, false otherwise.
// The empty string yields false.
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
