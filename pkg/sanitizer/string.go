package sanitizer

import "strings"

// SanitizeName trims surrounding whitespace and collapses internal runs of
// whitespace to a single space. Used for human-entered display names.
func SanitizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SanitizeEmail normalizes an email address for storage and comparison.
// Local-part case is not significant for any mail provider we care about.
func SanitizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SanitizeID strips whitespace around an identifier without touching its case.
func SanitizeID(s string) string {
	return strings.TrimSpace(s)
}
