// Package phone validates phone numbers against the US dialing format.
//
// Accepted shapes, anchored at both ends:
//   - optional country code "1", optionally followed by one space or hyphen
//   - a 3-digit area code, bare or wrapped in parentheses
//   - an optional single space or hyphen
//   - either 3 digits, optional space/hyphen, 4 digits, or exactly 7 alphanumerics
//
// Matches: 1-(123)-123-1234 | 123 123 1234 | 1-800-ALPHNUM
// Non-matches: 1.123.123.1234 | (123)-1234-123 | 123-1234
package phone

import "regexp"

// usPattern has no multiline flag, so $ only matches at the end of input.
//
//nolint:gochecknoglobals // Compiled once; regexp.Regexp is safe for concurrent use.
var usPattern = regexp.MustCompile(
	`^(1[ -]?)?(\([0-9]{3}\)|[0-9]{3})[ -]?([0-9]{3}[ -]?[0-9]{4}|[a-zA-Z0-9]{7})$`,
)

// IsValid reports whether s is a US phone number.
// It never fails; empty and malformed input simply return false.
func IsValid(s string) bool {
	return usPattern.MatchString(s)
}

// USMatcher is a PhoneMatcher backed by IsValid.
type USMatcher struct{}

// NewUSMatcher returns a matcher for US phone numbers.
func NewUSMatcher() USMatcher {
	return USMatcher{}
}

// IsValid reports whether s is a US phone number.
func (USMatcher) IsValid(s string) bool {
	return IsValid(s)
}
