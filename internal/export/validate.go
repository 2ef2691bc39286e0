package export

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

var extPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)

// delimiterRune returns the delimiter as a single rune. Multi-character
// separators are rejected before a connection is opened.
func delimiterRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("DELIMITER must be a single character")
	}
	return r, nil
}

// validateFormat keeps the extension safe for the Content-Disposition header.
func validateFormat(s string) error {
	if !extPattern.MatchString(s) {
		return fmt.Errorf("FORMAT must be alphanumeric, got %q", s)
	}
	return nil
}
