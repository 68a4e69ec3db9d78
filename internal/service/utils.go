package service

import (
	"strings"
	"unicode/utf8"
)

// sanitizeText drops invalid UTF-8 sequences and surrounding whitespace so
// text is safe to store in PostgreSQL and render in the client.
func sanitizeText(s string) string {
	s = strings.TrimSpace(s)
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}
