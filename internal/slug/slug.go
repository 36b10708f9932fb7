// Package slug derives filesystem-safe identifiers from human-readable titles.
package slug

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmptySlug is returned when a title yields no usable characters,
// e.g. a title made entirely of punctuation.
var ErrEmptySlug = errors.New("title produces an empty slug")

// stripMarks decomposes text and drops the combining marks, turning
// "Análisis" into "Analisis" and "ñ" into "n".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make converts a title into a slug usable as a directory and file name:
// lowercase ASCII letters, digits and single hyphens, with diacritics
// transliterated to their base form.
//
//	"Mi artículo sobre IA" → "mi-articulo-sobre-ia"
//
// Make is deterministic and idempotent: a valid slug maps to itself.
func Make(title string) (string, error) {
	ascii, _, err := transform.String(stripMarks, title)
	if err != nil {
		// Malformed UTF-8; fall back to the raw input and let the
		// character filter below discard what it can't use.
		ascii = title
	}

	var b strings.Builder
	b.Grow(len(ascii))
	pendingHyphen := false
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			// Any other rune separates words. Runs collapse into one
			// hyphen, and leading/trailing separators vanish.
			pendingHyphen = true
		}
	}

	s := b.String()
	if s == "" {
		return "", ErrEmptySlug
	}
	return s, nil
}
