// =============================================================================
// XLSX Header Stamper - Text Normalizer
// =============================================================================
//
// This module brings roster legal names and target file names into a common
// normalized space before matching:
//
//   "Companhia Ação & Cia."  ->  "companhia acao  cia"
//
// Both sides of every comparison go through the same Normalize function, so
// accents, punctuation and casing never influence a match.
//
// =============================================================================

package normalizer

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text (NFKD) and removes the combining marks, turning
// "ç" into "c" and "ã" into "a". Any non-ASCII remainder is dropped by the
// rune filter in Normalize.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize strips diacritics, discards every character that is not an ASCII
// letter, digit or space, lower-cases, and trims surrounding whitespace.
// Interior spacing is preserved as-is, so removed punctuation between words
// leaves the original spaces in place.
//
// Normalize is pure and total: it never fails, and it is idempotent.
func Normalize(text string) string {
	decomposed, _, err := transform.String(stripMarks, text)
	if err != nil {
		// transform.String only fails on a misbehaving transformer;
		// fall back to the raw input so normalization stays total.
		decomposed = text
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r > unicode.MaxASCII {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	return strings.TrimSpace(b.String())
}

// FileKey derives the normalized lookup key for a target file name: the
// extension is removed first, then the base name is normalized.
func FileKey(fileName string) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return Normalize(strings.TrimSpace(base))
}
