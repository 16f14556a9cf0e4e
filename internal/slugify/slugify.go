// Package slugify derives URL-safe note slugs from titles.
package slugify

import "github.com/gosimple/slug"

// MaxLength matches the slug column width in the schema.
const MaxLength = 100

// Make derives a slug from a title: non-Latin characters are
// transliterated, the result is lowercased and hyphen-separated, and
// truncated to MaxLength. The truncation never splits a multi-byte
// character because the transliterated slug is pure ASCII.
func Make(title string) string {
	s := slug.Make(title)
	if len(s) > MaxLength {
		s = s[:MaxLength]
	}
	return s
}
