// Package moderation rejects comment text containing banned substrings.
package moderation

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Warning is the fixed message attached to the text field when a banned
// substring is found. The whole submission is rejected with this single
// message regardless of which word matched.
const Warning = "Watch your language! Comments with profanity are not accepted."

// DefaultWords is the moderation list used when none is configured.
// Matching is case-sensitive and substring-based: a banned word embedded
// inside a longer word still triggers rejection.
var DefaultWords = []string{"scoundrel", "villain"}

// Filter scans comment text for banned substrings.
type Filter struct {
	words []string
}

// NewFilter creates a filter over the given moderation list. An empty
// list falls back to DefaultWords.
func NewFilter(words []string) *Filter {
	if len(words) == 0 {
		words = DefaultWords
	}
	f := &Filter{words: make([]string, len(words))}
	copy(f.words, words)
	return f
}

// Words returns a copy of the moderation list.
func (f *Filter) Words() []string {
	out := make([]string, len(f.words))
	copy(out, f.words)
	return out
}

// Banned returns the first banned substring found in text.
func (f *Filter) Banned(text string) (string, bool) {
	for _, w := range f.words {
		if strings.Contains(text, w) {
			return w, true
		}
	}
	return "", false
}

// Rule adapts the filter to an ozzo validation rule so comment form
// validation can carry it alongside the other field rules.
func (f *Filter) Rule() validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return nil
		}
		if _, found := f.Banned(s); found {
			return validation.NewError("banned_words", Warning)
		}
		return nil
	}
}
