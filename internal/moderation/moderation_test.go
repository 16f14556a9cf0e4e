package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Banned(t *testing.T) {
	f := NewFilter(nil)

	tests := []struct {
		name   string
		text   string
		banned bool
	}{
		{"clean text", "a perfectly ordinary comment", false},
		{"banned word at start", "scoundrel, that was uncalled for", true},
		{"banned word in the middle", "some text, scoundrel, more text", true},
		{"banned word at end", "you villain", true},
		{"banned word embedded in a longer word", "what a villainous remark", true},
		{"case sensitive match", "Scoundrel with a capital letter", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := f.Banned(tt.text)
			assert.Equal(t, tt.banned, got)
		})
	}
}

func TestFilter_BannedReturnsMatchedWord(t *testing.T) {
	f := NewFilter([]string{"first", "second"})

	word, found := f.Banned("contains the second word only")
	require.True(t, found)
	assert.Equal(t, "second", word)
}

func TestFilter_CustomList(t *testing.T) {
	f := NewFilter([]string{"spam"})

	_, found := f.Banned("scoundrel") // default word, not in the custom list
	assert.False(t, found)

	_, found = f.Banned("this is spam")
	assert.True(t, found)
}

func TestFilter_Rule(t *testing.T) {
	f := NewFilter(nil)
	rule := f.Rule()

	require.NoError(t, rule("clean text"))
	require.NoError(t, rule(42)) // non-string values pass through

	err := rule("text with villain inside")
	require.Error(t, err)
	assert.Equal(t, Warning, err.Error())
}

func TestNewFilter_CopiesInput(t *testing.T) {
	words := []string{"one"}
	f := NewFilter(words)
	words[0] = "changed"

	_, found := f.Banned("one")
	assert.True(t, found)
}
