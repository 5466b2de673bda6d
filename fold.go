package trie

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Fold lower-cases the ASCII letters of word and leaves every other rune as
// it is. Locale-aware folding is left to callers.
func Fold(word string) string {
	folded, _, err := transform.String(runes.Map(lowerASCII), word)
	if err != nil {
		return word
	}
	return folded
}

func lowerASCII(r rune) rune {
	if 'A' <= r && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
