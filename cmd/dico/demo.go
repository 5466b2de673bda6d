package main

import (
	"fmt"
	"io"

	trie "github.com/sarthakjha889/go-dictionary-trie"
)

// runDemo replays a fixed scenario of exact, removal and approximate lookups.
func runDemo(d *trie.Dictionary, out io.Writer) {
	found := func(label, word string, ok bool) {
		fmt.Fprintf(out, "%s %s found = %t\n", label, word, ok)
	}

	for _, w := range []string{"abaissa", "abaissz", "abaissaient"} {
		found("word", w, d.FindWord(w))
	}

	d.RemoveWord("abaissaient")
	for _, w := range []string{"abaissaient", "abaissai", "abaissa"} {
		found("after remove word", w, d.FindWord(w))
	}

	d.InsertWord("abaissaient")
	found("after add word", "abaissaient", d.FindWord("abaissaient"))

	for _, c := range []struct{ label, word string }{
		{"find sub middle word", "azaissa"},
		{"find add last word", "abaisszo"},
		{"find add middle word", "abbaissa"},
		{"find remove middle word", "aaissa"},
	} {
		found(c.label, c.word, d.FindWordApprox(c.word, 3))
	}
}
