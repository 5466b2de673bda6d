package trie

import (
	"iter"
	"slices"
	"sync"

	"github.com/sarthakjha889/go-dictionary-trie/tree"
)

// DefaultAlphabet is the set of letters a Dictionary is seeded with by New.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// Dictionary stores words as paths in a tree of characters. Each seed letter
// is a top-level node; a word is the path from the node of its first letter
// down through the children matching the following letters, so words sharing
// a prefix share nodes.
//
// FindWord and FindWordApprox look at paths only: a path ending anywhere
// counts as present, so every prefix of a stored word is found too. The node
// closing an inserted word is marked, and only RemoveWord and ContainsWord
// consult that mark.
type Dictionary struct {
	mu       sync.RWMutex
	tree     *tree.Tree[letter]
	alphabet string
}

// letter is the payload of a node.
type letter struct {
	char rune
	// word is set on the last node of an inserted word.
	word bool
}

// New creates a dictionary seeded with DefaultAlphabet.
func New() *Dictionary {
	return NewWithAlphabet(DefaultAlphabet)
}

// NewWithAlphabet creates a dictionary seeded with the folded letters of
// alphabet. Repeated letters are seeded once. Words can only be inserted when
// their first letter is part of the alphabet.
func NewWithAlphabet(alphabet string) *Dictionary {
	d := &Dictionary{tree: tree.New[letter]()}
	var seeded []rune
	for _, r := range Fold(alphabet) {
		if !d.seed(r).IsNil() {
			continue
		}
		d.tree.InsertBefore(tree.Nil, letter{char: r})
		seeded = append(seeded, r)
	}
	d.alphabet = string(seeded)
	return d
}

// Alphabet returns the seed letters in order.
func (d *Dictionary) Alphabet() string { return d.alphabet }

// Len returns the number of character nodes, seed letters included.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tree.Len()
}

// InsertWord adds word to the dictionary. It reports false when word is empty
// or does not start with a seed letter.
func (d *Dictionary) InsertWord(word string) bool {
	w := []rune(Fold(word))
	if len(w) == 0 {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.seed(w[0])
	if current.IsNil() {
		return false
	}
	for _, r := range w[1:] {
		next := d.child(current, r)
		if next.IsNil() {
			next = d.tree.AppendChild(current, letter{char: r})
		}
		current = next
	}
	d.tree.SetValue(current, letter{char: w[len(w)-1], word: true})
	return true
}

// InsertAll inserts every word and returns how many were accepted.
func (d *Dictionary) InsertAll(words []string) int {
	n := 0
	for _, w := range words {
		if d.InsertWord(w) {
			n++
		}
	}
	return n
}

// FindWord reports whether the path spelling word exists. This is true for
// any prefix of an inserted word as well as for the word itself.
func (d *Dictionary) FindWord(word string) bool {
	w := []rune(Fold(word))
	d.mu.RLock()
	defer d.mu.RUnlock()
	return !d.lookup(w).IsNil()
}

// ContainsWord reports whether word itself was inserted and not removed,
// unlike FindWord which also accepts prefixes of stored words.
func (d *Dictionary) ContainsWord(word string) bool {
	w := []rune(Fold(word))
	d.mu.RLock()
	defer d.mu.RUnlock()
	id := d.lookup(w)
	return !id.IsNil() && d.tree.Value(id).word
}

// FindWordApprox reports whether some path spells a string within maxError
// edits of word. Substituting, adding and dropping a character each cost one
// edit. With maxError 0 it behaves like FindWord.
func (d *Dictionary) FindWordApprox(word string, maxError int) bool {
	if maxError < 0 {
		return false
	}
	w := []rune(Fold(word))
	if len(w) == 0 {
		return false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.approx(tree.Nil, w, maxError) >= 0
}

// RemoveWord deletes the nodes of word that no other word uses. Trimming
// starts at the last character and climbs while the current node is a leaf.
// It stops at a node that still has children, at a node closing another
// inserted word, or at the seed letter, which is never removed. It reports
// whether the path of word was found.
//
// Removing a word that is a prefix of another stored word erases nothing, so
// FindWord keeps finding it.
func (d *Dictionary) RemoveWord(word string) bool {
	w := []rune(Fold(word))
	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.lookup(w)
	if current.IsNil() {
		return false
	}
	d.tree.SetValue(current, letter{char: w[len(w)-1]})
	for d.prunable(current) {
		parent := d.tree.Parent(current)
		d.tree.Erase(d.tree.At(current))
		current = parent
	}
	return true
}

func (d *Dictionary) prunable(id tree.NodeID) bool {
	return !d.tree.Parent(id).IsNil() && d.tree.IsLeaf(id) && !d.tree.Value(id).word
}

// Words returns every inserted word still present, in tree order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var words []string
	for id, l := range d.tree.All() {
		if l.word {
			words = append(words, d.spell(id))
		}
	}
	return words
}

// spell rebuilds the string of the path ending at id.
func (d *Dictionary) spell(id tree.NodeID) string {
	var path []rune
	for ; !id.IsNil(); id = d.tree.Parent(id) {
		path = append(path, d.tree.Value(id).char)
	}
	slices.Reverse(path)
	return string(path)
}

// lookup returns the node of the last character of w, or Nil.
func (d *Dictionary) lookup(w []rune) tree.NodeID {
	if len(w) == 0 {
		return tree.Nil
	}
	current := d.seed(w[0])
	for _, r := range w[1:] {
		if current.IsNil() {
			break
		}
		current = d.child(current, r)
	}
	return current
}

// approx returns the largest budget left over by any way of matching query
// below parent, or -1 when none fits. A Nil parent stands for the virtual
// root above the seed letters; matching must consume at least one node.
func (d *Dictionary) approx(parent tree.NodeID, query []rune, budget int) int {
	if len(query) == 0 {
		if parent.IsNil() {
			return -1
		}
		return budget
	}

	best := -1
	if next := d.child(parent, query[0]); !next.IsNil() {
		if best = d.approx(next, query[1:], budget); best == budget {
			return best
		}
	}
	if budget == 0 {
		return best
	}

	// addition: the query has a character the path lacks
	best = max(best, d.approx(parent, query[1:], budget-1))
	for id, l := range d.level(parent) {
		if best == budget-1 {
			break
		}
		// substitution
		if l.char != query[0] {
			best = max(best, d.approx(id, query[1:], budget-1))
		}
		// deletion: the path has a character the query lacks
		best = max(best, d.approx(id, query, budget-1))
	}
	return best
}

// level yields the children of parent, or the seed letters for Nil.
func (d *Dictionary) level(parent tree.NodeID) iter.Seq2[tree.NodeID, letter] {
	if parent.IsNil() {
		return d.tree.TopLevel()
	}
	return d.tree.Children(parent)
}

// seed returns the top-level node holding r, or Nil.
func (d *Dictionary) seed(r rune) tree.NodeID {
	for id, l := range d.tree.TopLevel() {
		if l.char == r {
			return id
		}
	}
	return tree.Nil
}

// child returns the child of node holding r, or Nil. A Nil node looks among
// the seed letters.
func (d *Dictionary) child(node tree.NodeID, r rune) tree.NodeID {
	if node.IsNil() {
		return d.seed(r)
	}
	if d.tree.IsLeaf(node) {
		return tree.Nil
	}
	for sib, end := d.tree.BeginChildren(node), d.tree.EndChildren(node); !sib.Equal(end); sib.Next() {
		if sib.Value().char == r {
			return sib.Node()
		}
	}
	return tree.Nil
}
