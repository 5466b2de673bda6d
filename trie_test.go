package trie

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakjha889/go-dictionary-trie/tree"
)

var seeds = len(DefaultAlphabet)

// assertNoDuplicateChildren fails if two children of one node hold the same character.
func assertNoDuplicateChildren(t *testing.T, d *Dictionary) {
	t.Helper()
	check := func(level func(func(tree.NodeID, letter) bool)) {
		seen := make(map[rune]bool)
		for _, l := range level {
			assert.False(t, seen[l.char], "duplicate sibling %q", l.char)
			seen[l.char] = true
		}
	}
	check(d.tree.TopLevel())
	for id := range d.tree.All() {
		check(d.tree.Children(id))
	}
}

// assertSeeds checks that the top level is exactly the alphabet, between the sentinels.
func assertSeeds(t *testing.T, d *Dictionary) {
	t.Helper()
	head, feet := d.tree.Head(), d.tree.Feet()
	var got []rune
	id := d.tree.NextSibling(head)
	for ; id != feet; id = d.tree.NextSibling(id) {
		require.False(t, id.IsNil())
		got = append(got, d.tree.Value(id).char)
	}
	assert.Equal(t, d.Alphabet(), string(got))
	assert.True(t, d.tree.PrevSibling(head).IsNil())
	assert.True(t, d.tree.NextSibling(feet).IsNil())
	assert.False(t, d.tree.PrevSibling(feet).IsNil())
}

func TestNew(t *testing.T) {
	d := New()
	assert.Equal(t, DefaultAlphabet, d.Alphabet())
	assert.Equal(t, seeds, d.Len())
	assertSeeds(t, d)
	for _, r := range DefaultAlphabet {
		assert.True(t, d.FindWord(string(r)))
	}
	assert.Empty(t, d.Words())

	custom := NewWithAlphabet("aAbBé")
	assert.Equal(t, "abé", custom.Alphabet())
	assert.Equal(t, 3, custom.Len())
	assert.True(t, custom.InsertWord("été"))
	assert.False(t, New().InsertWord("été"))
}

func TestInsertWord(t *testing.T) {
	t.Run("prefix sharing", func(t *testing.T) {
		d := New()
		require.True(t, d.InsertWord("card"))
		require.True(t, d.InsertWord("car"))
		assert.Equal(t, seeds-1+len("card"), d.Len())
		assert.Equal(t, []string{"car", "card"}, d.Words())
	})

	t.Run("idempotent", func(t *testing.T) {
		d := New()
		d.InsertAll([]string{"banana", "band", "bandana"})
		n := d.Len()
		d.InsertAll([]string{"banana", "band", "bandana"})
		assert.Equal(t, n, d.Len())
		assertNoDuplicateChildren(t, d)
	})

	t.Run("case insensitive", func(t *testing.T) {
		d := New()
		require.True(t, d.InsertWord("CarTooN"))
		assert.True(t, d.FindWord("cartoon"))
		assert.True(t, d.FindWord("CARTOON"))
		assert.Equal(t, []string{"cartoon"}, d.Words())
	})

	t.Run("rejected", func(t *testing.T) {
		d := New()
		assert.False(t, d.InsertWord(""))
		assert.False(t, d.InsertWord("1st"))
		assert.False(t, d.InsertWord("-ab"))
		assert.Equal(t, seeds, d.Len())
	})

	t.Run("insert all counts accepted words", func(t *testing.T) {
		d := New()
		assert.Equal(t, 2, d.InsertAll([]string{"one", "", "two", "3"}))
	})
}

func TestFindWord(t *testing.T) {
	d := New()
	words := []string{"abaissa", "abaissai", "abaissaient", "dictionary", "zebra", "a"}
	d.InsertAll(words)

	for _, w := range words {
		assert.True(t, d.FindWord(w), w)
		assert.True(t, d.ContainsWord(w), w)
	}

	testCases := []struct {
		word  string
		found bool
	}{
		{"abaissz", false},
		{"abaissaientt", false},
		{"", false},
		{"zebras", false},
		{"q", true},
		{"dict", true},
		{"ZEB", true},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.found, d.FindWord(tc.word), tc.word)
	}
}

func TestPrefixAmbiguity(t *testing.T) {
	d := New()
	d.InsertWord("cartoon")

	// Paths carry no end-of-word information for FindWord.
	assert.True(t, d.FindWord("car"))
	assert.True(t, d.FindWord("cartoo"))
	assert.False(t, d.ContainsWord("car"))
	assert.True(t, d.ContainsWord("cartoon"))
}

func TestFindWordApprox(t *testing.T) {
	d := New()
	d.InsertAll([]string{"dictionary", "cat"})

	testCases := []struct {
		name     string
		word     string
		maxError int
		found    bool
	}{
		{"exact", "dictionary", 0, true},
		{"exact miss", "dectionary", 0, false},
		{"substitution", "dectionary", 1, true},
		{"addition", "dicktionary", 1, true},
		{"deletion", "dictonary", 1, true},
		{"first letter substituted", "xictionary", 1, true},
		{"first letter added", "xdictionary", 1, true},
		{"first letter dropped", "ictionary", 1, true},
		{"last letter added", "dictionaryy", 1, true},
		{"two errors over budget", "dektionari", 1, false},
		{"two errors within budget", "dektionari", 2, true},
		{"too far", "dog", 1, false},
		{"upper case", "DECTIONARY", 1, true},
		{"prefix of a word", "dictio", 0, true},
		{"negative budget", "dictionary", -1, false},
		{"empty", "", 3, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.found, d.FindWordApprox(tc.word, tc.maxError))
		})
	}
}

func TestFindWordApproxMatchesExact(t *testing.T) {
	d := New()
	d.InsertAll([]string{"monday", "tuesday", "wednesday", "thursday"})
	for _, w := range []string{"monday", "tues", "thirsday", "wed", "weds", "x", "mon day"} {
		assert.Equal(t, d.FindWord(w), d.FindWordApprox(w, 0), w)
	}
}

func TestRemoveWord(t *testing.T) {
	t.Run("trims to the branch point", func(t *testing.T) {
		d := New()
		d.InsertAll([]string{"cart", "car"})
		require.True(t, d.RemoveWord("cart"))
		assert.True(t, d.FindWord("car"))
		assert.False(t, d.FindWord("cart"))
		assert.Equal(t, seeds+2, d.Len())
		assert.Equal(t, []string{"car"}, d.Words())
	})

	t.Run("keeps siblings", func(t *testing.T) {
		d := New()
		d.InsertAll([]string{"cab", "cat"})
		require.True(t, d.RemoveWord("cat"))
		assert.True(t, d.FindWord("cab"))
		assert.False(t, d.FindWord("cat"))
		assert.Equal(t, seeds+2, d.Len())
	})

	t.Run("whole branch back to the seed", func(t *testing.T) {
		d := New()
		d.InsertWord("zebra")
		require.True(t, d.RemoveWord("ZEBRA"))
		assert.Equal(t, seeds, d.Len())
		assert.True(t, d.FindWord("z"))
		assert.False(t, d.FindWord("ze"))
	})

	t.Run("prefix of another word", func(t *testing.T) {
		d := New()
		d.InsertAll([]string{"car", "cartoon"})
		require.True(t, d.RemoveWord("car"))
		assert.True(t, d.FindWord("car"))
		assert.False(t, d.ContainsWord("car"))
		assert.True(t, d.ContainsWord("cartoon"))
		assert.Equal(t, seeds-1+len("cartoon"), d.Len())
	})

	t.Run("seed letters stay", func(t *testing.T) {
		d := New()
		d.InsertWord("a")
		assert.True(t, d.ContainsWord("a"))
		require.True(t, d.RemoveWord("a"))
		assert.False(t, d.ContainsWord("a"))
		assert.True(t, d.FindWord("a"))
		assert.Equal(t, seeds, d.Len())
	})

	t.Run("missing", func(t *testing.T) {
		d := New()
		d.InsertWord("dog")
		n := d.Len()
		assert.False(t, d.RemoveWord("dot"))
		assert.False(t, d.RemoveWord(""))
		assert.False(t, d.RemoveWord("7up"))
		assert.Equal(t, n, d.Len())
	})

	t.Run("remove then insert again", func(t *testing.T) {
		d := New()
		d.InsertAll([]string{"abaissa", "abaissai", "abaissaient"})
		d.RemoveWord("abaissaient")
		assert.False(t, d.FindWord("abaissaient"))
		assert.True(t, d.FindWord("abaissai"))
		assert.True(t, d.FindWord("abaissa"))
		d.InsertWord("abaissaient")
		assert.True(t, d.FindWord("abaissaient"))
	})
}

func TestSentinelsSurviveMutations(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	d := New()
	words := []string{"a", "ab", "abc", "abd", "b", "ba", "bab", "zz", "zzz", "zebra", "mango", "man", "many"}
	for i := 0; i < 500; i++ {
		w := words[rnd.Intn(len(words))]
		if rnd.Intn(3) == 0 {
			d.RemoveWord(w)
		} else {
			d.InsertWord(w)
		}
		assertSeeds(t, d)
	}
	assertNoDuplicateChildren(t, d)
	for _, w := range d.Words() {
		assert.True(t, d.FindWord(w))
	}
}

func TestConcurrentAccess(t *testing.T) {
	d := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				w := fmt.Sprintf("w%dx%d", i, j%10)
				d.InsertWord(w)
				d.FindWord(w)
				d.FindWordApprox(w, 1)
				if j%3 == 0 {
					d.RemoveWord(w)
				}
			}
		}(i)
	}
	wg.Wait()
	assertSeeds(t, d)
}

func TestCorpusRoundTrip(t *testing.T) {
	keys := corpus(20000)
	d := New()
	assert.Equal(t, len(keys), d.InsertAll(keys))
	for _, k := range keys {
		require.True(t, d.FindWord(k), k)
		require.True(t, d.ContainsWord(k), k)
	}
	assertNoDuplicateChildren(t, d)

	for _, k := range keys[:len(keys)/2] {
		d.RemoveWord(k)
	}
	for _, k := range keys[len(keys)/2:] {
		require.True(t, d.ContainsWord(k), k)
	}
}

// corpus returns up to n distinct keys of a testkeys set that start with an
// ASCII letter. Keys equal after folding are kept once.
func corpus(n int) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, k := range testkeys.Load("1mvl5_10") {
		if len(k) == 0 {
			continue
		}
		if c := k[0] | 0x20; c < 'a' || c > 'z' {
			continue
		}
		folded := string([]rune(Fold(k)))
		if seen[folded] {
			continue
		}
		seen[folded] = true
		keys = append(keys, k)
		if len(keys) == n {
			break
		}
	}
	return keys
}

func BenchmarkInsertWord(b *testing.B) {
	keys := corpus(50000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New().InsertAll(keys)
	}
}

func BenchmarkFindWord(b *testing.B) {
	keys := corpus(50000)
	if len(keys) == 0 {
		b.Skip("empty corpus")
	}
	d := New()
	d.InsertAll(keys)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.FindWord(keys[i%len(keys)])
	}
}

func BenchmarkFindWordApprox(b *testing.B) {
	keys := corpus(50000)
	if len(keys) == 0 {
		b.Skip("empty corpus")
	}
	d := New()
	d.InsertAll(keys)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.FindWordApprox(keys[i%len(keys)]+"x", 1)
	}
}
