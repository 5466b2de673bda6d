// Package lexicon reads word lists, one word per line, from text files in any
// IANA-registered charset.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned when a charset name cannot be resolved to a decoder.
var ErrUnknownCharset = errors.New("lexicon: unknown charset")

// Read returns the words of r, one per line. Surrounding blanks and carriage
// returns are trimmed and empty lines skipped. A nil enc reads r as UTF-8.
func Read(r io.Reader, enc encoding.Encoding) ([]string, error) {
	words, err := read(r, enc)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read: %w", err)
	}
	return words, nil
}

func read(r io.Reader, enc encoding.Encoding) ([]string, error) {
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Charset resolves an IANA charset name such as "utf-8" or "ISO-8859-1".
// The empty name resolves to a nil Encoding, meaning UTF-8.
func Charset(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

// Open reads the word list at path, decoding it from charset.
func Open(path, charset string) ([]string, error) {
	enc, err := Charset(charset)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon: open: %w", err)
	}
	defer f.Close()

	words, err := read(f, enc)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
	}
	return words, nil
}
