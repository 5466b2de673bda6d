// Package shell implements the line-oriented command loop used to query and
// edit a dictionary interactively.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	trie "github.com/sarthakjha889/go-dictionary-trie"
)

const helpText = `Commands:
  insert <word>...       add words (alias: add)
  find <word>...         exact lookup
  approx <word> [n]      lookup tolerating n errors
  remove <word>...       remove words (alias: rm)
  list                   print every stored word
  count                  print node and word counts
  help                   show this message
  quit                   leave (alias: exit)
`

// Shell runs commands against a Dictionary and writes results to Out.
type Shell struct {
	Dict   *trie.Dictionary
	Out    io.Writer
	Logger zerolog.Logger
	// MaxError is the budget of approx when none is given.
	MaxError int
	// Prompt is written before each line read by Run.
	Prompt string
}

// New creates a shell with a default error budget of 1.
func New(d *trie.Dictionary, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{Dict: d, Out: out, Logger: logger, MaxError: 1}
}

// Run executes commands read from in until EOF, quit or ctx is done. A read
// blocked on in does not hold Run back once ctx is done; the reading goroutine
// exits when in returns.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if s.Prompt != "" {
			fmt.Fprint(s.Out, s.Prompt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return scanErr(ctx, readErr)
			}
			if quit := s.Exec(line); quit {
				return nil
			}
		}
	}
}

// scanErr reports why the reading goroutine closed its channel.
func scanErr(ctx context.Context, readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("shell: read: %w", err)
		}
		return nil
	default:
		return ctx.Err()
	}
}

// Exec runs one command line and reports whether it asked to quit.
func (s *Shell) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.Logger.Debug().Str("cmd", cmd).Strs("args", args).Msg("exec")

	switch cmd {
	case "insert", "add":
		s.each(cmd, args, s.Dict.InsertWord)
	case "find":
		s.each(cmd, args, s.Dict.FindWord)
	case "remove", "rm":
		s.each(cmd, args, s.Dict.RemoveWord)
	case "approx":
		s.approx(args)
	case "list":
		for _, w := range s.Dict.Words() {
			fmt.Fprintln(s.Out, w)
		}
	case "count":
		fmt.Fprintf(s.Out, "nodes: %d\nwords: %d\n", s.Dict.Len(), len(s.Dict.Words()))
	case "help":
		fmt.Fprint(s.Out, helpText)
	case "quit", "exit":
		return true
	default:
		s.Logger.Warn().Str("cmd", cmd).Msg("unknown command")
		fmt.Fprintf(s.Out, "unknown command %q, try help\n", cmd)
	}
	return false
}

func (s *Shell) each(cmd string, words []string, op func(string) bool) {
	if len(words) == 0 {
		fmt.Fprintf(s.Out, "usage: %s <word>...\n", cmd)
		return
	}
	for _, w := range words {
		fmt.Fprintf(s.Out, "%s %s: %t\n", cmd, w, op(w))
	}
}

func (s *Shell) approx(args []string) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintln(s.Out, "usage: approx <word> [n]")
		return
	}
	maxError := s.MaxError
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			fmt.Fprintf(s.Out, "invalid error budget %q\n", args[1])
			return
		}
		maxError = n
	}
	fmt.Fprintf(s.Out, "approx %s (%d): %t\n", args[0], maxError, s.Dict.FindWordApprox(args[0], maxError))
}
