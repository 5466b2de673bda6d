package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	trie "github.com/sarthakjha889/go-dictionary-trie"
	"github.com/sarthakjha889/go-dictionary-trie/internal/config"
	"github.com/sarthakjha889/go-dictionary-trie/internal/shell"
	"github.com/sarthakjha889/go-dictionary-trie/lexicon"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("dico", pflag.ContinueOnError)
	configPath := fs.String("config", "", "path to config file")
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  dico [flags] [demo | <command> <args>...]\n\nFlags:\n%s\n%s", fs.FlagUsages(), shellHelp)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dico: %v\n", err)
		return 1
	}
	logger := newLogger(cfg.Log)

	dict := trie.NewWithAlphabet(cfg.Dictionary.Alphabet)
	words, lexErr := lexicon.Open(cfg.Lexicon.Path, cfg.Lexicon.Charset)
	if lexErr != nil {
		logger.Error().Err(lexErr).Str("path", cfg.Lexicon.Path).Msg("error reading lexicon, dictionary left empty")
	} else {
		for _, w := range words {
			if !dict.InsertWord(w) {
				logger.Warn().Str("word", w).Msg("can not insert word")
			}
		}
		logger.Info().Int("words", len(words)).Int("nodes", dict.Len()).Msg("lexicon loaded")
	}

	rest := fs.Args()
	switch {
	case len(rest) == 0:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		sh := newShell(dict, cfg, logger)
		sh.Prompt = "> "
		if err := sh.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
			logger.Error().Err(err).Msg("shell stopped")
			return 1
		}
	case rest[0] == "demo":
		if lexErr != nil {
			logger.Error().Err(lexErr).Msg("demo needs a lexicon")
			return 1
		}
		runDemo(dict, os.Stdout)
	default:
		newShell(dict, cfg, logger).Exec(strings.Join(rest, " "))
	}
	return 0
}

func newShell(dict *trie.Dictionary, cfg *config.Config, logger zerolog.Logger) *shell.Shell {
	sh := shell.New(dict, os.Stdout, logger)
	sh.MaxError = cfg.Dictionary.MaxError
	return sh
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	var logger zerolog.Logger
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(cfg.ZerologLevel()).With().Timestamp().Logger()
}

const shellHelp = `Commands:
  demo                   run the sample lookups on abaissa and friends
  insert <word>...       add words
  find <word>...         exact lookup
  approx <word> [n]      lookup tolerating n errors
  remove <word>...       remove words
  list, count, help
Without a command an interactive shell reads commands from stdin.
`
