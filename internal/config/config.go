package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	trie "github.com/sarthakjha889/go-dictionary-trie"
)

const envPrefix = "DICO"

// Config holds all configuration for the dico command
type Config struct {
	Lexicon    LexiconConfig    `mapstructure:"lexicon"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Log        LogConfig        `mapstructure:"log"`
}

// LexiconConfig describes the word list loaded at startup
type LexiconConfig struct {
	Path    string `mapstructure:"path"`
	Charset string `mapstructure:"charset"`
}

// DictionaryConfig holds dictionary related configuration
type DictionaryConfig struct {
	Alphabet string `mapstructure:"alphabet"`
	MaxError int    `mapstructure:"max_error"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"lexicon":    "lexicon.path",
	"charset":    "lexicon.charset",
	"alphabet":   "dictionary.alphabet",
	"max-error":  "dictionary.max_error",
	"log-level":  "log.level",
	"log-pretty": "log.pretty",
}

// RegisterFlags declares the flags that Load understands on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("lexicon", "./Lexico.txt", "path of the word list, one word per line")
	fs.String("charset", "utf-8", "charset of the word list")
	fs.String("alphabet", trie.DefaultAlphabet, "letters seeding the dictionary")
	fs.Int("max-error", 1, "default error budget of approximate lookups")
	fs.String("log-level", "info", "log level")
	fs.Bool("log-pretty", true, "human friendly console logs")
}

// Load reads configuration from defaults, the optional file at configPath,
// DICO_* environment variables and the flags of fs that were set, in
// increasing order of precedence.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("lexicon.path", "./Lexico.txt")
	v.SetDefault("lexicon.charset", "utf-8")

	v.SetDefault("dictionary.alphabet", trie.DefaultAlphabet)
	v.SetDefault("dictionary.max_error", 1)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.Alphabet == "" {
		return errors.New("dictionary alphabet cannot be empty")
	}
	if c.Dictionary.MaxError < 0 {
		return fmt.Errorf("invalid max error: %d", c.Dictionary.MaxError)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// ZerologLevel returns the configured level, Validate having accepted it.
func (c *LogConfig) ZerologLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
