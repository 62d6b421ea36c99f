package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordguess/internal/config"
	"github.com/abhisek/wordguess/internal/logging"
	"github.com/abhisek/wordguess/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wordguess",
	Short: "Guess the secret word one letter at a time",
	Long: "WordGuess picks a secret word and gives you 8 guesses to uncover it,\n" +
		"one letter at a time, at the console or in a full-screen view.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runGame,
}

// Settings resolved once per invocation.
var (
	cfg    config.Config
	logger zerolog.Logger
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides WORDGUESS_DB)")
	pf.String("words", "", "Word source: file path, builtin, http(s) URL or sqlite[:PATH]")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	f := rootCmd.Flags()
	f.Uint64("seed", 0, "Seed for word and hint selection (0 = random)")
	f.Bool("classic", false, "Play with unvalidated input and no guess history")
	f.Bool("tui", false, "Play in the full-screen view")
	f.Int("hints", 1, "Hints available per game (overrides WORDGUESS_HINTS)")

	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, &c); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(os.Stderr, c.LogLevel, isatty.IsTerminal(os.Stderr.Fd()))
	if err != nil {
		return err
	}
	cfg, logger = c, l
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

// applyFlags copies explicitly set flags over the environment values.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("db") {
		c.DB, err = flags.GetString("db")
	}
	if err == nil && flags.Changed("words") {
		c.Words, err = flags.GetString("words")
	}
	if err == nil && flags.Changed("log-level") {
		c.LogLevel, err = flags.GetString("log-level")
	}
	if err == nil && flags.Changed("seed") {
		c.Seed, err = flags.GetUint64("seed")
	}
	if err == nil && flags.Changed("classic") {
		c.Classic, err = flags.GetBool("classic")
	}
	if err == nil && flags.Changed("hints") {
		c.Hints, err = flags.GetInt("hints")
	}
	if err != nil {
		return fmt.Errorf("read flags: %w", err)
	}
	return nil
}

// resolveDBPath returns the database path using --db or WORDGUESS_DB
// (highest priority), then the default XDG path.
func resolveDBPath() (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the database at path, or the resolved default when path
// is empty.
func openStore(path string) (*store.Store, error) {
	if path == "" {
		var err error
		if path, err = resolveDBPath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
