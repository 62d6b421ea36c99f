package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordguess/internal/app"
	"github.com/abhisek/wordguess/internal/console"
	"github.com/abhisek/wordguess/internal/game"
	"github.com/abhisek/wordguess/internal/hint"
	"github.com/abhisek/wordguess/internal/llm"
	"github.com/abhisek/wordguess/internal/words"
)

// runGame picks a secret word and plays one game.
func runGame(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	src, err := words.Open(cfg.Words, storeWords)
	if err != nil {
		return fmt.Errorf("open word source: %w", err)
	}
	secret, err := words.Choose(ctx, src, words.NewPicker(cfg.Seed))
	if err != nil {
		return fmt.Errorf("choose a word from %s: %w", src, err)
	}
	logger.Debug().Stringer("source", src).Msg("secret word chosen")

	opts := []game.Option{game.WithHints(cfg.Hints)}
	if cfg.Classic {
		opts = append(opts, game.WithClassicRules())
	}
	g, err := game.New(secret, opts...)
	if err != nil {
		return err
	}

	svc, cleanup := newHintService(ctx, g)
	defer cleanup()

	tui, _ := cmd.Flags().GetBool("tui")
	if tui {
		o := app.Options{Game: g, Logger: logger}
		if svc != nil {
			o.Hinter = svc
		}
		return app.Run(ctx, o)
	}

	var hinter console.Hinter
	if svc != nil {
		hinter = svc
	}
	return console.Run(ctx, g, cmd.InOrStdin(), cmd.OutOrStdout(), hinter)
}

// newHintService returns nil when g allows no hints. LLM clues are used when
// a provider is configured; otherwise hints suggest letters. Requests are
// recorded in the store when it can be opened.
func newHintService(ctx context.Context, g *game.Game) (*hint.Service, func()) {
	noop := func() {}
	if g.HintsLeft() == 0 {
		return nil, noop
	}
	opts := []hint.Option{
		hint.WithLogger(logger),
		hint.WithTimeout(cfg.LLM.Timeout),
		hint.WithSeed(cfg.Seed),
	}
	if cfg.LLM.Provider == "" {
		return hint.New(opts...), noop
	}

	var rec llm.Recorder
	cleanup := noop
	st, err := openStore("")
	if err != nil {
		logger.Warn().Err(err).Msg("llm requests will not be recorded")
	} else {
		rec = st.EventRepo()
		cleanup = func() { _ = st.Close() }
	}

	provider, err := llm.NewProvider(ctx, cfg.LLM, logger, rec)
	if err != nil {
		logger.Warn().Err(err).Msg("llm unavailable, hints will suggest letters")
		return hint.New(opts...), cleanup
	}
	return hint.New(append(opts, hint.WithProvider(provider))...), cleanup
}

// storeWords backs the sqlite word source. The store is opened for the
// read and closed right after.
func storeWords(path string) (words.WordLister, error) {
	return storeLister(path), nil
}

type storeLister string

func (p storeLister) Words(ctx context.Context) ([]string, error) {
	st, err := openStore(string(p))
	if err != nil {
		return nil, err
	}
	defer st.Close()
	return st.WordRepo().Words(ctx)
}

func (p storeLister) CountWords(ctx context.Context) (int, error) {
	st, err := openStore(string(p))
	if err != nil {
		return 0, err
	}
	defer st.Close()
	return st.WordRepo().CountWords(ctx)
}
