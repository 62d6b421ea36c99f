// Package hint produces hints for a game in progress: a one-line clue from
// an LLM when one is configured, otherwise a hidden letter to try.
package hint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/wordguess/internal/game"
	"github.com/abhisek/wordguess/internal/llm"
)

// Kind says where a hint came from.
type Kind string

const (
	KindClue   Kind = "clue"
	KindLetter Kind = "letter"
	KindNone   Kind = "none"
)

// Hint is one piece of help for the player.
type Hint struct {
	Text string
	Kind Kind
}

// Board is the part of a game a hint is computed from. Taking a copy lets
// hints be generated off the goroutine that owns the game.
type Board struct {
	GameID   string
	Secret   string
	Revealed string
	Guessed  []rune
	Hidden   []rune
}

// BoardOf captures g's current board.
func BoardOf(g *game.Game) Board {
	return Board{
		GameID:   g.ID(),
		Secret:   g.Secret(),
		Revealed: g.Revealed(),
		Guessed:  g.Guessed(),
		Hidden:   g.HiddenLetters(),
	}
}

// Service generates hints. The zero value is not usable; call New.
type Service struct {
	provider llm.Provider
	log      zerolog.Logger
	timeout  time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Service)

// WithProvider enables LLM clues.
func WithProvider(p llm.Provider) Option {
	return func(s *Service) { s.provider = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithTimeout bounds each clue request. Zero means no bound beyond ctx.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithSeed makes letter suggestions reproducible. A zero seed keeps the
// randomly seeded generator.
func WithSeed(seed uint64) Option {
	return func(s *Service) {
		if seed == 0 {
			return
		}
		s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		log: zerolog.Nop(),
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hint spends one of g's hints and returns the hint for the current board.
// It fails only when the game has no hints left or is already over.
func (s *Service) Hint(ctx context.Context, g *game.Game) (Hint, error) {
	if err := g.UseHint(); err != nil {
		return Hint{}, err
	}
	return s.Suggest(ctx, BoardOf(g)), nil
}

// Suggest computes a hint for b without touching any game. LLM failures
// fall back to a letter suggestion.
func (s *Service) Suggest(ctx context.Context, b Board) Hint {
	if s.provider != nil {
		clue, err := s.clue(ctx, b)
		if err == nil {
			return Hint{Text: clue, Kind: KindClue}
		}
		s.log.Warn().Err(err).Str("game_id", b.GameID).Msg("clue unavailable, suggesting a letter")
	}
	return s.letter(b)
}

func (s *Service) letter(b Board) Hint {
	if len(b.Hidden) == 0 {
		return Hint{Text: "Every letter is already showing.", Kind: KindNone}
	}
	s.mu.Lock()
	r := b.Hidden[s.rng.IntN(len(b.Hidden))]
	s.mu.Unlock()
	return Hint{Text: fmt.Sprintf("Try the letter '%c'.", r), Kind: KindLetter}
}

const clueSystem = `You write clues for a word guessing game. Reply with one short clue about
the meaning of the secret word. Never write the word itself, any part of it,
or its spelling.`

var clueSchema = &llm.Schema{
	Name:        "word-clue",
	Description: "A one-line clue for the secret word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"clue": map[string]any{
				"type":        "string",
				"description": "One sentence that hints at the word without naming it",
				"maxLength":   160,
			},
		},
		"required":             []any{"clue"},
		"additionalProperties": false,
	},
}

var errLeak = errors.New("clue reveals the secret word")

func (s *Service) clue(ctx context.Context, b Board) (string, error) {
	ctx = llm.WithGameID(llm.WithPurpose(ctx, "hint"), b.GameID)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      clueSystem,
		Prompt:      cluePrompt(b),
		Schema:      clueSchema,
		MaxTokens:   200,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Clue string `json:"clue"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("decode clue: %w", err)
	}
	clue := strings.TrimSpace(out.Clue)
	if clue == "" {
		return "", errors.New("empty clue")
	}
	if strings.Contains(strings.ToLower(clue), strings.ToLower(b.Secret)) {
		return "", errLeak
	}
	return clue, nil
}

func cluePrompt(b Board) string {
	guessed := "none"
	if len(b.Guessed) > 0 {
		letters := make([]string, len(b.Guessed))
		for i, r := range b.Guessed {
			letters[i] = string(r)
		}
		guessed = strings.Join(letters, ", ")
	}
	return fmt.Sprintf(
		"Secret word: %q\nThe player currently sees: %s (%c marks a hidden letter)\nLetters already guessed: %s\nWrite the clue.",
		b.Secret, b.Revealed, game.Placeholder, guessed)
}
