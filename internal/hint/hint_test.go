package hint

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordguess/internal/game"
	"github.com/abhisek/wordguess/internal/llm"
)

func newGame(t *testing.T, secret string, opts ...game.Option) *game.Game {
	t.Helper()
	g, err := game.New(secret, opts...)
	require.NoError(t, err)
	return g
}

func TestHint_LetterFallback(t *testing.T) {
	g := newGame(t, "banana", game.WithHints(1))
	_, err := g.Guess("a")
	require.NoError(t, err)

	h, err := New(WithSeed(7)).Hint(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, KindLetter, h.Kind)
	assert.Contains(t, []string{"Try the letter 'B'.", "Try the letter 'N'."}, h.Text)
	assert.Equal(t, 0, g.HintsLeft())
	assert.Equal(t, game.DefaultAttempts, g.AttemptsRemaining(), "hints are free")
	assert.Equal(t, "-A-A-A", g.Revealed(), "hints do not reveal letters")
}

func TestHint_Clue(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"clue":"A yellow fruit monkeys love."}`)})
	g := newGame(t, "banana")

	h, err := New(WithProvider(mock)).Hint(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, Hint{Text: "A yellow fruit monkeys love.", Kind: KindClue}, h)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Contains(t, req.Prompt, `"banana"`)
	assert.Contains(t, req.Prompt, "------")
	assert.Equal(t, "word-clue", req.Schema.Name)
}

func TestHint_ClueFallbacks(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"provider error", llm.MockResponse{Err: &llm.ErrUnavailable{Err: errors.New("down")}}},
		{"leaks the word", llm.MockResponse{Content: json.RawMessage(`{"clue":"It is a BANANA."}`)}},
		{"blank clue", llm.MockResponse{Content: json.RawMessage(`{"clue":"   "}`)}},
		{"schema mismatch", llm.MockResponse{Content: json.RawMessage(`{"hint":"fruit"}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			g := newGame(t, "banana")

			h, err := New(WithProvider(mock), WithSeed(1)).Hint(context.Background(), g)
			require.NoError(t, err)
			assert.Equal(t, KindLetter, h.Kind)
		})
	}
}

func TestHint_NoneLeft(t *testing.T) {
	g := newGame(t, "cat", game.WithHints(0))
	_, err := New().Hint(context.Background(), g)
	require.ErrorIs(t, err, game.ErrNoHints)
}

func TestHint_GameOver(t *testing.T) {
	g := newGame(t, "a")
	_, err := g.Guess("a")
	require.NoError(t, err)

	_, err = New().Hint(context.Background(), g)
	require.ErrorIs(t, err, game.ErrGameOver)
}

func TestSuggest_NothingHidden(t *testing.T) {
	h := New().Suggest(context.Background(), Board{Secret: "x", Revealed: "X"})
	assert.Equal(t, KindNone, h.Kind)
}

func TestSuggest_SeedIsReproducible(t *testing.T) {
	b := Board{Secret: "abcdefgh", Revealed: "--------", Hidden: []rune("ABCDEFGH")}
	first, second := New(WithSeed(99)), New(WithSeed(99))
	for range 10 {
		assert.Equal(t, first.Suggest(context.Background(), b), second.Suggest(context.Background(), b))
	}
}

func TestSuggest_ZeroSeedIsRandom(t *testing.T) {
	b := Board{Secret: "abcdefghijklmnopqrstuvwxyz", Revealed: "--------------------------", Hidden: []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")}
	suggest := func(s *Service) string {
		var out string
		for range 12 {
			out += s.Suggest(context.Background(), b).Text
		}
		return out
	}
	assert.NotEqual(t, suggest(New(WithSeed(0))), suggest(New(WithSeed(0))))
}

func TestBoardOf(t *testing.T) {
	g := newGame(t, "Hello")
	_, err := g.Guess("l")
	require.NoError(t, err)

	b := BoardOf(g)
	assert.Equal(t, g.ID(), b.GameID)
	assert.Equal(t, "--LL-", b.Revealed)
	assert.Equal(t, []rune{'L'}, b.Guessed)
	assert.Equal(t, []rune{'H', 'E', 'O'}, b.Hidden)
}
