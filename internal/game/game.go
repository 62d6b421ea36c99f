package game

import (
	"slices"
	"unicode"

	"github.com/google/uuid"
)

// Game is one round of word guessing. It owns the secret word and the
// evolving state, and applies guesses one turn at a time.
type Game struct {
	id        string
	secret    string
	state     State
	status    Status
	classic   bool
	guessed   map[rune]bool
	order     []rune
	turns     []Turn
	hintsLeft int
}

// Option configures a Game.
type Option func(*Game)

// WithClassicRules disables input validation, guess history and hints.
// Every input is evaluated as-is, so malformed input is a miss and
// re-guessing a letter is scored again.
func WithClassicRules() Option {
	return func(g *Game) { g.classic = true }
}

// WithHints sets how many hints the player may request.
func WithHints(n int) Option {
	return func(g *Game) {
		if n < 0 {
			n = 0
		}
		g.hintsLeft = n
	}
}

// WithID overrides the generated game ID.
func WithID(id string) Option {
	return func(g *Game) { g.id = id }
}

// New starts a game for secret.
func New(secret string, opts ...Option) (*Game, error) {
	if secret == "" {
		return nil, ErrEmptyWord
	}

	g := &Game{
		id:        uuid.NewString(),
		secret:    secret,
		state:     NewState(secret, DefaultAttempts),
		status:    StatusActive,
		guessed:   make(map[rune]bool),
		hintsLeft: DefaultHints,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.classic {
		g.hintsLeft = 0
	}
	return g, nil
}

// Guess plays one turn.
func (g *Game) Guess(input string) (Turn, error) {
	if g.status.Terminal() {
		return Turn{}, ErrGameOver
	}

	guess := input
	if !g.classic {
		letter, ok := ParseLetter(input)
		if !ok {
			return g.record(Turn{Guess: input, Outcome: OutcomeInvalid}), nil
		}
		guess = string(letter)

		key := unicode.ToLower(letter)
		if g.guessed[key] {
			return g.record(Turn{Guess: guess, Outcome: OutcomeRepeat}), nil
		}
		g.guessed[key] = true
		g.order = append(g.order, unicode.ToUpper(letter))
	}

	next, outcome := Evaluate(g.secret, g.state, guess)
	g.state = next

	switch {
	case Solved(g.secret, g.state.Revealed):
		g.status = StatusWon
	case g.state.AttemptsRemaining == 0:
		g.status = StatusLost
	}

	turn := Turn{Guess: guess, Outcome: outcome}
	if outcome == OutcomeHit {
		turn.Matched = len(Positions(g.secret, guess))
	}
	return g.record(turn), nil
}

func (g *Game) record(t Turn) Turn {
	t.AttemptsRemaining = g.state.AttemptsRemaining
	t.Status = g.status
	g.turns = append(g.turns, t)
	return t
}

// UseHint consumes one hint.
func (g *Game) UseHint() error {
	if g.status.Terminal() {
		return ErrGameOver
	}
	if g.hintsLeft <= 0 {
		return ErrNoHints
	}
	g.hintsLeft--
	return nil
}

// HiddenLetters returns the distinct upper-cased letters of the secret word
// that are not revealed yet, in order of first appearance.
func (g *Game) HiddenLetters() []rune {
	seen := make(map[rune]bool)
	var out []rune
	for i, r := range []rune(g.secret) {
		if g.state.Revealed[i] != Placeholder || !unicode.IsLetter(r) {
			continue
		}
		u := unicode.ToUpper(r)
		if !seen[u] {
			seen[u] = true
			out = append(out, u)
		}
	}
	return out
}

func (g *Game) ID() string             { return g.id }
func (g *Game) Secret() string         { return g.secret }
func (g *Game) Status() Status         { return g.status }
func (g *Game) Classic() bool          { return g.classic }
func (g *Game) HintsLeft() int         { return g.hintsLeft }
func (g *Game) AttemptsRemaining() int { return g.state.AttemptsRemaining }

// Revealed renders the revealed state, placeholders included.
func (g *Game) Revealed() string {
	return string(g.state.Revealed)
}

// State returns a copy of the current state.
func (g *Game) State() State {
	return State{
		Revealed:          slices.Clone(g.state.Revealed),
		AttemptsRemaining: g.state.AttemptsRemaining,
	}
}

// Guessed returns the upper-cased letters guessed so far, in guess order.
// Classic games do not keep a history and return nil.
func (g *Game) Guessed() []rune {
	return slices.Clone(g.order)
}

// Turns returns every turn played, including invalid and repeated input.
func (g *Game) Turns() []Turn {
	return slices.Clone(g.turns)
}
