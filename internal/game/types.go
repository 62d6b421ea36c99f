package game

import "errors"

const (
	// DefaultAttempts is the number of incorrect guesses a player may make.
	DefaultAttempts = 8

	// DefaultHints is the number of hints a player may request per game.
	DefaultHints = 1

	// Placeholder marks a position of the secret word that is not yet revealed.
	Placeholder = '-'
)

var (
	ErrEmptyWord = errors.New("secret word is empty")
	ErrGameOver  = errors.New("game is over")
	ErrNoHints   = errors.New("no hints left")
)

// Status is the state of the game loop.
type Status int

const (
	StatusActive Status = iota // Attempts left and word not fully revealed
	StatusWon                  // Every position revealed
	StatusLost                 // Attempts exhausted
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// Outcome is the result of a single guess.
type Outcome int

const (
	OutcomeHit     Outcome = iota // Letter occurs in the secret word
	OutcomeMiss                   // Letter does not occur; one attempt charged
	OutcomeInvalid                // Input is not a single letter; nothing charged
	OutcomeRepeat                 // Letter was guessed before; nothing charged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

// Turn records one submitted guess and what it did to the game.
type Turn struct {
	// Guess is the input as evaluated. Under the default rules it is the
	// single trimmed letter; under classic rules it is the raw input.
	Guess string

	Outcome Outcome

	// Matched is the number of positions the guess matched (0 unless a hit).
	Matched int

	// AttemptsRemaining and Status are the values after the turn.
	AttemptsRemaining int
	Status            Status
}
