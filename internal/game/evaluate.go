package game

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// State holds the parts of a game the turn evaluator mutates.
type State struct {
	Revealed          []rune
	AttemptsRemaining int
}

// NewState returns the initial state for secret: every position hidden and
// the full attempt budget.
func NewState(secret string, attempts int) State {
	revealed := make([]rune, utf8.RuneCountInString(secret))
	for i := range revealed {
		revealed[i] = Placeholder
	}
	return State{Revealed: revealed, AttemptsRemaining: attempts}
}

// Positions returns every index of secret whose letter equals guess,
// compared case-insensitively. A guess that is not exactly one character
// matches nothing.
func Positions(secret, guess string) []int {
	letter, ok := singleRune(guess)
	if !ok {
		return nil
	}
	want := unicode.ToLower(letter)

	var idx []int
	for i, r := range []rune(secret) {
		if unicode.ToLower(r) == want {
			idx = append(idx, i)
		}
	}
	return idx
}

// Evaluate scores guess against secret and returns the next state.
//
// On a hit every matching position is set to the upper-cased guess and the
// attempt count is unchanged. On a miss the revealed letters are unchanged
// and one attempt is charged, never going below zero. The input state is
// not modified.
func Evaluate(secret string, st State, guess string) (State, Outcome) {
	next := State{
		Revealed:          slices.Clone(st.Revealed),
		AttemptsRemaining: st.AttemptsRemaining,
	}

	idx := Positions(secret, guess)
	if len(idx) == 0 {
		if next.AttemptsRemaining > 0 {
			next.AttemptsRemaining--
		}
		return next, OutcomeMiss
	}

	letter, _ := singleRune(guess)
	upper := unicode.ToUpper(letter)
	for _, i := range idx {
		next.Revealed[i] = upper
	}
	return next, OutcomeHit
}

// Solved reports whether revealed spells secret, ignoring case.
func Solved(secret string, revealed []rune) bool {
	letters := []rune(secret)
	if len(letters) != len(revealed) {
		return false
	}
	for i, r := range letters {
		if unicode.ToLower(r) != unicode.ToLower(revealed[i]) {
			return false
		}
	}
	return true
}

// ParseLetter trims input and returns its letter if it is exactly one
// alphabetic character.
func ParseLetter(input string) (rune, bool) {
	r, ok := singleRune(strings.TrimSpace(input))
	if !ok || !unicode.IsLetter(r) {
		return 0, false
	}
	return r, true
}

func singleRune(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}
