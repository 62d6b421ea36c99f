package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/wordguess/internal/game"
)

// Presenter writes game narration. It never changes the game.
type Presenter struct {
	w io.Writer
}

func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Status shows the board and the attempts left.
func (p *Presenter) Status(g *game.Game) {
	fmt.Fprintf(p.w, "The word now looks like this: %s\n", g.Revealed())
	fmt.Fprintf(p.w, "You have %d guesses left\n", g.AttemptsRemaining())
}

func (p *Presenter) Prompt() {
	fmt.Fprint(p.w, "Type a single letter here, then press enter: ")
}

// Feedback reports the outcome of one turn.
func (p *Presenter) Feedback(t game.Turn) {
	switch t.Outcome {
	case game.OutcomeHit:
		fmt.Fprintln(p.w, "That guess is correct.")
	case game.OutcomeMiss:
		fmt.Fprintf(p.w, "There are no %s's in the word\n", t.Guess)
	case game.OutcomeInvalid:
		fmt.Fprintln(p.w, "Please type a single letter.")
	case game.OutcomeRepeat:
		fmt.Fprintf(p.w, "You already guessed %s.\n", strings.ToUpper(t.Guess))
	}
}

func (p *Presenter) Hint(text string) {
	fmt.Fprintf(p.w, "Hint: %s\n", text)
}

func (p *Presenter) NoHints() {
	fmt.Fprintln(p.w, "No hints left.")
}

// Final announces the result of a finished game.
func (p *Presenter) Final(g *game.Game) {
	if g.Status() == game.StatusWon {
		fmt.Fprintf(p.w, "Congratulations, the word is: %s\n", g.Secret())
		return
	}
	fmt.Fprintf(p.w, "Sorry, you lost. The secret word was: %s\n", g.Secret())
}
