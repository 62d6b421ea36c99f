// Package console plays a game over line-oriented text streams.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/abhisek/wordguess/internal/game"
	"github.com/abhisek/wordguess/internal/hint"
)

// HintKey is the input that asks for a hint instead of guessing.
const HintKey = "?"

// ErrInputClosed is returned when input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// Hinter hands out hints for a game in progress.
type Hinter interface {
	Hint(ctx context.Context, g *game.Game) (hint.Hint, error)
}

// Run plays g to completion, reading one line per turn from in and writing
// narration to out. hinter may be nil. Run returns nil once the final
// message is written.
func Run(ctx context.Context, g *game.Game, in io.Reader, out io.Writer, hinter Hinter) error {
	log := zerolog.Ctx(ctx).With().Str("game_id", g.ID()).Logger()
	p := NewPresenter(out)
	lines := readLines(ctx, in)

	for !g.Status().Terminal() {
		p.Status(g)
		p.Prompt()

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				return ErrInputClosed
			}
			if res.err != nil {
				return fmt.Errorf("read input: %w", res.err)
			}
			line = res.text
		}

		if hinter != nil && !g.Classic() && strings.TrimSpace(line) == HintKey {
			h, err := hinter.Hint(ctx, g)
			switch {
			case errors.Is(err, game.ErrNoHints):
				p.NoHints()
			case err != nil:
				return err
			default:
				log.Debug().Str("kind", string(h.Kind)).Msg("hint")
				p.Hint(h.Text)
			}
			continue
		}

		turn, err := g.Guess(line)
		if err != nil {
			return err
		}
		log.Debug().
			Str("guess", turn.Guess).
			Stringer("outcome", turn.Outcome).
			Int("attempts_remaining", turn.AttemptsRemaining).
			Msg("turn")
		p.Feedback(turn)
	}

	log.Info().Stringer("status", g.Status()).Int("turns", len(g.Turns())).Msg("game over")
	p.Final(g)
	return nil
}

type inputLine struct {
	text string
	err  error
}

// readLines delivers in line by line, of any length, until EOF, a read
// error or ctx is done. A read error is delivered as the last item. The
// reader goroutine may stay blocked in Read after ctx is canceled.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			text, err := r.ReadString('\n')
			if errors.Is(err, io.EOF) {
				if text == "" {
					return
				}
				err = nil
			}
			res := inputLine{text: strings.TrimRight(text, "\r\n"), err: err}
			select {
			case lines <- res:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}
