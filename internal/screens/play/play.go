package play

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordguess/internal/console"
	"github.com/abhisek/wordguess/internal/game"
	"github.com/abhisek/wordguess/internal/hint"
	"github.com/abhisek/wordguess/internal/router"
	"github.com/abhisek/wordguess/internal/screen"
	"github.com/abhisek/wordguess/internal/screens/result"
	"github.com/abhisek/wordguess/internal/ui/components"
	"github.com/abhisek/wordguess/internal/ui/layout"
	"github.com/abhisek/wordguess/internal/ui/theme"
)

// Hinter computes a hint from a board snapshot. It is called off the UI
// goroutine.
type Hinter interface {
	Suggest(ctx context.Context, b hint.Board) hint.Hint
}

// hintMsg carries a finished hint back to the screen.
type hintMsg struct {
	hint hint.Hint
}

// PlayScreen runs one game: board, attempts, feedback and guess input.
type PlayScreen struct {
	g      *game.Game
	hinter Hinter
	input  components.TextInput

	feedback      string
	feedbackStyle lipgloss.Style
	waiting       bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New creates the screen. hinter may be nil.
func New(g *game.Game, hinter Hinter) *PlayScreen {
	limit := 1
	if g.Classic() {
		limit = 0
	}
	return &PlayScreen{
		g:      g,
		hinter: hinter,
		input:  components.NewTextInput("letter", !g.Classic(), limit),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PlayScreen) Title() string {
	return "Guess the word"
}

func (s *PlayScreen) Status() string {
	if s.canHint() {
		return fmt.Sprintf("%d guesses  %d hints", s.g.AttemptsRemaining(), s.g.HintsLeft())
	}
	return fmt.Sprintf("%d guesses", s.g.AttemptsRemaining())
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Guess"}}
	if s.canHint() {
		hints = append(hints, layout.KeyHint{Key: "?", Description: "Hint"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Give up"})
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case hintMsg:
		s.waiting = false
		s.say(func(p *console.Presenter) { p.Hint(msg.hint.Text) }, theme.Notice)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s.submit()
		case "esc":
			return s, tea.Quit
		case "?":
			if s.canHint() {
				return s, s.requestHint()
			}
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PlayScreen) canHint() bool {
	return s.hinter != nil && !s.g.Classic()
}

func (s *PlayScreen) submit() (screen.Screen, tea.Cmd) {
	value := s.input.Value()
	s.input.Clear()

	turn, err := s.g.Guess(value)
	if err != nil {
		s.feedback, s.feedbackStyle = err.Error(), theme.Incorrect
		return s, nil
	}

	style := theme.Notice
	switch turn.Outcome {
	case game.OutcomeHit:
		style = theme.Correct
	case game.OutcomeMiss:
		style = theme.Incorrect
	}
	s.say(func(p *console.Presenter) { p.Feedback(turn) }, style)

	if s.g.Status().Terminal() {
		next := result.New(s.g)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *PlayScreen) requestHint() tea.Cmd {
	if s.waiting {
		return nil
	}
	if err := s.g.UseHint(); err != nil {
		if errors.Is(err, game.ErrNoHints) {
			s.say((*console.Presenter).NoHints, theme.Notice)
		}
		return nil
	}

	s.waiting = true
	s.feedback, s.feedbackStyle = "Thinking of a hint...", theme.Hint
	board, hinter := hint.BoardOf(s.g), s.hinter
	return func() tea.Msg {
		return hintMsg{hint: hinter.Suggest(context.Background(), board)}
	}
}

// say renders one line of console narration as the feedback line.
func (s *PlayScreen) say(write func(*console.Presenter), style lipgloss.Style) {
	var b strings.Builder
	write(console.NewPresenter(&b))
	s.feedback, s.feedbackStyle = strings.TrimSpace(b.String()), style
}

func (s *PlayScreen) View(width, height int) string {
	blocks := []string{
		s.renderBoard(),
		"",
		components.NewAttemptsBar(s.g.AttemptsRemaining(), game.DefaultAttempts, min(width-8, 40)).View(),
	}
	if guessed := s.g.Guessed(); len(guessed) > 0 {
		letters := make([]string, len(guessed))
		for i, r := range guessed {
			letters[i] = string(r)
		}
		blocks = append(blocks, theme.Hint.Render("Guessed: "+strings.Join(letters, " ")))
	}
	blocks = append(blocks, "", s.feedbackStyle.Render(s.feedback), "", s.input.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, layout.Center(width, blocks...))
}

func (s *PlayScreen) renderBoard() string {
	tiles := make([]string, 0, len(s.g.Revealed()))
	for _, r := range s.g.Revealed() {
		style := theme.Revealed
		if r == game.Placeholder {
			style = theme.Hidden
		}
		tiles = append(tiles, style.Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
