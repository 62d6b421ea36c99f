package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordguess/internal/console"
	"github.com/abhisek/wordguess/internal/game"
	"github.com/abhisek/wordguess/internal/screen"
	"github.com/abhisek/wordguess/internal/ui/layout"
	"github.com/abhisek/wordguess/internal/ui/theme"
)

// ResultScreen shows how a finished game ended.
type ResultScreen struct {
	g *game.Game
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

func New(g *game.Game) *ResultScreen {
	return &ResultScreen{g: g}
}

func (s *ResultScreen) Init() tea.Cmd { return nil }

func (s *ResultScreen) Title() string {
	if s.g.Status() == game.StatusWon {
		return "You won"
	}
	return "Game over"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Quit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	var final strings.Builder
	console.NewPresenter(&final).Final(s.g)

	style := theme.Incorrect
	if s.g.Status() == game.StatusWon {
		style = theme.Correct
	}

	misses := 0
	for _, t := range s.g.Turns() {
		if t.Outcome == game.OutcomeMiss {
			misses++
		}
	}

	body := layout.Center(width,
		style.Render(strings.TrimSpace(final.String())),
		"",
		theme.Title.Render(strings.ToUpper(s.g.Secret())),
		"",
		theme.Hint.Render(fmt.Sprintf("%d turns, %d misses", len(s.g.Turns()), misses)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
