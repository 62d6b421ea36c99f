package components

import (
	"unicode"
	"unicode/utf8"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput for guess entry.
type TextInput struct {
	Model textinput.Model

	// LettersOnly drops key presses that would insert anything but a letter.
	LettersOnly bool
}

// NewTextInput creates a focused input. limit caps the number of
// characters; zero means unlimited.
func NewTextInput(placeholder string, lettersOnly bool, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if limit > 0 {
		ti.CharLimit = limit
	}
	return TextInput{Model: ti, LettersOnly: lettersOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.LettersOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if r, size := utf8.DecodeRuneInString(key); size == len(key) && r != utf8.RuneError && !unicode.IsLetter(r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

func (t TextInput) Value() string {
	return t.Model.Value()
}

// Clear empties the input after a submission.
func (t *TextInput) Clear() {
	t.Model.SetValue("")
}
