package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	promptCharLimit = 4096
	promptWidth     = 48
)

// promptModel is a single-line input. It quits the program on submit or
// cancel and the caller reads the outcome from the final model.
type promptModel struct {
	label     string
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newPromptModel(label, initial string, masked bool) promptModel {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = promptCharLimit
	input.Width = promptWidth
	if masked {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.SetValue(initial)
	input.CursorEnd()
	input.Focus()

	return promptModel{
		label: label,
		input: input,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.submit):
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		case key.Matches(keyMsg, keys.cancel):
			m.cancelled = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString(" ")
	b.WriteString(m.input.View())

	if !m.submitted && !m.cancelled {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: confirm │ esc: cancel"))
	}
	b.WriteString("\n")

	return b.String()
}

// value is what the user submitted.
func (m promptModel) value() string {
	return m.input.Value()
}
