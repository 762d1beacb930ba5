package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptCancelled is returned when the operator aborts a prompt
var ErrPromptCancelled = errors.New("prompt cancelled")

// promptModel is a bubbletea model that asks for a single line of input.
type promptModel struct {
	label string
	input textinput.Model
	done  bool
}

func newPromptModel(label string) promptModel {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Focus()
	return promptModel{label: label, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.label, m.input.View())
}

// promptLine runs the TUI and returns the entered line.
func promptLine(label string) (string, error) {
	p := tea.NewProgram(newPromptModel(label))
	result, err := p.Run()
	if err != nil {
		return "", err
	}
	final, ok := result.(promptModel)
	if !ok || !final.done {
		return "", ErrPromptCancelled
	}
	return final.input.Value(), nil
}
