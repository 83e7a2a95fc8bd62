package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MessageSubmittedMsg is sent when the user submits a message.
type MessageSubmittedMsg struct {
	// Text is the message with any mention stripped.
	Text string
	// PersonaID is the explicitly addressed persona, empty when the
	// router should pick.
	PersonaID string
	// Team requests a full-team consensus instead of a single persona.
	Team bool
}

// InputField is the text input component for composing messages.
type InputField struct {
	input    textinput.Model
	personas []string
	width    int
}

// NewInputField creates an InputField aware of the persona ids it can
// resolve @-mentions against.
func NewInputField(personas []string) *InputField {
	ti := textinput.New()
	ti.Placeholder = "Ask the team, or @persona for someone specific..."
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	return &InputField{
		input:    ti,
		personas: personas,
		width:    80,
	}
}

// SetWidth sets the width of the input field.
func (f *InputField) SetWidth(width int) {
	f.width = width
	f.input.Width = width - 4 // Account for prompt and padding
}

// Update handles messages for the input field.
func (f *InputField) Update(msg tea.Msg) (*InputField, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			text := f.input.Value()
			if text != "" {
				target, clean := ParseMention(text, f.personas)
				f.input.Reset()
				return f, func() tea.Msg {
					return MessageSubmittedMsg{
						Text:      clean,
						PersonaID: personaTarget(target),
						Team:      target == "team",
					}
				}
			}
		}
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// personaTarget maps the special team target to no persona.
func personaTarget(target string) string {
	if target == "team" {
		return ""
	}
	return target
}

// View renders the input field.
func (f *InputField) View() string {
	promptStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(f.width - 2)

	prompt := promptStyle.Render("> ")
	return boxStyle.Render(prompt + f.input.View())
}

// Focus sets focus on the input field.
func (f *InputField) Focus() tea.Cmd {
	return f.input.Focus()
}

// Blur removes focus from the input field.
func (f *InputField) Blur() {
	f.input.Blur()
}
