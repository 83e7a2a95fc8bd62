package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ChatEntry is one line group in the transcript.
type ChatEntry struct {
	// Speaker is the display name ("You", a persona name, "System").
	Speaker string
	// Role annotates the speaker, shown dimmed after the name.
	Role string
	// Text is the message body.
	Text string
	// Err marks failure entries, rendered in the error style.
	Err bool
}

// ResponsesMsg delivers the entries produced for one submission.
type ResponsesMsg struct {
	Entries []ChatEntry
}

// RespondFunc produces transcript entries for a submitted message. It
// runs in a background goroutine and may block on model calls.
type RespondFunc func(msg MessageSubmittedMsg) []ChatEntry

// ChatApp is the main model for interactive mode: a transcript above an
// input field.
type ChatApp struct {
	entries    []ChatEntry
	inputField *InputField
	respond    RespondFunc
	width      int
	height     int
	busy       bool
	quitting   bool

	headerStyle  lipgloss.Style
	speakerStyle lipgloss.Style
	roleStyle    lipgloss.Style
	errorStyle   lipgloss.Style
	hintStyle    lipgloss.Style
}

// NewChatApp creates a chat app over the given persona ids. respond is
// invoked per submission to produce the reply entries.
func NewChatApp(personas []string, respond RespondFunc) *ChatApp {
	return &ChatApp{
		inputField: NewInputField(personas),
		respond:    respond,
		width:      80,
		height:     24,

		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		speakerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		roleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
		hintStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")),
	}
}

// Append adds entries to the transcript directly, e.g. a greeting.
func (a *ChatApp) Append(entries ...ChatEntry) {
	a.entries = append(a.entries, entries...)
}

// Init implements tea.Model.
func (a *ChatApp) Init() tea.Cmd {
	return a.inputField.Focus()
}

// Update implements tea.Model.
func (a *ChatApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			a.quitting = true
			return a, tea.Quit
		}
		if a.busy {
			// Drop typing into a pending submission's input besides quit.
			return a, nil
		}
		var cmd tea.Cmd
		a.inputField, cmd = a.inputField.Update(msg)
		return a, cmd

	case MessageSubmittedMsg:
		a.entries = append(a.entries, ChatEntry{Speaker: "You", Text: submittedLabel(msg)})
		if a.respond == nil {
			return a, nil
		}
		a.busy = true
		respond := a.respond
		return a, func() tea.Msg {
			return ResponsesMsg{Entries: respond(msg)}
		}

	case ResponsesMsg:
		a.busy = false
		a.entries = append(a.entries, msg.Entries...)
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.inputField.SetWidth(msg.Width)
		return a, nil
	}

	var cmd tea.Cmd
	a.inputField, cmd = a.inputField.Update(msg)
	return a, cmd
}

// submittedLabel renders the user's line with its addressing restored.
func submittedLabel(msg MessageSubmittedMsg) string {
	if msg.Team {
		return "@team " + msg.Text
	}
	if msg.PersonaID != "" {
		return "@" + msg.PersonaID + " " + msg.Text
	}
	return msg.Text
}

// View implements tea.Model.
func (a *ChatApp) View() string {
	if a.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(a.headerStyle.Render("Boardroom"))
	b.WriteString("\n\n")

	b.WriteString(a.transcript())
	b.WriteString("\n")

	if a.busy {
		b.WriteString(a.hintStyle.Render("thinking..."))
		b.WriteString("\n")
	}

	b.WriteString(a.inputField.View())
	b.WriteString("\n")
	b.WriteString(a.hintStyle.Render("@persona to address someone, @team for everyone, esc to quit"))

	return b.String()
}

// transcript renders the most recent entries that fit the window.
func (a *ChatApp) transcript() string {
	// Header, input box and footer take up eight rows.
	budget := a.height - 8
	if budget < 4 {
		budget = 4
	}

	var lines []string
	for _, entry := range a.entries {
		lines = append(lines, a.renderEntry(entry)...)
	}
	if len(lines) > budget {
		lines = lines[len(lines)-budget:]
	}
	return strings.Join(lines, "\n")
}

// renderEntry renders one entry as a speaker line plus wrapped body.
func (a *ChatApp) renderEntry(entry ChatEntry) []string {
	speaker := a.speakerStyle.Render(entry.Speaker)
	if entry.Role != "" {
		speaker += " " + a.roleStyle.Render(fmt.Sprintf("(%s)", entry.Role))
	}

	body := entry.Text
	if entry.Err {
		body = a.errorStyle.Render(body)
	}

	lines := []string{speaker}
	for _, line := range strings.Split(body, "\n") {
		lines = append(lines, "  "+line)
	}
	lines = append(lines, "")
	return lines
}
