package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var testPersonas = []string{"ceo", "developer", "designer", "project_manager"}

func TestNewInputField(t *testing.T) {
	field := NewInputField(testPersonas)

	if field == nil {
		t.Fatal("NewInputField returned nil")
	}
	if field.width != 80 {
		t.Errorf("Default width = %d, want 80", field.width)
	}
	if field.input.CharLimit != 500 {
		t.Errorf("CharLimit = %d, want 500", field.input.CharLimit)
	}
	if field.input.Placeholder == "" {
		t.Error("Placeholder should be set")
	}
}

func TestInputField_SetWidth(t *testing.T) {
	field := NewInputField(testPersonas)

	field.SetWidth(120)

	if field.width != 120 {
		t.Errorf("Width after SetWidth(120) = %d, want 120", field.width)
	}
	// Input width should be width - 4 for prompt and padding
	expectedInputWidth := 116
	if field.input.Width != expectedInputWidth {
		t.Errorf("Input width = %d, want %d", field.input.Width, expectedInputWidth)
	}
}

func TestInputField_Update_Enter_EmptyInput(t *testing.T) {
	field := NewInputField(testPersonas)

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	updatedField, cmd := field.Update(msg)

	if cmd != nil {
		result := cmd()
		if _, ok := result.(MessageSubmittedMsg); ok {
			t.Error("Should not submit for empty input")
		}
	}

	if updatedField == nil {
		t.Error("Update returned nil field")
	}
}

func TestInputField_Update_Enter_RoutedMessage(t *testing.T) {
	field := NewInputField(testPersonas)
	field.input.SetValue("what is our runway")

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := field.Update(msg)

	if cmd == nil {
		t.Fatal("Expected command from enter with text")
	}

	result := cmd()
	submitted, ok := result.(MessageSubmittedMsg)
	if !ok {
		t.Fatalf("Expected MessageSubmittedMsg, got %T", result)
	}

	if submitted.Text != "what is our runway" {
		t.Errorf("Text = %q, want %q", submitted.Text, "what is our runway")
	}
	if submitted.PersonaID != "" {
		t.Errorf("PersonaID = %q, want empty for routed messages", submitted.PersonaID)
	}
	if submitted.Team {
		t.Error("Team should be false without @team")
	}
}

func TestInputField_Update_Enter_Mention(t *testing.T) {
	field := NewInputField(testPersonas)
	field.input.SetValue("@developer is the api ready")

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := field.Update(msg)

	result := cmd()
	submitted := result.(MessageSubmittedMsg)

	if submitted.PersonaID != "developer" {
		t.Errorf("PersonaID = %q, want %q", submitted.PersonaID, "developer")
	}
	if submitted.Text != "is the api ready" {
		t.Errorf("Text = %q, want %q", submitted.Text, "is the api ready")
	}
}

func TestInputField_Update_Enter_TeamMention(t *testing.T) {
	field := NewInputField(testPersonas)
	field.input.SetValue("@team ship friday?")

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	_, cmd := field.Update(msg)

	result := cmd()
	submitted := result.(MessageSubmittedMsg)

	if !submitted.Team {
		t.Error("Team should be true for @team")
	}
	if submitted.PersonaID != "" {
		t.Errorf("PersonaID = %q, want empty for team messages", submitted.PersonaID)
	}
	if submitted.Text != "ship friday?" {
		t.Errorf("Text = %q, want %q", submitted.Text, "ship friday?")
	}
}

func TestInputField_Update_EnterClearsInput(t *testing.T) {
	field := NewInputField(testPersonas)
	field.input.SetValue("test message")

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	updatedField, _ := field.Update(msg)

	if updatedField.input.Value() != "" {
		t.Errorf("Input should be cleared after enter, got %q", updatedField.input.Value())
	}
}

func TestInputField_Update_OtherKeys(t *testing.T) {
	field := NewInputField(testPersonas)

	for _, char := range "hello" {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{char}}
		field, _ = field.Update(msg)
	}

	if field.input.Value() != "hello" {
		t.Errorf("Input value = %q, want %q", field.input.Value(), "hello")
	}
}

func TestInputField_Focus(t *testing.T) {
	field := NewInputField(testPersonas)

	if cmd := field.Focus(); cmd == nil {
		t.Error("Focus should return a command")
	}
}

func TestInputField_View(t *testing.T) {
	field := NewInputField(testPersonas)
	field.SetWidth(80)

	view := field.View()

	if view == "" {
		t.Error("View should not be empty")
	}
	if len(view) < 10 {
		t.Error("View seems too short")
	}
}
