// Package tui provides the interactive chat interface for Boardroom.
//
// The chat app is a single scrolling transcript with an input field.
// Messages are routed to a persona by the orchestrator's keyword router,
// or addressed explicitly:
//   - "@developer how do we cache this?" goes straight to that persona
//   - "@team should we ship friday?" fans out to everyone at once
//
// The model call runs off the update loop; the transcript shows a
// "thinking" marker until the responses arrive.
//
// Usage:
//
//	app := tui.NewChatApp(personaIDs, respond)
//	program := tea.NewProgram(app, tea.WithAltScreen())
//	program.Run()
//
// respond is invoked in a background goroutine per submission and
// returns the transcript entries to append.
package tui
