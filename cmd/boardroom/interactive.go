package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"boardroom/internal/config"
	"boardroom/internal/orchestrator"
	"boardroom/internal/persona"
	"boardroom/internal/tui"
	"boardroom/pkg/models"
)

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	session := &chatSession{orch: orch}
	app := tui.NewChatApp(orch.PersonaIDs(), session.respond)
	app.Append(tui.ChatEntry{
		Speaker: "System",
		Text:    fmt.Sprintf("Team ready: %s. /help for commands.", strings.Join(orch.PersonaIDs(), ", ")),
	})

	watcher, err := watchTeam(cfg, orch)
	if err != nil {
		return err
	}
	if watcher != nil {
		defer watcher.Close()
	}

	program := tea.NewProgram(app, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// watchTeam starts the roster watcher when configured. Roster edits take
// effect on the next message.
func watchTeam(cfg *config.Config, orch *orchestrator.Orchestrator) (*persona.TeamWatcher, error) {
	if !cfg.Team.Watch || cfg.Team.File == "" {
		return nil, nil
	}
	return persona.WatchTeam(cfg.Team.File,
		func(defs []persona.Definition) {
			orch.SetTeam(defs, cfg.Team.DefaultPersona)
		},
		nil)
}

// chatSession adapts the orchestrator to the chat app's submit callback.
type chatSession struct {
	orch *orchestrator.Orchestrator
}

// respond handles one submission. It runs on a background goroutine, so
// blocking on model calls is fine.
func (s *chatSession) respond(msg tui.MessageSubmittedMsg) []tui.ChatEntry {
	if strings.HasPrefix(msg.Text, "/") {
		return s.command(msg.Text)
	}

	ctx := context.Background()
	task := models.TaskPayload{Content: msg.Text}

	if msg.Team {
		return s.teamRound(ctx, task)
	}

	var result orchestrator.RouteResult
	if msg.PersonaID != "" {
		result = s.orch.RouteToAgent(ctx, msg.PersonaID, task)
	} else {
		result = s.orch.AnalyzeAndRoute(ctx, task)
	}

	if result.Failed() {
		return []tui.ChatEntry{{Speaker: "System", Text: result.Error, Err: true}}
	}
	resp := result.Response
	return []tui.ChatEntry{{Speaker: resp.Sender, Role: resp.Role, Text: resp.Content}}
}

// teamRound fans the message out to everyone and appends a synthesis
// when a backend is available.
func (s *chatSession) teamRound(ctx context.Context, task models.TaskPayload) []tui.ChatEntry {
	consensus := s.orch.TeamConsensus(ctx, task)

	ids := make([]string, 0, len(consensus.Responses))
	for id := range consensus.Responses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var entries []tui.ChatEntry
	for _, id := range ids {
		resp := consensus.Responses[id]
		if resp.Failed() {
			entries = append(entries, tui.ChatEntry{
				Speaker: id, Text: resp.Content + " (" + resp.Error + ")", Err: true,
			})
			continue
		}
		entries = append(entries, tui.ChatEntry{Speaker: resp.Sender, Role: resp.Role, Text: resp.Content})
	}

	if synthesis, err := s.orch.SynthesizeResponses(ctx, consensus.Responses); err == nil {
		entries = append(entries, tui.ChatEntry{Speaker: "Team Summary", Text: synthesis})
	}
	return entries
}

// command handles slash commands in the transcript.
func (s *chatSession) command(text string) []tui.ChatEntry {
	cmd, arg, _ := strings.Cut(strings.TrimPrefix(text, "/"), " ")

	switch cmd {
	case "help":
		return []tui.ChatEntry{{Speaker: "System", Text: strings.Join([]string{
			"/team            list personas",
			"/history [n]     show recent interactions",
			"/clear           clear interaction history",
			"/status <name>   gather a project status",
		}, "\n")}}

	case "team":
		return []tui.ChatEntry{{Speaker: "System", Text: strings.Join(s.orch.PersonaIDs(), ", ")}}

	case "history":
		limit := 10
		fmt.Sscanf(arg, "%d", &limit)
		entries := s.orch.History(limit)
		if len(entries) == 0 {
			return []tui.ChatEntry{{Speaker: "System", Text: "No interactions yet."}}
		}
		var lines []string
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("%s  %s: %s",
				e.Timestamp.Format("15:04:05"), e.PersonaID, firstLine(e.Task.Content)))
		}
		return []tui.ChatEntry{{Speaker: "System", Text: strings.Join(lines, "\n")}}

	case "clear":
		s.orch.ClearHistory()
		return []tui.ChatEntry{{Speaker: "System", Text: "History cleared."}}

	case "status":
		if arg == "" {
			return []tui.ChatEntry{{Speaker: "System", Text: "Usage: /status <project name>", Err: true}}
		}
		report := s.orch.ProjectStatus(context.Background(), arg)
		return []tui.ChatEntry{{Speaker: "System", Text: report.Content}}

	default:
		return []tui.ChatEntry{{Speaker: "System", Text: "Unknown command. /help lists commands.", Err: true}}
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	if len(line) > 60 {
		return line[:60] + "..."
	}
	return line
}
