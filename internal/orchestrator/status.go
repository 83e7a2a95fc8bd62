package orchestrator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"boardroom/internal/persona"
	"boardroom/pkg/models"
)

// StatusReport is the compiled project status gathered from the team.
type StatusReport struct {
	// Content is the rendered report text.
	Content string `json:"content"`
	// Responses holds the individual contributions keyed by section.
	Responses map[string]models.Response `json:"responses"`
	// Timestamp is when the report was compiled (UTC).
	Timestamp time.Time `json:"timestamp"`
}

// ProjectStatus gathers a comprehensive status for the named project: the
// project manager reports overall progress, then the developer and
// designer add technical and design briefs. Calls are sequential; each
// section is short and the report reads top-down.
func (o *Orchestrator) ProjectStatus(ctx context.Context, projectName string) StatusReport {
	responses := make(map[string]models.Response, 3)

	overview := o.RouteToAgent(ctx, "project_manager", models.TaskPayload{
		Type:    persona.TypeProgressUpdate,
		Content: fmt.Sprintf("Provide status for %s", projectName),
	})
	responses["project_overview"] = sectionResponse("project_manager", overview)

	technical := o.RouteToAgent(ctx, "developer", models.TaskPayload{
		Brief:   true,
		Content: fmt.Sprintf("Technical progress on %s", projectName),
	})
	responses["technical_status"] = sectionResponse("developer", technical)

	design := o.RouteToAgent(ctx, "designer", models.TaskPayload{
		Brief:   true,
		Content: fmt.Sprintf("Design progress on %s", projectName),
	})
	responses["design_status"] = sectionResponse("designer", design)

	return StatusReport{
		Content:   compileStatus(responses),
		Responses: responses,
		Timestamp: o.now().UTC(),
	}
}

// sectionResponse normalizes a RouteResult into a response for a report
// section, preserving failure as an error-flagged entry.
func sectionResponse(personaID string, result RouteResult) models.Response {
	if result.Failed() {
		return models.Response{PersonaID: personaID, Error: result.Error}
	}
	return result.Response
}

// compileStatus renders the sections into one report body.
func compileStatus(responses map[string]models.Response) string {
	var b strings.Builder
	b.WriteString("Project Status Report\n\n")

	sections := []struct {
		key   string
		title string
		limit int
	}{
		{"project_overview", "Overall Status", 300},
		{"technical_status", "Technical Progress", 200},
		{"design_status", "Design Progress", 200},
	}

	for _, s := range sections {
		resp, ok := responses[s.key]
		if !ok {
			continue
		}
		content := resp.Content
		if resp.Failed() {
			content = "No update: " + resp.Error
		}
		fmt.Fprintf(&b, "%s:\n%s\n\n", s.title, truncate(content, s.limit))
	}

	return strings.TrimRight(b.String(), "\n")
}

// PersonaActivity summarizes one persona's recent work for the team
// report.
type PersonaActivity struct {
	// RecentTasks lists up to five recent "type - timestamp" lines.
	RecentTasks []string `json:"recent_tasks"`
	// ActiveTasks counts interactions within the last 24 hours.
	ActiveTasks int `json:"active_tasks"`
}

// TeamReport is an aggregate view over the interaction history.
type TeamReport struct {
	// Timestamp is when the report was generated (UTC).
	Timestamp time.Time `json:"timestamp"`
	// TotalInteractions counts retained history entries.
	TotalInteractions int `json:"total_interactions"`
	// MostActivePersona is the persona with the most retained
	// interactions, empty when there is no history.
	MostActivePersona string `json:"most_active_persona,omitempty"`
	// CommonTaskTypes maps the five most frequent task types to their
	// counts.
	CommonTaskTypes map[string]int `json:"common_task_types"`
	// PersonaStatus maps persona id to its recent activity.
	PersonaStatus map[string]PersonaActivity `json:"persona_status"`
}

// GenerateTeamReport analyzes the retained interaction history.
func (o *Orchestrator) GenerateTeamReport() TeamReport {
	now := o.now().UTC()
	history := o.history.Recent(0)

	report := TeamReport{
		Timestamp:         now,
		TotalInteractions: len(history),
		CommonTaskTypes:   make(map[string]int),
		PersonaStatus:     make(map[string]PersonaActivity),
	}

	counts := make(map[string]int)
	typeCounts := make(map[string]int)
	for _, entry := range history {
		counts[entry.PersonaID]++

		typ := entry.Task.Type
		if typ == "" {
			typ = "general"
		}
		typeCounts[typ]++
	}

	report.MostActivePersona = maxKey(counts)
	report.CommonTaskTypes = topN(typeCounts, 5)

	cutoff := now.Add(-24 * time.Hour)
	for _, id := range o.PersonaIDs() {
		activity := PersonaActivity{}
		for _, entry := range history {
			if entry.PersonaID != id {
				continue
			}
			if entry.Timestamp.After(cutoff) {
				activity.ActiveTasks++
			}
			typ := entry.Task.Type
			if typ == "" {
				typ = "general"
			}
			activity.RecentTasks = append(activity.RecentTasks,
				fmt.Sprintf("%s - %s", typ, entry.Timestamp.Format(time.RFC3339)))
		}
		if len(activity.RecentTasks) > 5 {
			activity.RecentTasks = activity.RecentTasks[len(activity.RecentTasks)-5:]
		}
		report.PersonaStatus[id] = activity
	}

	return report
}

// maxKey returns the key with the highest count, breaking ties by key
// order so the result is deterministic.
func maxKey(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := ""
	bestCount := 0
	for _, k := range keys {
		if counts[k] > bestCount {
			best = k
			bestCount = counts[k]
		}
	}
	return best
}

// topN returns the n highest-count entries of counts.
func topN(counts map[string]int, n int) map[string]int {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	if len(keys) > n {
		keys = keys[:n]
	}
	out := make(map[string]int, len(keys))
	for _, k := range keys {
		out[k] = counts[k]
	}
	return out
}
