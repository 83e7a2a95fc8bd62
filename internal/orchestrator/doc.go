// Package orchestrator coordinates the persona team: it routes tasks to
// the right persona, fans requests out for multi-party consensus, runs
// sequential collaboration and project workflows, synthesizes combined
// answers, and tracks task lifecycle in an in-memory registry.
//
// Nothing in this package persists beyond the process. The chat-facing
// surfaces (CLI, TUI) consume it in-process; they never contain routing
// logic of their own.
package orchestrator
