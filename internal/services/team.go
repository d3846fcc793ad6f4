package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/uiforge/uiforge-backend/internal/logger"
)

const (
	TeamStatusFinished = "FINISHED"
	TeamStatusRunning  = "RUNNING"
	TeamStatusErrored  = "ERRORED"
)

// AgentSpec describes one worker in a team: its persona (fed to the model as
// the system prompt) and the tools it may use. The only recognized tool name
// is "search"; unknown names are ignored.
type AgentSpec struct {
	Name       string
	Role       string
	Goal       string
	Background string
	Tools      []string
}

// TaskSpec binds a prompt to the agent (by index into the team's agent list)
// that should execute it.
type TaskSpec struct {
	Title          string
	Prompt         string
	ExpectedOutput string
	AgentIndex     int
}

// TeamSpec is a full pipeline definition: agents plus an ordered task list.
// Tasks run sequentially; each task sees the outputs of all tasks before it.
type TeamSpec struct {
	Name   string
	Agents []AgentSpec
	Tasks  []TaskSpec
}

type TeamStats struct {
	InputTokens  int           `json:"inputTokens"`
	OutputTokens int           `json:"outputTokens"`
	TotalTokens  int           `json:"totalTokens"`
	TaskCount    int           `json:"taskCount"`
	Duration     time.Duration `json:"durationNs"`
}

// TeamResult reports the outcome of a pipeline run. When Status is
// TeamStatusFinished, Result holds the raw text produced by the final task;
// callers are responsible for interpreting it. When Status is
// TeamStatusErrored, Err carries the failure and Result is empty.
type TeamResult struct {
	Status string
	Result string
	Stats  TeamStats
	Err    error
}

// TeamRunner executes a TeamSpec to completion.
type TeamRunner interface {
	Run(ctx context.Context, spec TeamSpec) TeamResult
}

type teamRunner struct {
	openai OpenAIClient
	search SearchClient
	log    *logger.Logger
}

// NewTeamRunner builds the default sequential runner. search may be nil, in
// which case agents with the "search" tool run without pre-fetched context.
func NewTeamRunner(openai OpenAIClient, search SearchClient, baseLog *logger.Logger) TeamRunner {
	return &teamRunner{
		openai: openai,
		search: search,
		log:    baseLog.With("service", "team_runner"),
	}
}

func (tr *teamRunner) Run(ctx context.Context, spec TeamSpec) TeamResult {
	start := time.Now()
	stats := TeamStats{}

	if len(spec.Tasks) == 0 {
		return TeamResult{Status: TeamStatusErrored, Err: fmt.Errorf("team %q has no tasks", spec.Name)}
	}

	prior := make([]string, 0, len(spec.Tasks))
	var final string

	for i, task := range spec.Tasks {
		if task.AgentIndex < 0 || task.AgentIndex >= len(spec.Agents) {
			return TeamResult{Status: TeamStatusErrored, Err: fmt.Errorf("task %q references missing agent index %d", task.Title, task.AgentIndex)}
		}
		agent := spec.Agents[task.AgentIndex]

		userPrompt := tr.composeTaskPrompt(ctx, agent, task, prior)

		tr.log.Info("running task", "team", spec.Name, "task", task.Title, "agent", agent.Name)
		out, usage, err := tr.openai.GenerateText(ctx, agentSystemPrompt(agent), userPrompt)
		if err != nil {
			stats.Duration = time.Since(start)
			return TeamResult{
				Status: TeamStatusErrored,
				Stats:  stats,
				Err:    fmt.Errorf("task %q (agent %s): %w", task.Title, agent.Name, err),
			}
		}

		stats.InputTokens += usage.InputTokens
		stats.OutputTokens += usage.OutputTokens
		stats.TotalTokens += usage.TotalTokens
		stats.TaskCount++

		prior = append(prior, fmt.Sprintf("### Output of task %d (%s)\n%s", i+1, task.Title, out))
		final = out
	}

	stats.Duration = time.Since(start)
	return TeamResult{Status: TeamStatusFinished, Result: final, Stats: stats}
}

func (tr *teamRunner) composeTaskPrompt(ctx context.Context, agent AgentSpec, task TaskSpec, prior []string) string {
	var b strings.Builder
	b.WriteString(task.Prompt)

	if task.ExpectedOutput != "" {
		b.WriteString("\n\nExpected output: ")
		b.WriteString(task.ExpectedOutput)
	}

	if hasTool(agent, "search") && tr.search != nil {
		if results := tr.fetchSearchContext(ctx, task.Title, task.Prompt); results != "" {
			b.WriteString("\n\nWeb search results you may draw on:\n")
			b.WriteString(results)
		}
	}

	if len(prior) > 0 {
		b.WriteString("\n\nContext from earlier tasks:\n")
		b.WriteString(strings.Join(prior, "\n\n"))
	}

	return b.String()
}

// fetchSearchContext runs the agent's search tool once, ahead of the model
// call, and renders the hits as a plain-text block. Search failures degrade
// to an empty block rather than failing the task.
func (tr *teamRunner) fetchSearchContext(ctx context.Context, title, prompt string) string {
	query := prompt
	if idx := strings.IndexByte(query, '\n'); idx > 0 {
		query = query[:idx]
	}
	results, err := tr.search.Search(ctx, query)
	if err != nil {
		tr.log.Warn("search tool failed, continuing without results", "task", title, "error", err)
		return ""
	}
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "- %s (%s): %s\n", r.Title, r.URL, r.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}

func agentSystemPrompt(agent AgentSpec) string {
	return fmt.Sprintf(
		"You are %s, a %s.\nGoal: %s\nBackground: %s\nAlways respond with a single JSON object and nothing else.",
		agent.Name, agent.Role, agent.Goal, agent.Background,
	)
}

func hasTool(agent AgentSpec, name string) bool {
	for _, t := range agent.Tools {
		if t == name {
			return true
		}
	}
	return false
}
