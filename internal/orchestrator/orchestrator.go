package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dusk-indust/taskagents/internal/agent"
)

// Step describes one agent in a chain.
type Step struct {
	Kind   string         `json:"kind" jsonschema:"agent kind: research, writing or analysis"`
	Params map[string]any `json:"parameters,omitempty" jsonschema:"agent parameters such as topic or style"`
}

// StepResult holds the output of one completed step.
type StepResult struct {
	AgentID string     `json:"agentId"`
	Kind    agent.Kind `json:"kind"`
	Output  string     `json:"output"`
}

// RunResult is the outcome of a chain run. Steps holds every step that
// completed, even when the run failed part way.
type RunResult struct {
	RunID string       `json:"runId"`
	Steps []StepResult `json:"steps"`
}

// Output returns the last completed step's output.
func (r *RunResult) Output() string {
	if len(r.Steps) == 0 {
		return ""
	}
	return r.Steps[len(r.Steps)-1].Output
}

// DemoSteps returns the research, writing, analysis hand-off used by the
// command line demo.
func DemoSteps(topic string) []Step {
	return []Step{
		{Kind: string(agent.KindResearch), Params: map[string]any{"topic": topic}},
		{Kind: string(agent.KindWriting), Params: map[string]any{"style": "technical blog post"}},
		{Kind: string(agent.KindAnalysis), Params: map[string]any{"focus": "content quality and engagement potential"}},
	}
}

// Chain runs agents one after another, feeding each agent the previous
// agent's output. Agents it creates stay in the registry.
type Chain struct {
	reg      *agent.Registry
	progress *ProgressReporter
	logger   *slog.Logger
}

// NewChain creates a Chain that creates its agents in reg.
func NewChain(reg *agent.Registry, logger *slog.Logger) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{
		reg:      reg,
		progress: NewProgressReporter(),
		logger:   logger,
	}
}

// Progress returns a channel that emits progress events.
func (c *Chain) Progress() <-chan ProgressEvent {
	return c.progress.Subscribe()
}

// Close closes the progress channel. The chain must not be run afterwards.
func (c *Chain) Close() {
	c.progress.Close()
}

// Run executes steps in order. The first step receives input. It stops at
// the first step whose agent cannot be created or when ctx is done, and
// returns the steps completed so far with the error.
func (c *Chain) Run(ctx context.Context, steps []Step, input string) (*RunResult, error) {
	result := &RunResult{RunID: uuid.NewString(), Steps: make([]StepResult, 0, len(steps))}
	logger := c.logger.With("run_id", result.RunID)
	logger.Info("chain started", "steps", len(steps))

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("step %d: %w", i+1, err)
		}

		c.progress.Emit(ProgressEvent{Step: i, Kind: agent.Kind(step.Kind), Status: ProgressWorking})

		id, ag, err := c.reg.Create(step.Kind, step.Params)
		if err != nil {
			c.progress.Emit(ProgressEvent{
				Step:    i,
				Kind:    agent.Kind(step.Kind),
				Status:  ProgressFailed,
				Message: err.Error(),
			})
			return result, fmt.Errorf("step %d: %w", i+1, err)
		}

		input = ag.Execute(ctx, input)
		result.Steps = append(result.Steps, StepResult{AgentID: id, Kind: ag.Kind(), Output: input})

		status := ProgressComplete
		var msg string
		if strings.HasPrefix(input, "Error: ") {
			// The chain continues; the degraded text is handed on as-is.
			status, msg = ProgressFailed, input
		}
		c.progress.Emit(ProgressEvent{Step: i, Kind: ag.Kind(), AgentID: id, Status: status, Message: msg})
	}

	logger.Info("chain finished", "steps", len(result.Steps))
	return result, nil
}
