package agent

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dusk-indust/taskagents/internal/llm"
)

// TaskFunc builds the task-specific prompt text for one execution from the
// agent's context and the optional input.
type TaskFunc func(tc *TaskContext, input string) string

// BaseAgent provides shared behaviour for specialist agents: it owns the
// task context and init prompt and performs the completion round trip.
// Specialist agents embed BaseAgent and provide a TaskFunc.
type BaseAgent struct {
	task       *TaskContext
	initPrompt string
	llm        llm.Completer
	logger     *slog.Logger
	build      TaskFunc
}

// NewBaseAgent creates a BaseAgent. A nil logger falls back to slog.Default().
func NewBaseAgent(tc *TaskContext, completer llm.Completer, logger *slog.Logger, build TaskFunc) *BaseAgent {
	if logger == nil {
		logger = slog.Default()
	}
	return &BaseAgent{
		task:       tc,
		initPrompt: InitPrompt(tc.Kind(), tc.params),
		llm:        completer,
		logger:     logger.With("kind", string(tc.Kind())),
		build:      build,
	}
}

// Kind returns the agent's kind.
func (b *BaseAgent) Kind() Kind { return b.task.Kind() }

// Context returns the agent's task context.
func (b *BaseAgent) Context() *TaskContext { return b.task }

// InitPrompt returns the prompt derived from the context at construction.
func (b *BaseAgent) InitPrompt() string { return b.initPrompt }

// Status returns the task context summary.
func (b *BaseAgent) Status() string { return b.task.Summary() }

// Execute builds the task prompt, performs the completion and stores the
// raw result in the task context before returning it.
func (b *BaseAgent) Execute(ctx context.Context, input string) string {
	result := b.Response(ctx, b.build(b.task, input))
	b.task.SetResult(result)
	return result
}

// Response appends extra to the init prompt and sends it to the completion
// service. Failures are logged and returned as "Error: ..." text.
func (b *BaseAgent) Response(ctx context.Context, extra string) string {
	execID := uuid.NewString()
	prompt := b.initPrompt + "\n" + extra

	b.logger.Debug("requesting completion", "exec_id", execID, "prompt_len", len(prompt))
	content, err := b.llm.Complete(ctx, prompt)
	if err != nil {
		b.logger.Error("completion failed", "exec_id", execID, "error", err)
	} else {
		b.logger.Debug("completion received", "exec_id", execID, "content_len", len(content))
	}
	return llm.Flatten(content, err)
}
