package agent

import (
	"log/slog"

	"github.com/dusk-indust/taskagents/internal/llm"
)

// WritingAgent writes content in the style named by its "style" parameter,
// optionally based on supplied material.
type WritingAgent struct {
	*BaseAgent
}

// NewWritingAgent creates a WritingAgent around tc.
func NewWritingAgent(tc *TaskContext, completer llm.Completer, logger *slog.Logger) *WritingAgent {
	return &WritingAgent{BaseAgent: NewBaseAgent(tc, completer, logger, writingTask)}
}

func writingTask(tc *TaskContext, input string) string {
	prompt := "Write content in a " + tc.Param("style", "general") + " style"
	if input != "" {
		prompt += "\nBased on the following information:\n" + input
	}
	return prompt
}
