package agent

import (
	"log/slog"

	"github.com/dusk-indust/taskagents/internal/llm"
)

// ResearchAgent researches the topic named by its "topic" parameter.
type ResearchAgent struct {
	*BaseAgent
}

// NewResearchAgent creates a ResearchAgent around tc.
func NewResearchAgent(tc *TaskContext, completer llm.Completer, logger *slog.Logger) *ResearchAgent {
	return &ResearchAgent{BaseAgent: NewBaseAgent(tc, completer, logger, researchTask)}
}

func researchTask(tc *TaskContext, input string) string {
	prompt := "Research the following topic and provide detailed information: " + tc.Param("topic", "general topic")
	if input != "" {
		prompt += "\nAdditional context: " + input
	}
	return prompt
}
