package agent

import (
	"log/slog"

	"github.com/dusk-indust/taskagents/internal/llm"
)

// AnalysisAgent analyzes supplied data and reports insights.
type AnalysisAgent struct {
	*BaseAgent
}

// NewAnalysisAgent creates an AnalysisAgent around tc.
func NewAnalysisAgent(tc *TaskContext, completer llm.Completer, logger *slog.Logger) *AnalysisAgent {
	return &AnalysisAgent{BaseAgent: NewBaseAgent(tc, completer, logger, analysisTask)}
}

func analysisTask(_ *TaskContext, input string) string {
	prompt := "Analyze the following data and provide insights"
	if input != "" {
		return prompt + "\nData to analyze:\n" + input
	}
	return prompt + "\nNo data provided for analysis"
}
