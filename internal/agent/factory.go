package agent

import (
	"log/slog"

	"github.com/dusk-indust/taskagents/internal/llm"
)

// Compile-time interface checks.
var (
	_ Agent = (*ResearchAgent)(nil)
	_ Agent = (*WritingAgent)(nil)
	_ Agent = (*AnalysisAgent)(nil)
)

// Factory constructs agents of a validated kind, all sharing one completion
// client.
type Factory struct {
	llm    llm.Completer
	logger *slog.Logger
}

// NewFactory creates a Factory. A nil logger falls back to slog.Default().
func NewFactory(completer llm.Completer, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{llm: completer, logger: logger}
}

// Create validates kind and returns a new agent whose task context holds a
// copy of params. Unknown kinds fail with ErrInvalidKind.
func (f *Factory) Create(kind string, params map[string]any) (Agent, error) {
	k, err := ParseKind(kind)
	if err != nil {
		return nil, err
	}
	tc := NewTaskContext(k, params)

	switch k {
	case KindResearch:
		return NewResearchAgent(tc, f.llm, f.logger), nil
	case KindWriting:
		return NewWritingAgent(tc, f.llm, f.logger), nil
	case KindAnalysis:
		return NewAnalysisAgent(tc, f.llm, f.logger), nil
	}
	// ParseKind only admits the kinds handled above.
	panic("agent: unhandled kind " + string(k))
}

// Kinds returns the kinds this factory can create, in a fixed order.
func (f *Factory) Kinds() []Kind {
	return Kinds()
}
