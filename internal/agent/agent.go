package agent

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by the Factory and Registry. Callers match them
// with errors.Is; the wrapped message carries the offending kind or id.
var (
	ErrInvalidKind = errors.New("invalid agent kind")
	ErrNotFound    = errors.New("agent not found")
)

// Agent is the interface that all specialist agents implement.
type Agent interface {
	// Kind reports which specialization this agent is.
	Kind() Kind

	// Execute runs one task round trip. An empty input means no input was
	// supplied. Completion failures are returned as "Error: ..." text.
	Execute(ctx context.Context, input string) string

	// Status returns the human-readable summary of the agent's task context.
	Status() string

	// Context returns the task context owned by the agent.
	Context() *TaskContext
}

// Kind identifies a specialist agent type.
type Kind string

const (
	KindResearch Kind = "research"
	KindWriting  Kind = "writing"
	KindAnalysis Kind = "analysis"
)

// Kinds returns the supported agent kinds in a fixed order.
func Kinds() []Kind {
	return []Kind{KindResearch, KindWriting, KindAnalysis}
}

// ParseKind validates s against the supported kinds.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindResearch, KindWriting, KindAnalysis:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

func (k Kind) String() string { return string(k) }
