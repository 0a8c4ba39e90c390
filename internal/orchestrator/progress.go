package orchestrator

import (
	"fmt"

	"github.com/dusk-indust/taskagents/internal/agent"
)

// ProgressEvent is emitted while a chain runs.
type ProgressEvent struct {
	Step    int // zero-based step index
	Kind    agent.Kind
	AgentID string // empty until the step's agent exists
	Status  ProgressStatus
	Message string
}

// ProgressStatus is the state of one chain step.
type ProgressStatus string

const (
	ProgressWorking  ProgressStatus = "working"
	ProgressComplete ProgressStatus = "complete"
	ProgressFailed   ProgressStatus = "failed"
)

// ProgressReporter emits progress events through a buffered channel.
type ProgressReporter struct {
	ch chan ProgressEvent
}

// NewProgressReporter creates a ProgressReporter with a buffered channel of size 64.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{
		ch: make(chan ProgressEvent, 64),
	}
}

// Emit sends a progress event in a non-blocking fashion.
// If the channel is full, the event is silently dropped.
func (pr *ProgressReporter) Emit(event ProgressEvent) {
	select {
	case pr.ch <- event:
	default:
	}
}

// Subscribe returns a read-only channel for consuming progress events.
func (pr *ProgressReporter) Subscribe() <-chan ProgressEvent {
	return pr.ch
}

// Close closes the progress event channel.
func (pr *ProgressReporter) Close() {
	close(pr.ch)
}

// FormatProgress formats a ProgressEvent as a human-readable status line.
func FormatProgress(event ProgressEvent) string {
	label := fmt.Sprintf("step %d (%s)", event.Step+1, event.Kind)
	if event.AgentID != "" {
		label = fmt.Sprintf("step %d (%s)", event.Step+1, event.AgentID)
	}

	switch event.Status {
	case ProgressWorking:
		return fmt.Sprintf("  ● %s...", label)
	case ProgressComplete:
		return fmt.Sprintf("  ✓ %s complete", label)
	case ProgressFailed:
		return fmt.Sprintf("  ✗ %s failed: %s", label, event.Message)
	default:
		return fmt.Sprintf("  ? %s (unknown status)", label)
	}
}
