package agent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompleter records every prompt and replies from a queue of responses.
// When the queue is exhausted it repeats the last response.
type fakeCompleter struct {
	mu        sync.Mutex
	prompts   []string
	responses []string
	err       error
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "ok", nil
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func (f *fakeCompleter) lastPrompt(t *testing.T) string {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.prompts, "no completion was requested")
	return f.prompts[len(f.prompts)-1]
}

// discardLogger keeps test output quiet.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestFactory(fc *fakeCompleter) *Factory {
	return NewFactory(fc, discardLogger())
}

func TestBaseAgent_ExecuteStoresResult(t *testing.T) {
	fc := &fakeCompleter{responses: []string{"first", "second"}}
	tc := NewTaskContext(KindAnalysis, nil)
	b := NewBaseAgent(tc, fc, discardLogger(), func(_ *TaskContext, input string) string {
		return "task:" + input
	})

	_, ok := tc.LastResult()
	assert.False(t, ok, "no result before the first execution")

	assert.Equal(t, "first", b.Execute(context.Background(), "a"))
	assert.Equal(t, "second", b.Execute(context.Background(), "b"))

	got, ok := tc.LastResult()
	require.True(t, ok)
	assert.Equal(t, "second", got, "context keeps only the latest result")
	assert.Equal(t, b.InitPrompt()+"\ntask:b", fc.lastPrompt(t))
}

func TestBaseAgent_ResponseFailSoft(t *testing.T) {
	fc := &fakeCompleter{err: errors.New("401 unauthorized")}
	tc := NewTaskContext(KindResearch, map[string]any{"topic": "AI"})
	b := NewBaseAgent(tc, fc, discardLogger(), researchTask)

	got := b.Execute(context.Background(), "")
	assert.Equal(t, "Error: 401 unauthorized", got)

	stored, ok := tc.LastResult()
	require.True(t, ok, "error text is stored like any other result")
	assert.Equal(t, got, stored)
}

func TestBaseAgent_NilLoggerUsesDefault(t *testing.T) {
	b := NewBaseAgent(NewTaskContext(KindWriting, nil), &fakeCompleter{}, nil, writingTask)
	require.NotNil(t, b.logger)
	assert.Equal(t, "ok", b.Execute(context.Background(), ""))
}

func TestTaskContext_Summary(t *testing.T) {
	tc := NewTaskContext(KindResearch, map[string]any{"topic": "AI", "depth": 2})
	assert.Equal(t, "Task Type: research\nParameters: map[depth:2 topic:AI]\nResults: None", tc.Summary())

	tc.SetResult("R1")
	assert.Equal(t, "Task Type: research\nParameters: map[depth:2 topic:AI]\nResults: R1", tc.Summary())
}

func TestTaskContext_ParametersAreCopied(t *testing.T) {
	params := map[string]any{"topic": "AI"}
	tc := NewTaskContext(KindResearch, params)

	params["topic"] = "changed"
	assert.Equal(t, "AI", tc.Param("topic", ""))

	got := tc.Parameters()
	got["topic"] = "mutated"
	assert.Equal(t, "AI", tc.Param("topic", ""))
}

func TestTaskContext_Param(t *testing.T) {
	tc := NewTaskContext(KindResearch, map[string]any{
		"topic": "AI",
		"count": 3,
		"empty": "",
		"nil":   nil,
	})

	tests := []struct {
		key  string
		want string
	}{
		{"topic", "AI"},
		{"count", "3"},
		{"empty", ""},
		{"nil", "fallback"},
		{"missing", "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, tc.Param(tt.key, "fallback"))
		})
	}
}

func TestInitPrompt(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		params map[string]any
		want   string
	}{
		{
			name:   "research with topic",
			kind:   KindResearch,
			params: map[string]any{"topic": "quantum computing"},
			want:   "You are a specialized research agent. Your task is to research about quantum computing and provide comprehensive information.",
		},
		{
			name: "research default topic",
			kind: KindResearch,
			want: "You are a specialized research agent. Your task is to research about the given topic and provide comprehensive information.",
		},
		{
			name:   "writing with style",
			kind:   KindWriting,
			params: map[string]any{"style": "formal"},
			want:   "You are a specialized writing agent. Your task is to write content in a formal style based on the provided information.",
		},
		{
			name: "writing default style",
			kind: KindWriting,
			want: "You are a specialized writing agent. Your task is to write content in a general style based on the provided information.",
		},
		{
			name: "analysis",
			kind: KindAnalysis,
			want: "You are a specialized analysis agent. Your task is to analyze the provided data and extract meaningful insights.",
		},
		{
			name: "unknown kind",
			kind: Kind("translation"),
			want: "You are a specialized translation agent. Your specific tasks will be provided in the execution context.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InitPrompt(tt.kind, tt.params))
		})
	}
}
