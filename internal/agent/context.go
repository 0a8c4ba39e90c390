package agent

import (
	"fmt"
	"maps"
	"sync"
)

// TaskContext records an agent's kind, its construction parameters and the
// most recent task result. Kind and parameters never change after
// construction; only the owning agent writes the result.
type TaskContext struct {
	kind   Kind
	params map[string]any

	mu        sync.RWMutex
	result    string
	hasResult bool
}

// NewTaskContext creates a TaskContext. The parameter map is copied so later
// changes by the caller are not observed.
func NewTaskContext(kind Kind, params map[string]any) *TaskContext {
	p := maps.Clone(params)
	if p == nil {
		p = make(map[string]any)
	}
	return &TaskContext{kind: kind, params: p}
}

// Kind returns the task kind.
func (c *TaskContext) Kind() Kind { return c.kind }

// Parameters returns a copy of the construction parameters.
func (c *TaskContext) Parameters() map[string]any {
	return maps.Clone(c.params)
}

// Param returns the string form of parameter key, or fallback when the key
// is missing or nil.
func (c *TaskContext) Param(key, fallback string) string {
	v, ok := c.params[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// SetResult replaces the most recent result.
func (c *TaskContext) SetResult(result string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = result
	c.hasResult = true
}

// LastResult returns the most recent result and whether any task has
// completed yet.
func (c *TaskContext) LastResult() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.result, c.hasResult
}

// Summary formats the context for display. An agent that has not executed a
// task yet reports its result as None.
func (c *TaskContext) Summary() string {
	result := "None"
	if r, ok := c.LastResult(); ok {
		result = r
	}
	// fmt prints maps with sorted keys, so the output is deterministic.
	return fmt.Sprintf("Task Type: %s\nParameters: %v\nResults: %s", c.kind, c.params, result)
}
