package agent

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Registry owns the live agents, keyed by generated identifiers of the form
// "<kind>_<seq>". The sequence only grows, so an identifier is never reused
// after its agent is removed.
type Registry struct {
	factory *Factory
	logger  *slog.Logger

	mu     sync.Mutex
	agents map[string]Agent
	order  []string // insertion-order ids
	seq    int
}

// NewRegistry creates an empty Registry that builds agents with factory.
func NewRegistry(factory *Factory, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		factory: factory,
		logger:  logger,
		agents:  make(map[string]Agent),
	}
}

// Create builds an agent of the given kind, registers it and returns its id.
func (r *Registry) Create(kind string, params map[string]any) (string, Agent, error) {
	ag, err := r.factory.Create(kind, params)
	if err != nil {
		return "", nil, err
	}

	r.mu.Lock()
	id := fmt.Sprintf("%s_%d", ag.Kind(), r.seq)
	r.seq++
	r.agents[id] = ag
	r.order = append(r.order, id)
	r.mu.Unlock()

	r.logger.Info("agent created", "id", id, "kind", string(ag.Kind()))
	return id, ag, nil
}

// Get returns the agent registered under id.
func (r *Registry) Get(id string) (Agent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ag, ok := r.agents[id]
	return ag, ok
}

// List returns the ids of all live agents in creation order.
func (r *Registry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.order)
}

// Len returns the number of live agents.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.agents)
}

// Remove drops the agent registered under id. Unknown ids are ignored.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.agents[id]; !ok {
		return
	}
	delete(r.agents, id)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == id })
	r.logger.Info("agent removed", "id", id)
}

// Execute runs a task on the agent registered under id. The registry lock
// is not held during the completion call.
func (r *Registry) Execute(ctx context.Context, id, input string) (string, error) {
	ag, err := r.lookup(id)
	if err != nil {
		return "", err
	}
	r.logger.Info("executing task", "id", id, "has_input", input != "")
	return ag.Execute(ctx, input), nil
}

// Status returns the status summary of the agent registered under id.
func (r *Registry) Status(id string) (string, error) {
	ag, err := r.lookup(id)
	if err != nil {
		return "", err
	}
	return ag.Status(), nil
}

// Kinds returns the kinds the registry can create.
func (r *Registry) Kinds() []Kind {
	return r.factory.Kinds()
}

func (r *Registry) lookup(id string) (Agent, error) {
	ag, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return ag, nil
}
