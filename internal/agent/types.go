package agent

import (
	"context"
	"sort"
	"sync"

	"hr-assistant/internal/model"
)

// Agent answers queries for one domain.
type Agent interface {
	// Name is the registry key, equal to the intent it serves.
	Name() string

	// Handle returns a non-empty response or an error.
	Handle(ctx context.Context, req Request) (model.AgentResponse, error)
}

// Request is what every agent receives.
type Request struct {
	UserID  string
	Query   string
	History []model.Turn
}

// Turns returns the history, or the query alone when no history was sent.
func (r Request) Turns() []model.Turn {
	if len(r.History) > 0 {
		return r.History
	}
	return []model.Turn{{Role: model.RoleUser, Text: r.Query}}
}

// Registry manages available agents.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Agent
}

// NewRegistry creates a registry holding agents.
func NewRegistry(agents ...Agent) *Registry {
	r := &Registry{agents: make(map[string]Agent, len(agents))}
	for _, a := range agents {
		r.Register(a)
	}
	return r
}

// Register adds an agent, replacing any agent with the same name.
func (r *Registry) Register(a Agent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.agents[a.Name()] = a
}

// Get retrieves an agent by name.
func (r *Registry) Get(name string) (Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// Names returns registered agent names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.agents))
	for name := range r.agents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
