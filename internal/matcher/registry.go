package matcher

import (
	"fmt"
	"sync"

	chatmatcherrors "github.com/conversive/chatmatch/pkg/errors"
)

// Registry holds externally registered plugin rules. Registration order is
// evaluation order; registered rules are checked after per-call plugins and
// before the built-in list.
type Registry struct {
	mu    sync.RWMutex
	names map[string]int
	rules []Rule
}

// NewRegistry returns an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{names: make(map[string]int)}
}

// Register adds a plugin rule. Rules must carry a name, a component, and a
// predicate; duplicate names are rejected.
func (r *Registry) Register(rule Rule) error {
	if rule.Name == "" {
		return chatmatcherrors.NewRuleError("", fmt.Errorf("rule name is required"))
	}
	if rule.Component == "" {
		return chatmatcherrors.NewRuleError(rule.Name, fmt.Errorf("rule component is required"))
	}
	if rule.Match == nil {
		return chatmatcherrors.NewRuleError(rule.Name, fmt.Errorf("rule predicate is nil"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.names[rule.Name]; exists {
		return chatmatcherrors.NewRuleError(rule.Name, fmt.Errorf("rule already registered"))
	}

	r.names[rule.Name] = len(r.rules)
	r.rules = append(r.rules, rule)
	return nil
}

// Deregister removes a plugin rule by name.
func (r *Registry) Deregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	index, exists := r.names[name]
	if !exists {
		return chatmatcherrors.NewRuleError(name, fmt.Errorf("no rule registered"))
	}

	r.rules = append(r.rules[:index], r.rules[index+1:]...)
	delete(r.names, name)
	for i, rule := range r.rules {
		r.names[rule.Name] = i
	}
	return nil
}

// Rules returns the registered rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rules := make([]Rule, len(r.rules))
	copy(rules, r.rules)
	return rules
}
