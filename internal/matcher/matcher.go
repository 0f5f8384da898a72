// Package matcher decides which presentation component renders a message.
// It evaluates an ordered list of boolean predicates over the message data
// shape: caller-supplied plugin rules first, then registered plugins, then
// the fixed built-in list. The first matching non-passthrough rule wins;
// passthrough matches accumulate and evaluation continues.
package matcher

import (
	"fmt"

	"github.com/conversive/chatmatch/internal/config"
	"github.com/conversive/chatmatch/internal/logger"
	"github.com/conversive/chatmatch/internal/message"
	chatmatcherrors "github.com/conversive/chatmatch/pkg/errors"
)

// Matcher evaluates rules against messages. The zero value is not usable;
// construct with New.
type Matcher struct {
	registry *Registry
	log      *logger.Logger
}

// New creates a Matcher. Both arguments may be nil: a nil registry means no
// registered plugins, a nil logger silences rule failure reporting.
func New(registry *Registry, log *logger.Logger) *Matcher {
	return &Matcher{registry: registry, log: log}
}

// Match returns the components that should render the message, in rule
// order. Plugins passed here are checked before registered plugins, which
// are checked before built-ins. A nil config means defaults.
func (m *Matcher) Match(msg *message.Message, cfg *config.Config, plugins ...Rule) []Result {
	if msg == nil {
		return nil
	}
	if cfg == nil {
		cfg = config.Default()
	}

	var registered []Rule
	if m.registry != nil {
		registered = m.registry.Rules()
	}

	rules := make([]Rule, 0, len(plugins)+len(registered)+len(builtinRules))
	rules = append(rules, plugins...)
	rules = append(rules, registered...)
	rules = append(rules, builtinRules...)

	var results []Result
	for _, rule := range rules {
		if !m.evaluate(rule, msg, cfg) {
			continue
		}
		results = append(results, Result{
			Rule:        rule.Name,
			Component:   rule.Component,
			Passthrough: rule.Passthrough,
		})
		if !rule.Passthrough {
			break
		}
	}
	return results
}

// evaluate runs one predicate with panic containment. A throwing rule is
// logged and treated as non-matching so evaluation continues.
func (m *Matcher) evaluate(rule Rule, msg *message.Message, cfg *config.Config) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			err := chatmatcherrors.NewRuleError(rule.Name, fmt.Errorf("%v", r))
			m.log.WithFields(map[string]any{
				"rule":       rule.Name,
				"message_id": msg.ID,
			}).Error(err, "rule predicate panicked, treating as non-matching")
			matched = false
		}
	}()

	if rule.Match == nil {
		return false
	}
	return rule.Match(msg, cfg)
}
