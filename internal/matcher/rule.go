package matcher

import (
	"github.com/conversive/chatmatch/internal/config"
	"github.com/conversive/chatmatch/internal/message"
)

// Predicate decides whether a rule applies to a message under the given
// config. Predicates must be pure; a panicking predicate is treated as
// non-matching by the matcher.
type Predicate func(*message.Message, *config.Config) bool

// Rule pairs a predicate with the presentation component it selects.
type Rule struct {
	// Name identifies the rule in logs and registries.
	Name string
	// Component is the render component the host mounts on a match.
	Component string
	// Passthrough lets evaluation continue past this rule on a match,
	// allowing multiple components to render for one message.
	Passthrough bool
	// Match is the predicate evaluated against the message.
	Match Predicate
}

// Result is one matched rule for a message.
type Result struct {
	Rule        string
	Component   string
	Passthrough bool
}
