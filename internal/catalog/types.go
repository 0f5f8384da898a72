package catalog

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Component describes one render component the host can mount: either a
// built-in rule target or one contributed by a matcher plugin.
type Component struct {
	Name         string    `json:"name"`
	Rule         string    `json:"rule"`
	Kind         Kind      `json:"kind"`
	Description  string    `json:"description,omitempty"`
	Enabled      bool      `json:"enabled"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Kind distinguishes built-in components from plugin contributions.
type Kind string

const (
	KindBuiltin Kind = "builtin"
	KindPlugin  Kind = "plugin"
)

// Icon returns the Unicode marker shown in CLI listings.
func (k Kind) Icon() string {
	switch k {
	case KindBuiltin:
		return "●"
	case KindPlugin:
		return "◆"
	default:
		return "○"
	}
}

// Color returns the lipgloss color used for the kind marker.
func (k Kind) Color() lipgloss.Color {
	switch k {
	case KindBuiltin:
		return lipgloss.Color("42") // green
	case KindPlugin:
		return lipgloss.Color("213") // pink
	default:
		return lipgloss.Color("250") // light gray
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// File is the JSON file format for the component catalog.
type File struct {
	Version    string      `json:"version"`
	Components []Component `json:"components"`
}
