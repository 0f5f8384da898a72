// Package chatmatch decides which presentation component a host chat UI
// should mount for an incoming message, and bundles the supporting helpers:
// HTML sanitization, label formatting, and theme variable mapping.
//
// The implementation lives in internal packages; this package is the stable
// surface host applications import.
package chatmatch

import (
	"github.com/conversive/chatmatch/internal/config"
	"github.com/conversive/chatmatch/internal/format"
	"github.com/conversive/chatmatch/internal/logger"
	"github.com/conversive/chatmatch/internal/matcher"
	"github.com/conversive/chatmatch/internal/message"
	"github.com/conversive/chatmatch/internal/sanitize"
	"github.com/conversive/chatmatch/internal/theme"
)

// Message is the envelope handed to the matcher.
type Message = message.Message

// StreamedText is message text as a single string or streamed chunks.
type StreamedText = message.StreamedText

// Source identifies who produced a message.
type Source = message.Source

const (
	SourceBot        = message.SourceBot
	SourceUser       = message.SourceUser
	SourceAgent      = message.SourceAgent
	SourceEngagement = message.SourceEngagement
)

// Config is the host-supplied settings tree.
type Config = config.Config

// Rule is a matcher rule; hosts supply their own as plugins.
type Rule = matcher.Rule

// Result is one matched rule for a message.
type Result = matcher.Result

// Registry holds externally registered plugin rules.
type Registry = matcher.Registry

// Sanitizer applies the configured HTML policy to message text.
type Sanitizer = sanitize.Sanitizer

// Logger is the structured logger used across the library.
type Logger = logger.Logger

// LoggerOptions configures a Logger.
type LoggerOptions = logger.Options

// NewLogger creates a structured logger for library and host use.
func NewLogger(opts LoggerOptions) (*Logger, error) {
	return logger.New(opts)
}

// ParseMessage decodes a message envelope from JSON.
func ParseMessage(data []byte) (*Message, error) {
	return message.FromJSON(data)
}

// ParseConfig loads and validates a YAML settings file.
func ParseConfig(path string) (*Config, error) {
	return config.ParseConfig(path)
}

// DefaultConfig returns the settings used when the host supplies nothing.
func DefaultConfig() *Config {
	return config.Default()
}

// NewRegistry returns an empty plugin rule registry.
func NewRegistry() *Registry {
	return matcher.NewRegistry()
}

// Match evaluates the built-in rules plus the supplied plugins against a
// message and returns the components to render, in rule order.
func Match(msg *Message, cfg *Config, plugins ...Rule) []Result {
	return matcher.New(nil, nil).Match(msg, cfg, plugins...)
}

// BuiltinRules returns the fixed built-in rule list in evaluation order.
func BuiltinRules() []Rule {
	return matcher.BuiltinRules()
}

// NewSanitizer builds a sanitizer from the config's sanitize settings. The
// logger may be nil.
func NewSanitizer(cfg *Config, log *logger.Logger) *Sanitizer {
	return sanitize.New(sanitize.FromConfig(cfg), log)
}

// CSSVariables maps the config's theme colors onto CSS custom properties,
// omitting absent fields.
func CSSVariables(cfg *Config) map[string]string {
	if cfg == nil {
		return map[string]string{}
	}
	return theme.CSSVariables(&cfg.Theme)
}

// Stylesheet renders the config's theme colors as a :root CSS block with
// deterministic ordering. An empty theme yields an empty string.
func Stylesheet(cfg *Config) string {
	return theme.Stylesheet(CSSVariables(cfg))
}

// SizeLabel formats a byte count as a file size label.
func SizeLabel(bytes int64) string {
	return format.SizeLabel(bytes)
}

// BackgroundImage builds a CSS url(...) value for an image URL, rejecting
// unsafe schemes.
func BackgroundImage(rawURL string) (string, bool) {
	return format.BackgroundImage(rawURL)
}

// FileExtension returns the extension of a file name, without the dot, and
// whether one was present.
func FileExtension(name string) (string, bool) {
	return format.FileExtension(name)
}

// Interpolate substitutes {key} placeholders from a flat dictionary.
func Interpolate(template string, vars map[string]string) string {
	return format.Interpolate(template, vars)
}
