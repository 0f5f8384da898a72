// Package sanitize configures the HTML sanitizer applied to message text.
// It wraps bluemonday with the allow-lists from the host config and the two
// webchat special cases: orphan closing tags and custom elements.
package sanitize

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/conversive/chatmatch/internal/config"
	"github.com/conversive/chatmatch/internal/logger"
	chatmatcherrors "github.com/conversive/chatmatch/pkg/errors"
)

// Formatting and media tags permitted by default in bot message text.
var defaultAllowedTags = []string{
	"a", "abbr", "b", "blockquote", "br", "code", "div", "em",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"i", "img", "li", "ol", "p", "pre", "s", "span", "strong",
	"sub", "sup", "table", "tbody", "td", "th", "thead", "tr", "u", "ul",
	"video", "audio", "source",
}

var defaultAllowedAttributes = []string{
	"href", "target", "rel", "src", "alt", "title", "class", "id",
	"controls", "poster", "type", "width", "height",
}

// Options captures the sanitizer knobs resolved from the host config.
type Options struct {
	// Disable skips sanitization entirely. The host owns the risk.
	Disable bool
	// ExtraTags extends the default tag allow-list.
	ExtraTags []string
	// ExtraAttributes extends the default attribute allow-list.
	ExtraAttributes []string
}

// FromConfig derives Options from the settings tree.
func FromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		Disable:         cfg.Sanitize.Disable,
		ExtraTags:       cfg.Sanitize.AllowedTags,
		ExtraAttributes: cfg.Sanitize.AllowedAttributes,
	}
}

// Sanitizer applies a configured bluemonday policy to raw message text.
type Sanitizer struct {
	opts    Options
	policy  *bluemonday.Policy
	allowed map[string]struct{}
	log     *logger.Logger
}

// New builds a Sanitizer for the supplied options.
func New(opts Options, log *logger.Logger) *Sanitizer {
	allowed := make(map[string]struct{}, len(defaultAllowedTags)+len(opts.ExtraTags))
	tags := make([]string, 0, len(defaultAllowedTags)+len(opts.ExtraTags))
	for _, tag := range defaultAllowedTags {
		allowed[tag] = struct{}{}
		tags = append(tags, tag)
	}
	for _, tag := range opts.ExtraTags {
		tag = strings.ToLower(tag)
		if _, exists := allowed[tag]; exists {
			continue
		}
		allowed[tag] = struct{}{}
		tags = append(tags, tag)
	}

	attrs := append(append([]string{}, defaultAllowedAttributes...), opts.ExtraAttributes...)

	policy := bluemonday.NewPolicy()
	policy.AllowStandardURLs()
	policy.AllowElements(tags...)
	policy.AllowAttrs(attrs...).Globally()

	return &Sanitizer{opts: opts, policy: policy, allowed: allowed, log: log}
}

// Matches a leading orphan closing tag, e.g. "</b> hello".
var orphanClosingPattern = regexp.MustCompile(`^\s*</[a-zA-Z]`)

// Matches opening/closing tags of custom elements. Custom element names
// always contain a hyphen, which keeps this disjoint from standard HTML.
var customTagPattern = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(?:-[a-zA-Z0-9]+)+(?:\s[^<>]*)?>`)

var customTagNamePattern = regexp.MustCompile(`^</?([a-zA-Z][a-zA-Z0-9-]*)`)

// Sanitize cleans raw message text. Text that begins with an orphan closing
// tag is entity-escaped wholesale; custom elements are carried through
// unchanged; a sanitizer panic falls back to entity-escaping the input.
func (s *Sanitizer) Sanitize(raw string) (out string) {
	if s == nil || s.opts.Disable {
		return raw
	}

	// Plain text passes through untouched.
	if !strings.ContainsAny(raw, "<>") {
		return raw
	}

	if orphanClosingPattern.MatchString(raw) {
		return Escape(raw)
	}

	defer func() {
		if r := recover(); r != nil {
			err := chatmatcherrors.NewSanitizeError(fmt.Errorf("%v", r))
			s.log.Error(err, "sanitizer failed, escaping input")
			out = Escape(raw)
		}
	}()

	masked, originals := s.maskCustomTags(raw)
	clean := s.policy.Sanitize(masked)
	return unmaskCustomTags(clean, originals)
}

// maskCustomTags swaps custom element tags for placeholder tokens so the
// policy treats them as text, remembering the original tag text.
func (s *Sanitizer) maskCustomTags(raw string) (string, []string) {
	var originals []string
	masked := customTagPattern.ReplaceAllStringFunc(raw, func(tag string) string {
		name := customTagName(tag)
		if name == "" {
			return tag
		}
		if _, isAllowed := s.allowed[name]; isAllowed {
			return tag
		}
		token := maskToken(len(originals))
		originals = append(originals, tag)
		return token
	})
	return masked, originals
}

func unmaskCustomTags(clean string, originals []string) string {
	for i, original := range originals {
		clean = strings.Replace(clean, maskToken(i), original, 1)
	}
	return clean
}

func maskToken(index int) string {
	return fmt.Sprintf("⁣cm%d⁣", index)
}

func customTagName(tag string) string {
	matches := customTagNamePattern.FindStringSubmatch(tag)
	if len(matches) != 2 {
		return ""
	}
	return strings.ToLower(matches[1])
}

// Escape entity-escapes the input wholesale, the safe fallback for every
// failure path.
func Escape(raw string) string {
	return html.EscapeString(raw)
}
