package config

// Config is the deeply optional settings tree supplied by the host chat
// application. A zero-value Config is valid; every knob has a working
// default. The tree is read-only input to the matcher and helpers.
type Config struct {
	Sanitize     SanitizeSettings  `yaml:"sanitize,omitempty"`
	Translations map[string]string `yaml:"translations,omitempty"`
	Layout       LayoutSettings    `yaml:"layout,omitempty"`
	Theme        ThemeColors       `yaml:"theme,omitempty"`
}

// SanitizeSettings controls the HTML sanitizer policy.
type SanitizeSettings struct {
	// Disable turns sanitization off entirely. The host owns the risk.
	Disable bool `yaml:"disable,omitempty"`
	// AllowedTags extends the default tag allow-list.
	AllowedTags []string `yaml:"allowed_tags,omitempty" validate:"omitempty,dive,html_tag"`
	// AllowedAttributes extends the default attribute allow-list.
	AllowedAttributes []string `yaml:"allowed_attributes,omitempty" validate:"omitempty,dive,html_tag"`
}

// LayoutSettings holds rendering thresholds and channel preferences.
type LayoutSettings struct {
	// EnableDefaultPreview prefers the _defaultPreview channel payload over
	// _webchat when both are present.
	EnableDefaultPreview bool `yaml:"enable_default_preview,omitempty"`
	// CollateStreamedText joins streamed text chunks into one bubble.
	CollateStreamedText bool `yaml:"collate_streamed_text,omitempty"`
	// DynamicImageAspectRatio lets images keep their natural ratio.
	DynamicImageAspectRatio bool `yaml:"dynamic_image_aspect_ratio,omitempty"`
	// GalleryColumnThreshold is the element count at which a gallery switches
	// to multi-column layout.
	GalleryColumnThreshold int `yaml:"gallery_column_threshold,omitempty" validate:"omitempty,min=1,max=10"`
}

// ThemeColors is the flat color configuration mapped 1:1 to CSS variables.
// Absent fields are omitted from the generated variable set.
type ThemeColors struct {
	PrimaryColor           string `yaml:"primary_color,omitempty" validate:"omitempty,hexcolor"`
	PrimaryContrastColor   string `yaml:"primary_contrast_color,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor         string `yaml:"secondary_color,omitempty" validate:"omitempty,hexcolor"`
	SecondaryContrastColor string `yaml:"secondary_contrast_color,omitempty" validate:"omitempty,hexcolor"`
	BackgroundBotMessage   string `yaml:"background_bot_message,omitempty" validate:"omitempty,hexcolor"`
	BackgroundUserMessage  string `yaml:"background_user_message,omitempty" validate:"omitempty,hexcolor"`
	BackgroundAgentMessage string `yaml:"background_agent_message,omitempty" validate:"omitempty,hexcolor"`
	BackgroundWebchat      string `yaml:"background_webchat,omitempty" validate:"omitempty,hexcolor"`
	TextLinkColor          string `yaml:"text_link_color,omitempty" validate:"omitempty,hexcolor"`
	BorderColor            string `yaml:"border_color,omitempty" validate:"omitempty,hexcolor"`
}

const defaultGalleryColumnThreshold = 3

// Default returns the configuration used when the host supplies nothing.
func Default() *Config {
	return &Config{
		Layout: LayoutSettings{
			GalleryColumnThreshold: defaultGalleryColumnThreshold,
		},
	}
}

// PreferDefaultPreview reports the channel payload preference, nil-safe.
func (c *Config) PreferDefaultPreview() bool {
	if c == nil {
		return false
	}
	return c.Layout.EnableDefaultPreview
}

// Translate resolves a translation key against the config, falling back to
// the supplied default label when the key is absent.
func (c *Config) Translate(key, fallback string) string {
	if c == nil || c.Translations == nil {
		return fallback
	}
	if label, ok := c.Translations[key]; ok {
		return label
	}
	return fallback
}
