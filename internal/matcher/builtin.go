package matcher

import (
	"github.com/conversive/chatmatch/internal/config"
	"github.com/conversive/chatmatch/internal/message"
)

// Built-in rule names, in evaluation order.
const (
	RuleXAppSubmit      = "xapp-submit"
	RuleWebchat3Event   = "webchat3-event"
	RuleDatePicker      = "date-picker"
	RuleTextWithButtons = "text-with-buttons"
	RuleImage           = "image"
	RuleVideo           = "video"
	RuleAudio           = "audio"
	RuleFile            = "file"
	RuleList            = "list"
	RuleGallery         = "gallery"
	RuleAdaptiveCard    = "adaptive-card"
	RuleText            = "text"
)

// builtinRules is the fixed rule order. The order is product behavior, not
// an implementation detail: earlier rules win ties, and reordering changes
// what existing messages render as.
var builtinRules = []Rule{
	{
		Name:      RuleXAppSubmit,
		Component: "XAppSubmit",
		Match: func(msg *message.Message, _ *config.Config) bool {
			return msg.XAppSubmitted()
		},
	},
	{
		Name:        RuleWebchat3Event,
		Component:   "Webchat3Event",
		Passthrough: true,
		Match: func(msg *message.Message, _ *config.Config) bool {
			return msg.Webchat3EventType() != ""
		},
	},
	{
		Name:      RuleDatePicker,
		Component: "DatePicker",
		Match: func(msg *message.Message, _ *config.Config) bool {
			return msg.PluginType() == "date-picker"
		},
	},
	{
		Name:      RuleTextWithButtons,
		Component: "TextWithButtons",
		Match: func(msg *message.Message, cfg *config.Config) bool {
			if len(msg.QuickReplies(cfg.PreferDefaultPreview())) > 0 {
				return true
			}
			return attachmentTemplate(msg, cfg) == "button"
		},
	},
	{
		Name:      RuleImage,
		Component: "Image",
		Match:     attachmentTypeIs("image"),
	},
	{
		Name:      RuleVideo,
		Component: "Video",
		Match:     attachmentTypeIs("video"),
	},
	{
		Name:      RuleAudio,
		Component: "Audio",
		Match:     attachmentTypeIs("audio"),
	},
	{
		Name:      RuleFile,
		Component: "File",
		Match:     attachmentTypeIs("file"),
	},
	{
		Name:      RuleList,
		Component: "List",
		Match: func(msg *message.Message, cfg *config.Config) bool {
			return attachmentTemplate(msg, cfg) == "list"
		},
	},
	{
		Name:      RuleGallery,
		Component: "Gallery",
		Match: func(msg *message.Message, cfg *config.Config) bool {
			return attachmentTemplate(msg, cfg) == "generic"
		},
	},
	{
		Name:      RuleAdaptiveCard,
		Component: "AdaptiveCard",
		Match: func(msg *message.Message, cfg *config.Config) bool {
			if msg.PluginType() == "adaptivecards" {
				return true
			}
			attachment, ok := msg.Attachment(cfg.PreferDefaultPreview())
			return ok && attachment.Type == "adaptivecard"
		},
	},
	{
		Name:      RuleText,
		Component: "Text",
		Match: func(msg *message.Message, cfg *config.Config) bool {
			return msg.HasText() || msg.PayloadText(cfg.PreferDefaultPreview()) != ""
		},
	},
}

// BuiltinRules returns a copy of the built-in rule list in evaluation order.
func BuiltinRules() []Rule {
	rules := make([]Rule, len(builtinRules))
	copy(rules, builtinRules)
	return rules
}

func attachmentTypeIs(attachmentType string) Predicate {
	return func(msg *message.Message, cfg *config.Config) bool {
		attachment, ok := msg.Attachment(cfg.PreferDefaultPreview())
		return ok && attachment.Type == attachmentType
	}
}

func attachmentTemplate(msg *message.Message, cfg *config.Config) string {
	attachment, ok := msg.Attachment(cfg.PreferDefaultPreview())
	if !ok || attachment.Type != "template" {
		return ""
	}
	return attachment.TemplateType()
}
