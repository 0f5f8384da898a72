// Package theme maps the flat color configuration onto the CSS custom
// properties the webchat stylesheet consumes.
package theme

import (
	"sort"
	"strings"

	"github.com/conversive/chatmatch/internal/config"
)

// Fixed 1:1 mapping between config fields and CSS variable names. The
// variable names are part of the public styling contract and never change
// with the config shape.
const (
	VarPrimaryColor           = "--webchat-primary-color"
	VarPrimaryContrastColor   = "--webchat-primary-contrast-color"
	VarSecondaryColor         = "--webchat-secondary-color"
	VarSecondaryContrastColor = "--webchat-secondary-contrast-color"
	VarBackgroundBotMessage   = "--webchat-background-bot-message"
	VarBackgroundUserMessage  = "--webchat-background-user-message"
	VarBackgroundAgentMessage = "--webchat-background-agent-message"
	VarBackgroundWebchat      = "--webchat-background-webchat"
	VarTextLinkColor          = "--webchat-text-link-color"
	VarBorderColor            = "--webchat-border-color"
)

// CSSVariables returns the CSS variables for the defined color fields only.
// Absent fields are omitted entirely; no defaults are injected.
func CSSVariables(colors *config.ThemeColors) map[string]string {
	vars := make(map[string]string)
	if colors == nil {
		return vars
	}

	assign := func(name, value string) {
		if value != "" {
			vars[name] = value
		}
	}

	assign(VarPrimaryColor, colors.PrimaryColor)
	assign(VarPrimaryContrastColor, colors.PrimaryContrastColor)
	assign(VarSecondaryColor, colors.SecondaryColor)
	assign(VarSecondaryContrastColor, colors.SecondaryContrastColor)
	assign(VarBackgroundBotMessage, colors.BackgroundBotMessage)
	assign(VarBackgroundUserMessage, colors.BackgroundUserMessage)
	assign(VarBackgroundAgentMessage, colors.BackgroundAgentMessage)
	assign(VarBackgroundWebchat, colors.BackgroundWebchat)
	assign(VarTextLinkColor, colors.TextLinkColor)
	assign(VarBorderColor, colors.BorderColor)

	return vars
}

// Stylesheet renders the variables as a :root block with deterministic
// ordering, suitable for direct host embedding.
func Stylesheet(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sheet strings.Builder
	sheet.WriteString(":root {\n")
	for _, name := range names {
		sheet.WriteString("  ")
		sheet.WriteString(name)
		sheet.WriteString(": ")
		sheet.WriteString(vars[name])
		sheet.WriteString(";\n")
	}
	sheet.WriteString("}\n")
	return sheet.String()
}
