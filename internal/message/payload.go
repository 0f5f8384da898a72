package message

// Channel payload keys under data._cognigy. The default-preview payload is
// only consulted when the host opts in; webchat wins over facebook otherwise.
const (
	cognigyKey        = "_cognigy"
	webchatKey        = "_webchat"
	facebookKey       = "_facebook"
	defaultPreviewKey = "_defaultPreview"
	webchat3Key       = "_webchat3"
	pluginKey         = "_plugin"
	appKey            = "_app"
)

// QuickReply is one quick-reply button attached to a channel payload.
type QuickReply struct {
	ContentType string
	Title       string
	Payload     string
	ImageURL    string
}

// Attachment is the media or template attachment of a channel payload.
type Attachment struct {
	Type    string
	Payload map[string]any
}

// TemplateType returns the template_type of a template attachment, or "".
func (a Attachment) TemplateType() string {
	return LookupString(a.Payload, "template_type")
}

// URL returns the payload url of a media attachment, or "".
func (a Attachment) URL() string {
	return LookupString(a.Payload, "url")
}

// Payload resolves the channel-specific sub-object of data._cognigy.
// With preferDefaultPreview set, an existing _defaultPreview payload wins;
// otherwise _webchat is consulted first, then _facebook.
func (m *Message) Payload(preferDefaultPreview bool) map[string]any {
	if m == nil {
		return nil
	}

	if preferDefaultPreview {
		if preview := LookupMap(m.Data, cognigyKey, defaultPreviewKey); preview != nil {
			return preview
		}
	}
	if webchat := LookupMap(m.Data, cognigyKey, webchatKey); webchat != nil {
		return webchat
	}
	return LookupMap(m.Data, cognigyKey, facebookKey)
}

// channelMessage returns the facebook-style message object of the resolved
// channel payload.
func (m *Message) channelMessage(preferDefaultPreview bool) map[string]any {
	return LookupMap(m.Payload(preferDefaultPreview), "message")
}

// PayloadText returns the text carried by the channel payload, if any.
func (m *Message) PayloadText(preferDefaultPreview bool) string {
	return LookupString(m.channelMessage(preferDefaultPreview), "text")
}

// QuickReplies returns the quick replies of the resolved channel payload.
// Entries with an unexpected shape are skipped.
func (m *Message) QuickReplies(preferDefaultPreview bool) []QuickReply {
	items := LookupSlice(m.channelMessage(preferDefaultPreview), "quick_replies")
	if len(items) == 0 {
		return nil
	}

	replies := make([]QuickReply, 0, len(items))
	for _, item := range items {
		entry, isMap := item.(map[string]any)
		if !isMap {
			continue
		}
		replies = append(replies, QuickReply{
			ContentType: LookupString(entry, "content_type"),
			Title:       LookupString(entry, "title"),
			Payload:     LookupString(entry, "payload"),
			ImageURL:    LookupString(entry, "image_url"),
		})
	}
	if len(replies) == 0 {
		return nil
	}
	return replies
}

// Attachment returns the attachment of the resolved channel payload.
func (m *Message) Attachment(preferDefaultPreview bool) (Attachment, bool) {
	node := LookupMap(m.channelMessage(preferDefaultPreview), "attachment")
	if node == nil {
		return Attachment{}, false
	}

	attachment := Attachment{
		Type:    LookupString(node, "type"),
		Payload: LookupMap(node, "payload"),
	}
	if attachment.Type == "" {
		return Attachment{}, false
	}
	return attachment, true
}

// PluginType returns data._plugin.type, or "".
func (m *Message) PluginType() string {
	if m == nil {
		return ""
	}
	return LookupString(m.Data, pluginKey, "type")
}

// PluginPayload returns data._plugin.payload, or nil.
func (m *Message) PluginPayload() map[string]any {
	if m == nil {
		return nil
	}
	return LookupMap(m.Data, pluginKey, "payload")
}

// Webchat3EventType returns the event type of a webchat v3 payload, or "".
func (m *Message) Webchat3EventType() string {
	if m == nil {
		return ""
	}
	return LookupString(m.Data, cognigyKey, webchat3Key, "type")
}

// XAppSubmitted reports whether the message is an xApp submit notification.
func (m *Message) XAppSubmitted() bool {
	if m == nil {
		return false
	}
	return LookupString(m.Data, cognigyKey, appKey, "type") == "x-app-submit"
}
