package message

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func webchatEnvelope(channel string, msg map[string]any) *Message {
	return &Message{
		Source: SourceBot,
		Data: map[string]any{
			"_cognigy": map[string]any{
				channel: map[string]any{"message": msg},
			},
		},
	}
}

func TestPayloadChannelResolution(t *testing.T) {
	t.Parallel()

	msg := &Message{
		Source: SourceBot,
		Data: map[string]any{
			"_cognigy": map[string]any{
				"_webchat":        map[string]any{"message": map[string]any{"text": "webchat"}},
				"_facebook":       map[string]any{"message": map[string]any{"text": "facebook"}},
				"_defaultPreview": map[string]any{"message": map[string]any{"text": "preview"}},
			},
		},
	}

	require.Equal(t, "webchat", msg.PayloadText(false))
	require.Equal(t, "preview", msg.PayloadText(true))

	delete(msg.Data["_cognigy"].(map[string]any), "_defaultPreview")
	require.Equal(t, "webchat", msg.PayloadText(true))

	delete(msg.Data["_cognigy"].(map[string]any), "_webchat")
	require.Equal(t, "facebook", msg.PayloadText(false))
}

func TestQuickRepliesSkipMalformedEntries(t *testing.T) {
	t.Parallel()

	msg := webchatEnvelope("_webchat", map[string]any{
		"text": "pick one",
		"quick_replies": []any{
			map[string]any{"content_type": "text", "title": "Yes", "payload": "yes"},
			"malformed",
			map[string]any{"content_type": "text", "title": "No", "payload": "no"},
		},
	})

	replies := msg.QuickReplies(false)
	require.Len(t, replies, 2)
	require.Equal(t, "Yes", replies[0].Title)
	require.Equal(t, "no", replies[1].Payload)
}

func TestAttachmentAccessors(t *testing.T) {
	t.Parallel()

	msg := webchatEnvelope("_webchat", map[string]any{
		"attachment": map[string]any{
			"type": "template",
			"payload": map[string]any{
				"template_type": "generic",
				"elements":      []any{},
			},
		},
	})

	attachment, ok := msg.Attachment(false)
	require.True(t, ok)
	require.Equal(t, "template", attachment.Type)
	require.Equal(t, "generic", attachment.TemplateType())

	_, ok = (&Message{}).Attachment(false)
	require.False(t, ok)
}

func TestPluginAndEventAccessors(t *testing.T) {
	t.Parallel()

	msg := &Message{
		Data: map[string]any{
			"_plugin": map[string]any{
				"type":    "date-picker",
				"payload": map[string]any{"minDate": "2026-01-01"},
			},
			"_cognigy": map[string]any{
				"_webchat3": map[string]any{"type": "event"},
				"_app":      map[string]any{"type": "x-app-submit"},
			},
		},
	}

	require.Equal(t, "date-picker", msg.PluginType())
	require.Equal(t, "2026-01-01", LookupString(msg.PluginPayload(), "minDate"))
	require.Equal(t, "event", msg.Webchat3EventType())
	require.True(t, msg.XAppSubmitted())

	var nilMsg *Message
	require.Equal(t, "", nilMsg.PluginType())
	require.False(t, nilMsg.XAppSubmitted())
	require.Nil(t, nilMsg.Payload(true))
}
