package sanitize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conversive/chatmatch/internal/config"
)

func newSanitizer(t *testing.T, opts Options) *Sanitizer {
	t.Helper()
	return New(opts, nil)
}

func TestSanitizePlainTextIsIdentity(t *testing.T) {
	t.Parallel()

	s := newSanitizer(t, Options{})

	cases := []string{
		"hello world",
		"5 + 5 = 10",
		"umlauts äöü and emoji 🎉",
		"",
	}
	for _, raw := range cases {
		require.Equal(t, raw, s.Sanitize(raw))
	}
}

func TestSanitizeKeepsAllowedFormatting(t *testing.T) {
	t.Parallel()

	s := newSanitizer(t, Options{})

	require.Equal(t, "<b>bold</b>", s.Sanitize("<b>bold</b>"))
	require.Equal(t, "<p>a<br/>b</p>", s.Sanitize("<p>a<br/>b</p>"))
}

func TestSanitizeStripsScripts(t *testing.T) {
	t.Parallel()

	s := newSanitizer(t, Options{})

	clean := s.Sanitize("Hello <script>alert(1)</script>world")
	require.NotContains(t, clean, "script")
	require.NotContains(t, clean, "alert")
	require.Contains(t, clean, "Hello ")
	require.Contains(t, clean, "world")
}

func TestSanitizeDropsEventHandlers(t *testing.T) {
	t.Parallel()

	s := newSanitizer(t, Options{})

	clean := s.Sanitize(`<b onclick="steal()">bold</b>`)
	require.Equal(t, "<b>bold</b>", clean)
}

func TestSanitizeDropsJavascriptHrefs(t *testing.T) {
	t.Parallel()

	s := newSanitizer(t, Options{})

	clean := s.Sanitize(`<a href="javascript:alert(1)">link</a>`)
	require.NotContains(t, clean, "javascript")
	require.Contains(t, clean, "link")
}

func TestSanitizeOrphanClosingTagEscapesWholesale(t *testing.T) {
	t.Parallel()

	s := newSanitizer(t, Options{})

	require.Equal(t, "&lt;/b&gt; oops", s.Sanitize("</b> oops"))
	require.Equal(t, "  &lt;/div&gt;rest", s.Sanitize("  </div>rest"))
}

func TestSanitizeRoundTripsCustomElements(t *testing.T) {
	t.Parallel()

	s := newSanitizer(t, Options{})

	raw := `<my-widget size="2">hi</my-widget>`
	require.Equal(t, raw, s.Sanitize(raw))

	mixed := `<my-widget>safe</my-widget><script>alert(1)</script>`
	clean := s.Sanitize(mixed)
	require.Contains(t, clean, "<my-widget>safe</my-widget>")
	require.NotContains(t, clean, "script")
}

func TestSanitizeExtraTagsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Sanitize: config.SanitizeSettings{AllowedTags: []string{"marquee"}},
	}

	strict := newSanitizer(t, Options{})
	require.Equal(t, "x", strict.Sanitize("<marquee>x</marquee>"))

	relaxed := newSanitizer(t, FromConfig(cfg))
	require.Equal(t, "<marquee>x</marquee>", relaxed.Sanitize("<marquee>x</marquee>"))
}

func TestSanitizeDisabledReturnsRaw(t *testing.T) {
	t.Parallel()

	s := newSanitizer(t, Options{Disable: true})

	raw := "<script>alert(1)</script>"
	require.Equal(t, raw, s.Sanitize(raw))
}

func TestEscape(t *testing.T) {
	t.Parallel()

	require.Equal(t, "&lt;b&gt;", Escape("<b>"))
}

func TestFromConfigNil(t *testing.T) {
	t.Parallel()

	require.Equal(t, Options{}, FromConfig(nil))
}
