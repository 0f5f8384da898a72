// Package format holds the pure string and number helpers backing the
// render components: file size labels, filename splitting, CSS url()
// construction, and translation template interpolation.
package format

import (
	"fmt"
	"regexp"
	"strings"
)

// Decimal thousands, matching the labels the product shows (not binary KiB).
const megabyte = 1_000_000

// SizeLabel formats a byte count as the download label next to a file
// attachment. Sizes above one million bytes render in MB, everything else
// in KB, both with two decimals.
func SizeLabel(bytes int64) string {
	if bytes > megabyte {
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(megabyte))
	}
	return fmt.Sprintf("%.2f KB", float64(bytes)/1000)
}

// SplitFileName splits a filename into base name and extension. The last
// dot-delimited segment is the extension; names without a dot keep the whole
// string as the base name.
func SplitFileName(name string) (base, ext string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// FileExtension returns the extension of a filename. The second return is
// false when the name has no dot-delimited extension.
func FileExtension(name string) (string, bool) {
	if !strings.Contains(name, ".") {
		return "", false
	}
	_, ext := SplitFileName(name)
	return ext, true
}

var urlSchemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// BackgroundImage builds a CSS url(...) value for an image URL. Absolute
// URLs with a scheme other than http(s) are rejected, control characters are
// stripped, and backslash/quote/paren characters are escaped so the value
// cannot break out of the CSS string context. The second return is false on
// rejection.
func BackgroundImage(rawURL string) (string, bool) {
	cleaned := stripControl(rawURL)
	if cleaned == "" {
		return "", false
	}

	if scheme := urlSchemePattern.FindString(cleaned); scheme != "" {
		lowered := strings.ToLower(scheme)
		if lowered != "http:" && lowered != "https:" {
			return "", false
		}
	}

	var escaped strings.Builder
	for _, r := range cleaned {
		switch r {
		case '\\', '"', '\'', '(', ')':
			escaped.WriteByte('\\')
		}
		escaped.WriteRune(r)
	}

	return `url("` + escaped.String() + `")`, true
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// Interpolate substitutes {key} placeholders in a translation template from
// a flat dictionary. Unknown keys resolve to the empty string.
func Interpolate(template string, vars map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := match[1 : len(match)-1]
		return vars[key]
	})
}
