package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	chatmatcherrors "github.com/conversive/chatmatch/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `sanitize:
  allowed_tags: [b, i, my-widget]
translations:
  file_download: "Download {name}"
layout:
  enable_default_preview: true
  gallery_column_threshold: 4
theme:
  primary_color: "#2c6ef2"
`

	invalidYAML := `sanitize:
  allowed_tags: {not: a-list}
`

	badColor := `theme:
  primary_color: "blue"
`

	badTag := `sanitize:
  allowed_tags: ["<script>"]
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.True(t, cfg.Layout.EnableDefaultPreview)
				require.Equal(t, 4, cfg.Layout.GalleryColumnThreshold)
				require.Equal(t, []string{"b", "i", "my-widget"}, cfg.Sanitize.AllowedTags)
				require.Equal(t, "#2c6ef2", cfg.Theme.PrimaryColor)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *chatmatcherrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "non-hex theme color returns validation error",
			contents: badColor,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *chatmatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "primarycolor")
			},
		},
		{
			name:     "markup in tag allow-list returns validation error",
			contents: badTag,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *chatmatcherrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "html_tag")
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *chatmatcherrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)
	require.Error(t, err)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "webchat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
