package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(cfg))
	require.Equal(t, defaultGalleryColumnThreshold, cfg.Layout.GalleryColumnThreshold)
}

func TestPreferDefaultPreviewNilSafe(t *testing.T) {
	t.Parallel()

	var cfg *Config
	require.False(t, cfg.PreferDefaultPreview())

	cfg = &Config{Layout: LayoutSettings{EnableDefaultPreview: true}}
	require.True(t, cfg.PreferDefaultPreview())
}

func TestTranslate(t *testing.T) {
	t.Parallel()

	var nilCfg *Config
	require.Equal(t, "Download", nilCfg.Translate("file_download", "Download"))

	cfg := &Config{Translations: map[string]string{"file_download": "Herunterladen"}}
	require.Equal(t, "Herunterladen", cfg.Translate("file_download", "Download"))
	require.Equal(t, "Open", cfg.Translate("unknown_key", "Open"))
}
