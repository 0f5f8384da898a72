package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/conversive/chatmatch/internal/matcher"
)

func tempCatalogPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "catalog.json")
}

func TestCatalogRoundTrip(t *testing.T) {
	t.Parallel()

	path := tempCatalogPath(t)

	c, err := New(path)
	require.NoError(t, err)

	component := Component{
		Name:         "Survey",
		Rule:         "survey",
		Kind:         KindPlugin,
		Description:  "NPS survey cards",
		Enabled:      true,
		RegisteredAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Add(component))
	require.NoError(t, c.Save())

	reloaded, err := New(path)
	require.NoError(t, err)

	got, err := reloaded.Get("Survey")
	require.NoError(t, err)
	require.Equal(t, component, got)
}

func TestCatalogAddRejectsDuplicates(t *testing.T) {
	t.Parallel()

	c, err := New(tempCatalogPath(t))
	require.NoError(t, err)

	component := Component{Name: "Survey", Kind: KindPlugin, Enabled: true}
	require.NoError(t, c.Add(component))
	require.Error(t, c.Add(component))
}

func TestCatalogRemove(t *testing.T) {
	t.Parallel()

	c, err := New(tempCatalogPath(t))
	require.NoError(t, err)

	require.NoError(t, c.Add(Component{Name: "Survey", Kind: KindPlugin}))
	require.NoError(t, c.Add(Component{Name: "Text", Kind: KindBuiltin}))

	require.NoError(t, c.Remove("Survey"))
	require.Error(t, c.Remove("Survey"))

	err = c.Remove("Text")
	require.Error(t, err)
	require.Contains(t, err.Error(), "builtin")
}

func TestCatalogUpdate(t *testing.T) {
	t.Parallel()

	c, err := New(tempCatalogPath(t))
	require.NoError(t, err)

	require.NoError(t, c.Add(Component{Name: "Survey", Kind: KindPlugin, Enabled: true}))
	require.NoError(t, c.Update(Component{Name: "Survey", Kind: KindPlugin, Enabled: false}))

	got, err := c.Get("Survey")
	require.NoError(t, err)
	require.False(t, got.Enabled)

	require.Error(t, c.Update(Component{Name: "Ghost"}))
}

func TestCatalogCorruptFileIsReplaced(t *testing.T) {
	t.Parallel()

	path := tempCatalogPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c, err := New(path)
	require.NoError(t, err)
	require.Empty(t, c.List())

	_, err = os.Stat(path + ".corrupt")
	require.NoError(t, err)
}

func TestCatalogSeedBuiltins(t *testing.T) {
	t.Parallel()

	c, err := New(tempCatalogPath(t))
	require.NoError(t, err)

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c.SeedBuiltins(now)

	components := c.List()
	require.Len(t, components, len(matcher.BuiltinRules()))
	for _, component := range components {
		require.Equal(t, KindBuiltin, component.Kind)
		require.True(t, component.Enabled)
	}

	// Seeding twice keeps existing entries.
	text, err := c.Get("Text")
	require.NoError(t, err)
	text.Enabled = false
	require.NoError(t, c.Update(text))

	c.SeedBuiltins(now.Add(time.Hour))
	require.Len(t, c.List(), len(matcher.BuiltinRules()))
	got, err := c.Get("Text")
	require.NoError(t, err)
	require.False(t, got.Enabled)
}
