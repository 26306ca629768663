package i18n_test

import (
	"context"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/unitkit/pkg/i18n"
)

func TestMapAdapter(t *testing.T) {
	t.Run("returns data", func(t *testing.T) {
		data := map[string]map[string]any{"en": {"ohm": "Ω"}}
		got, err := (&i18n.MapAdapter{Data: data}).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("nil adapter", func(t *testing.T) {
		var adapter *i18n.MapAdapter
		_, err := adapter.Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("nil data yields empty map", func(t *testing.T) {
		got, err := (&i18n.MapAdapter{}).Load(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDirectoryAdapter(t *testing.T) {
	t.Run("nil parser yields an adapter that fails to load", func(t *testing.T) {
		adapter := i18n.NewDirectoryAdapter(nil, "testdata")
		require.Nil(t, adapter)

		_, err := adapter.Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("merges supported files and ignores subdirectories", func(t *testing.T) {
		adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "catalogs"))
		require.NotNil(t, adapter)

		got, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, got, "en")
		assert.Contains(t, got, "ru")
		assert.NotContains(t, got, "uk", "json files are not read by the YAML parser")
		assert.NotContains(t, got, "de", "nested directories are not walked")
	})

	t.Run("json parser reads json files only", func(t *testing.T) {
		adapter := i18n.NewDirectoryAdapter(i18n.NewJSONParser(), filepath.Join("testdata", "catalogs"))
		got, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"uk"}, keys(got))
	})

	t.Run("missing directory", func(t *testing.T) {
		adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "missing"))
		_, err := adapter.Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadDir)
	})

	t.Run("directory without catalogs", func(t *testing.T) {
		adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "empty"))
		_, err := adapter.Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrNoCatalogFiles)
	})

	t.Run("broken file fails the load", func(t *testing.T) {
		adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "broken"))
		_, err := adapter.Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		require.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("invalid constructor input", func(t *testing.T) {
		assert.Nil(t, i18n.NewDirectoryAdapter(nil, "testdata"))
		assert.Nil(t, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), ""))
	})
}

func TestFileAdapter(t *testing.T) {
	t.Run("loads a single file", func(t *testing.T) {
		adapter := i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "catalogs", "ru.yml"))
		got, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"ru"}, keys(got))
	})

	t.Run("missing file", func(t *testing.T) {
		adapter := i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "catalogs", "fr.yaml"))
		_, err := adapter.Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		adapter := i18n.NewFileAdapter(i18n.NewYAMLParser(), filepath.Join("testdata", "catalogs", "uk.json"))
		_, err := adapter.Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("invalid constructor input", func(t *testing.T) {
		assert.Nil(t, i18n.NewFileAdapter(i18n.NewYAMLParser(), ""))
	})
}

func TestFSAdapter(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/a.yaml":     {Data: []byte("en:\n  ns:\n    ohm: Ω\n")},
		"locales/b.yaml":     {Data: []byte("en:\n  other:\n    ohm: O\nru:\n  ns:\n    ohm: Ом\n")},
		"locales/empty.yaml": {Data: nil},
	}

	t.Run("empty file is an error", func(t *testing.T) {
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales")
		_, err := adapter.Load(context.Background())
		require.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("merges languages across files", func(t *testing.T) {
		clean := fstest.MapFS{
			"locales/a.yaml": fsys["locales/a.yaml"],
			"locales/b.yaml": fsys["locales/b.yaml"],
		}
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), clean, "locales")
		got, err := adapter.Load(context.Background())
		require.NoError(t, err)
		assert.Contains(t, got["en"], "ns")
		assert.Contains(t, got["en"], "other")
		assert.Contains(t, got["ru"], "ns")
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales")
		_, err := adapter.Load(ctx)
		require.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})

	t.Run("nil inputs", func(t *testing.T) {
		assert.Nil(t, i18n.NewFSAdapter(nil, fsys, "locales"))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "locales"))
	})
}

func keys(m map[string]map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
