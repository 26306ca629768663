package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
)

// TranslationAdapter defines how catalogs are loaded.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load returns Data, or an empty catalog set when Data is nil.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter reads every file in dir of fsys that its parser supports and
// merges the results. Files are processed in name order, so for duplicate keys
// the last file wins.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
	only   string
}

// NewFSAdapter creates an adapter over a directory of any fs.FS, such as an embed.FS.
// Returns nil if parser or fsys is nil.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an adapter over a directory on the local file system.
// Returns nil if parser is nil or dir is empty.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(parser, os.DirFS(dir), ".")
}

// NewFileAdapter creates an adapter over a single local file.
// Returns nil if parser is nil or filename is empty.
func NewFileAdapter(parser Parser, filename string) *FSAdapter {
	if filename == "" {
		return nil
	}
	a := NewFSAdapter(parser, os.DirFS(filepath.Dir(filename)), ".")
	if a != nil {
		a.only = filepath.Base(filename)
	}
	return a
}

// Load parses every supported file and merges the catalogs by language.
// A nil adapter, as returned by the constructors for bad arguments, fails
// with ErrNilAdapter.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	names, err := a.files()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogFiles, a.dir)
	}

	all := make(map[string]map[string]any)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		if err := a.loadFile(ctx, path.Join(a.dir, name), all); err != nil {
			return nil, err
		}
	}
	return all, nil
}

func (a *FSAdapter) files() ([]string, error) {
	if a.only != "" {
		if !a.parser.SupportsFileExtension(path.Ext(a.only)) {
			return nil, fmt.Errorf("%w: unsupported extension of %q", ErrFailedToParseFile, a.only)
		}
		return []string{a.only}, nil
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		names = append(names, entry.Name())
	}
	slices.Sort(names)
	return names, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, name string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, name)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: %q is empty", ErrFailedToParseFile, name)
	}

	catalogs, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(fmt.Errorf("%w: %q", ErrFailedToParseFile, name), err)
	}

	for lang, entries := range catalogs {
		if all[lang] == nil {
			all[lang] = make(map[string]any, len(entries))
		}
		maps.Copy(all[lang], entries)
	}
	return nil
}
