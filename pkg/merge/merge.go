package merge

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/fontconf/pkg/errors"
	"github.com/arthur-debert/fontconf/pkg/logging"
	"github.com/arthur-debert/fontconf/pkg/parser"
	"github.com/arthur-debert/fontconf/pkg/paths"
	"github.com/arthur-debert/fontconf/pkg/types"
)

// DefaultMaxDepth bounds include nesting. Real rule sets are a handful of
// levels deep; anything near this limit is a broken include chain.
const DefaultMaxDepth = 256

// Resolver owns a FontConfig accumulator for the duration of one
// resolution pass. It is not safe for concurrent use; resolution is
// strictly nested recursion over a single accumulator.
type Resolver struct {
	config   types.FontConfig
	visited  map[string]struct{}
	depth    int
	maxDepth int
	logger   zerolog.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithMaxDepth overrides the include nesting limit
func WithMaxDepth(n int) Option {
	return func(r *Resolver) {
		r.maxDepth = n
	}
}

// NewResolver creates an empty accumulator
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		visited:  make(map[string]struct{}),
		maxDepth: DefaultMaxDepth,
		logger:   logging.GetLogger("merge"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load resolves the configuration rooted at path into a FontConfig.
// This is the one-call entry point for callers that do not need to merge
// several roots.
func Load(path string, opts ...Option) (*types.FontConfig, error) {
	r := NewResolver(opts...)
	if err := r.MergeConfig(path); err != nil {
		return nil, err
	}
	return r.Config(), nil
}

// Config returns the accumulated configuration. The resolver keeps no
// reference obligations afterwards; callers own the result.
func (r *Resolver) Config() *types.FontConfig {
	return &r.config
}

// MergeConfig parses one rule file and folds its fragments into the
// accumulator in document order, recursing into includes.
//
// A failing include surfaces its error only when the include did not
// request ignore_missing, and even then the remaining fragments of the
// current file are still folded first; fragments already merged are never
// rolled back.
func (r *Resolver) MergeConfig(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "resolving path %q", path)
	}

	if _, seen := r.visited[abs]; seen {
		return errors.Newf(errors.ErrIncludeCycle, "include cycle detected at %q", abs).
			WithDetail("path", abs)
	}
	if r.depth >= r.maxDepth {
		return errors.Newf(errors.ErrIncludeDepth, "include depth exceeds %d at %q", r.maxDepth, abs)
	}

	r.visited[abs] = struct{}{}
	r.depth++
	defer func() {
		delete(r.visited, abs)
		r.depth--
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "reading config file %q", path)
	}

	parts, err := parser.ParseConfigBytes(data)
	if err != nil {
		return err
	}

	r.logger.Debug().Str("path", path).Int("fragments", len(parts)).Msg("Merging config file")

	var includeErr error

	for _, part := range parts {
		switch p := part.(type) {
		case types.Alias:
			r.config.Aliases = append(r.config.Aliases, p)
		case types.Config:
			r.config.Config.Rescans = append(r.config.Config.Rescans, p.Rescans...)
			r.config.Config.Blanks = append(r.config.Config.Blanks, p.Blanks...)
		case types.Description:
			// informational only
		case types.Dir:
			r.config.Dirs = append(r.config.Dirs, types.DirData{
				Path: paths.Resolve(p.Path, p.Prefix, path),
				Salt: p.Salt,
			})
		case types.CacheDir:
			r.config.CacheDirs = append(r.config.CacheDirs, paths.Resolve(p.Path, p.Prefix, path))
		case types.Match:
			r.config.Matches = append(r.config.Matches, p)
		case types.ResetDirs:
			r.config.Dirs = nil
		case types.SelectFont:
			r.config.SelectFonts = append(r.config.SelectFonts, p)
		case types.RemapDir:
			r.config.RemapDirs = append(r.config.RemapDirs, types.RemapDirData{
				Path:   paths.Resolve(p.Path, p.Prefix, path),
				Salt:   p.Salt,
				AsPath: p.AsPath,
			})
		case types.Include:
			includePath := paths.Resolve(p.Path, p.Prefix, path)
			if err := r.include(includePath); err != nil {
				if p.IgnoreMissing {
					r.logger.Debug().Str("path", includePath).Err(err).
						Msg("Ignoring missing include")
				} else {
					r.logger.Warn().Str("path", includePath).Err(err).
						Msg("Failed to load include")
					if includeErr == nil {
						includeErr = err
					}
				}
			}
		}
	}

	return includeErr
}

// include resolves one include target: a regular file merges directly, a
// directory merges each of its regular-file or symlink entries in sorted
// name order. Entries that are themselves directories are skipped; drop-in
// directories are flat by convention.
func (r *Resolver) include(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "reading include %q", path)
	}

	if !info.IsDir() {
		return r.MergeConfig(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "reading include directory %q", path)
	}

	var names []string
	for _, entry := range entries {
		t := entry.Type()
		if t.IsRegular() || t&fs.ModeSymlink != 0 {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		entryPath := filepath.Join(path, name)
		// One malformed drop-in file must not block its siblings.
		if err := r.MergeConfig(entryPath); err != nil {
			r.logger.Warn().Str("path", entryPath).Err(err).
				Msg("Skipping unreadable drop-in config")
		}
	}

	return nil
}
