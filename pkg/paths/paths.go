// Package paths resolves the prefixed, possibly-relative paths carried by
// dir, cachedir, include and remap-dir declarations.
//
// Resolution is a pure function of the raw path text, the prefix
// discriminator and the enclosing config file; it reads no filesystem
// state, so the merge engine can call it deterministically while folding
// fragments.
package paths

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/fontconf/pkg/types"
)

// xdgSubdir is the application directory under the user config base
const xdgSubdir = "fontconfig"

// Resolve turns a declared path into the path the merge engine should
// stat. Absolute paths pass through unchanged regardless of prefix.
//
//   - default and relative resolve against the enclosing file's directory
//   - cwd stays relative, resolved against the working directory by the
//     filesystem calls that consume it
//   - xdg resolves against the user config base directory
func Resolve(raw string, prefix types.DirPrefix, configFile string) string {
	p := ExpandHome(raw)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	switch prefix {
	case types.PrefixCwd:
		return filepath.Clean(p)
	case types.PrefixXdg:
		return filepath.Join(xdg.ConfigHome, xdgSubdir, p)
	default:
		// PrefixDefault and PrefixRelative: the caller-supplied base for
		// nested includes is always the including file's directory.
		return filepath.Join(filepath.Dir(configFile), p)
	}
}

// ExpandHome rewrites a leading ~/ to the user's home directory, as rule
// files conventionally use for per-user font dirs.
func ExpandHome(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}
