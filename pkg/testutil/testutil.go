// Package testutil provides shared fixtures for building temporary rule
// file trees in tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteConfigFile writes one rule file under dir and returns its path
func WriteConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Fontconfig wraps body in the standard document envelope
func Fontconfig(body string) string {
	return `<?xml version="1.0"?>
<!DOCTYPE fontconfig SYSTEM "urn:fontconfig:fonts.dtd">
<fontconfig>
` + body + `
</fontconfig>
`
}

// MatchFamily returns a minimal match rule assigning the given family
func MatchFamily(family string) string {
	return `<match>
  <test name="family"><string>` + family + `</string></test>
  <edit name="family" mode="assign"><string>` + family + `</string></edit>
</match>`
}
