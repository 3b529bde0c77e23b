package merge_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontconf/pkg/errors"
	"github.com/arthur-debert/fontconf/pkg/merge"
	"github.com/arthur-debert/fontconf/pkg/testutil"
	"github.com/arthur-debert/fontconf/pkg/types"
)

func editFamily(m types.Match) string {
	if len(m.Edits) == 0 {
		return ""
	}
	s, _ := m.Edits[0].Value.Value.(types.String)
	return string(s)
}

func TestLoad_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteConfigFile(t, dir, "conf.d/10-a.conf",
		testutil.Fontconfig(testutil.MatchFamily("a-family")))
	testutil.WriteConfigFile(t, dir, "conf.d/05-b.conf",
		testutil.Fontconfig(testutil.MatchFamily("b-family")))
	root := testutil.WriteConfigFile(t, dir, "fonts.conf", testutil.Fontconfig(`
<dir>fonts</dir>
<include ignore_missing="yes">conf.d</include>
`))

	cfg, err := merge.Load(root)
	require.NoError(t, err)

	require.Len(t, cfg.Dirs, 1)
	assert.Equal(t, filepath.Join(dir, "fonts"), cfg.Dirs[0].Path)

	// Drop-in files merge in name order regardless of declaration order
	require.Len(t, cfg.Matches, 2)
	assert.Equal(t, "b-family", editFamily(cfg.Matches[0]))
	assert.Equal(t, "a-family", editFamily(cfg.Matches[1]))
}

func TestMergeConfig_DirectoryOrder(t *testing.T) {
	dir := t.TempDir()

	// Create drop-ins in reverse alphabetical order; merge order must not
	// depend on creation order.
	for _, name := range []string{"30-z.conf", "20-m.conf", "10-a.conf"} {
		testutil.WriteConfigFile(t, dir, filepath.Join("conf.d", name),
			testutil.Fontconfig(testutil.MatchFamily(name)))
	}
	root := testutil.WriteConfigFile(t, dir, "fonts.conf",
		testutil.Fontconfig(`<include>conf.d</include>`))

	cfg, err := merge.Load(root)
	require.NoError(t, err)

	require.Len(t, cfg.Matches, 3)
	assert.Equal(t, "10-a.conf", editFamily(cfg.Matches[0]))
	assert.Equal(t, "20-m.conf", editFamily(cfg.Matches[1]))
	assert.Equal(t, "30-z.conf", editFamily(cfg.Matches[2]))
}

func TestMergeConfig_DirectoryEntrySemantics(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteConfigFile(t, dir, "conf.d/10-good.conf",
		testutil.Fontconfig(testutil.MatchFamily("good")))
	testutil.WriteConfigFile(t, dir, "conf.d/05-broken.conf", "<fontconfig><match>")
	// Nested directories are not recursed into
	testutil.WriteConfigFile(t, dir, "conf.d/nested/50-deep.conf",
		testutil.Fontconfig(testutil.MatchFamily("deep")))
	root := testutil.WriteConfigFile(t, dir, "fonts.conf",
		testutil.Fontconfig(`<include>conf.d</include>`))

	cfg, err := merge.Load(root)
	require.NoError(t, err, "a malformed drop-in must not block its siblings")

	require.Len(t, cfg.Matches, 1)
	assert.Equal(t, "good", editFamily(cfg.Matches[0]))
}

func TestMergeConfig_ResetDirs(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteConfigFile(t, dir, "a.conf", testutil.Fontconfig(`
<dir>fonts</dir>
<cachedir>cache</cachedir>
<alias><family>serif</family><prefer><family>DejaVu Serif</family></prefer></alias>
`))
	testutil.WriteConfigFile(t, dir, "b.conf", testutil.Fontconfig(`<reset-dirs/>`))

	r := merge.NewResolver()
	require.NoError(t, r.MergeConfig(filepath.Join(dir, "a.conf")))
	require.NoError(t, r.MergeConfig(filepath.Join(dir, "b.conf")))

	cfg := r.Config()
	assert.Empty(t, cfg.Dirs, "reset-dirs clears the directory list")
	assert.Len(t, cfg.CacheDirs, 1, "cache dirs survive reset-dirs")
	assert.Len(t, cfg.Aliases, 1, "aliases survive reset-dirs")
}

func TestMergeConfig_IgnoreMissing(t *testing.T) {
	t.Run("set_swallows_the_error", func(t *testing.T) {
		dir := t.TempDir()
		root := testutil.WriteConfigFile(t, dir, "fonts.conf", testutil.Fontconfig(`
<include ignore_missing="yes">no-such-place</include>
<dir>fonts</dir>
`))

		cfg, err := merge.Load(root)
		require.NoError(t, err)
		assert.Len(t, cfg.Dirs, 1, "fragments after the include still merge")
	})

	t.Run("unset_surfaces_a_filesystem_error", func(t *testing.T) {
		dir := t.TempDir()
		root := testutil.WriteConfigFile(t, dir, "fonts.conf", testutil.Fontconfig(`
<include>no-such-place</include>
<dir>fonts</dir>
`))

		r := merge.NewResolver()
		err := r.MergeConfig(root)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))

		// The failing include does not abort the current file
		assert.Len(t, r.Config().Dirs, 1)
	})
}

func TestMergeConfig_ConfigAccumulates(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteConfigFile(t, dir, "a.conf", testutil.Fontconfig(`
<config><rescan><int>30</int></rescan></config>
`))
	testutil.WriteConfigFile(t, dir, "b.conf", testutil.Fontconfig(`
<config><rescan><int>60</int></rescan><blank><int>0x0020</int></blank></config>
`))

	r := merge.NewResolver()
	require.NoError(t, r.MergeConfig(filepath.Join(dir, "a.conf")))
	require.NoError(t, r.MergeConfig(filepath.Join(dir, "b.conf")))

	cfg := r.Config()
	assert.Equal(t, []int{30, 60}, cfg.Config.Rescans, "rescan lists append, never replace")
	assert.Equal(t, []types.CharRange{{First: 0x20, Last: 0x20}}, cfg.Config.Blanks)
}

func TestMergeConfig_IncludeCycle(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteConfigFile(t, dir, "a.conf",
		testutil.Fontconfig(`<include>b.conf</include>`))
	testutil.WriteConfigFile(t, dir, "b.conf",
		testutil.Fontconfig(`<include>a.conf</include>`))

	_, err := merge.Load(filepath.Join(dir, "a.conf"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIncludeCycle))
}

func TestMergeConfig_DepthLimit(t *testing.T) {
	dir := t.TempDir()

	testutil.WriteConfigFile(t, dir, "a.conf",
		testutil.Fontconfig(`<include>b.conf</include>`))
	testutil.WriteConfigFile(t, dir, "b.conf",
		testutil.Fontconfig(`<dir>fonts</dir>`))

	_, err := merge.Load(filepath.Join(dir, "a.conf"), merge.WithMaxDepth(1))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIncludeDepth))
}

func TestMergeConfig_SymlinkedDropIn(t *testing.T) {
	dir := t.TempDir()

	target := testutil.WriteConfigFile(t, dir, "elsewhere/50-linked.conf",
		testutil.Fontconfig(testutil.MatchFamily("linked")))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conf.d"), 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "conf.d", "50-linked.conf")))

	root := testutil.WriteConfigFile(t, dir, "fonts.conf",
		testutil.Fontconfig(`<include>conf.d</include>`))

	cfg, err := merge.Load(root)
	require.NoError(t, err)
	require.Len(t, cfg.Matches, 1)
	assert.Equal(t, "linked", editFamily(cfg.Matches[0]))
}

func TestMergeConfig_RemapAndSalt(t *testing.T) {
	dir := t.TempDir()

	root := testutil.WriteConfigFile(t, dir, "fonts.conf", testutil.Fontconfig(`
<dir salt="host-v1">fonts</dir>
<remap-dir as-path="/usr/share/fonts" salt="guest">host-fonts</remap-dir>
<cachedir>cache</cachedir>
`))

	cfg, err := merge.Load(root)
	require.NoError(t, err)

	assert.Equal(t, []types.DirData{
		{Path: filepath.Join(dir, "fonts"), Salt: "host-v1"},
	}, cfg.Dirs)
	assert.Equal(t, []types.RemapDirData{
		{Path: filepath.Join(dir, "host-fonts"), Salt: "guest", AsPath: "/usr/share/fonts"},
	}, cfg.RemapDirs)
	assert.Equal(t, []string{filepath.Join(dir, "cache")}, cfg.CacheDirs)
}
