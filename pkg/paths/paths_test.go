package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/fontconf/pkg/paths"
	"github.com/arthur-debert/fontconf/pkg/types"
)

func TestResolve(t *testing.T) {
	configFile := "/etc/fonts/fonts.conf"

	t.Run("absolute_paths_pass_through", func(t *testing.T) {
		for _, prefix := range []types.DirPrefix{
			types.PrefixDefault, types.PrefixCwd, types.PrefixRelative, types.PrefixXdg,
		} {
			assert.Equal(t, "/usr/share/fonts",
				paths.Resolve("/usr/share/fonts", prefix, configFile))
		}
	})

	t.Run("default_resolves_against_config_dir", func(t *testing.T) {
		assert.Equal(t, "/etc/fonts/conf.d",
			paths.Resolve("conf.d", types.PrefixDefault, configFile))
	})

	t.Run("relative_resolves_against_config_dir", func(t *testing.T) {
		assert.Equal(t, "/etc/fonts/local/extra.conf",
			paths.Resolve("local/extra.conf", types.PrefixRelative, configFile))
	})

	t.Run("cwd_stays_relative", func(t *testing.T) {
		assert.Equal(t, "fonts",
			paths.Resolve("fonts", types.PrefixCwd, configFile))
	})

	t.Run("xdg_resolves_against_user_config", func(t *testing.T) {
		assert.Equal(t, filepath.Join(xdg.ConfigHome, "fontconfig", "fonts.conf"),
			paths.Resolve("fonts.conf", types.PrefixXdg, configFile))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := paths.Resolve("conf.d", types.PrefixDefault, configFile)
		b := paths.Resolve("conf.d", types.PrefixDefault, configFile)
		assert.Equal(t, a, b)
	})
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, filepath.Join(xdg.Home, ".fonts"), paths.ExpandHome("~/.fonts"))
	assert.Equal(t, xdg.Home, paths.ExpandHome("~"))
	assert.Equal(t, "fonts", paths.ExpandHome("fonts"))
	assert.Equal(t, "/opt/~fonts", paths.ExpandHome("/opt/~fonts"))
}
