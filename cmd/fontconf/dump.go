package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/fontconf/pkg/config"
	"github.com/arthur-debert/fontconf/pkg/merge"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [config-file]",
	Short: "Resolve a rule file tree and print the merged configuration",
	Long: `dump parses the given rule file, recursively resolves its include
directives, and prints the resulting configuration as YAML.

Without an argument the default_config from .fontconf.toml is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Discover()
		if err != nil {
			return err
		}

		path := settings.DefaultConfig
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return fmt.Errorf("no config file given and no default_config configured")
		}

		var opts []merge.Option
		if settings.MaxIncludeDepth > 0 {
			opts = append(opts, merge.WithMaxDepth(settings.MaxIncludeDepth))
		}

		resolved, err := merge.Load(path, opts...)
		if err != nil {
			return err
		}

		printHeader(fmt.Sprintf("Resolved configuration from %s", path))
		fmt.Printf("%d dirs, %d cache dirs, %d matches, %d aliases\n\n",
			len(resolved.Dirs), len(resolved.CacheDirs), len(resolved.Matches), len(resolved.Aliases))

		out, err := yaml.Marshal(resolved)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}
