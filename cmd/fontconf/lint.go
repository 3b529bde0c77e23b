package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/fontconf/pkg/parser"
	"github.com/arthur-debert/fontconf/pkg/types"
)

var lintCmd = &cobra.Command{
	Use:   "lint <config-file>",
	Short: "Parse a single rule file and report its fragments",
	Long: `lint parses one rule file without resolving includes and reports the
top-level fragments it contains. Parse and coercion errors surface with
the offending element and value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		parts, err := parser.ParseConfigBytes(data)
		if err != nil {
			return err
		}

		counts := map[string]int{}
		for _, part := range parts {
			counts[partName(part)]++
		}

		printHeader(fmt.Sprintf("%s: %d fragments", args[0], len(parts)))
		for name, n := range counts {
			fmt.Printf("  %-12s %d\n", name, n)
		}
		return nil
	},
}

func partName(part types.ConfigPart) string {
	switch part.(type) {
	case types.Description:
		return "description"
	case types.SelectFont:
		return "selectfont"
	case types.Dir:
		return "dir"
	case types.CacheDir:
		return "cachedir"
	case types.Include:
		return "include"
	case types.Match:
		return "match"
	case types.Config:
		return "config"
	case types.Alias:
		return "alias"
	case types.RemapDir:
		return "remap-dir"
	case types.ResetDirs:
		return "reset-dirs"
	default:
		return "unknown"
	}
}
