package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontconf/pkg/errors"
	"github.com/arthur-debert/fontconf/pkg/parser"
	"github.com/arthur-debert/fontconf/pkg/testutil"
	"github.com/arthur-debert/fontconf/pkg/types"
)

func TestDocumentReader_Parse(t *testing.T) {
	reader := parser.NewDocumentReader()

	t.Run("full_document", func(t *testing.T) {
		doc, err := reader.Parse(strings.NewReader(testutil.Fontconfig(`
<description>Android font config</description>
<dir prefix="xdg" salt="v1">fonts</dir>
<cachedir>cache</cachedir>
<include prefix="cwd" ignore_missing="yes">conf.d</include>
<match target="scan">
  <test name="family" qual="any" compare="eq"><string>serif</string></test>
  <edit name="hintstyle" mode="assign" binding="weak"><const>hintslight</const></edit>
</match>
<config>
  <rescan><int>30</int></rescan>
</config>
`)))
		require.NoError(t, err)

		assert.Equal(t, "Android font config", doc.Description)
		assert.Equal(t, []types.Dir{{Path: "fonts", Prefix: types.PrefixXdg, Salt: "v1"}}, doc.Dirs)
		assert.Equal(t, []types.CacheDir{{Path: "cache"}}, doc.CacheDirs)
		assert.Equal(t, []types.Include{{Path: "conf.d", Prefix: types.PrefixCwd, IgnoreMissing: true}}, doc.Includes)
		assert.Equal(t, []int{30}, doc.Config.Rescans)

		require.Len(t, doc.Matches, 1)
		m := doc.Matches[0]
		assert.Equal(t, types.MatchScan, m.Target)
		require.Len(t, m.Tests, 1)
		assert.Equal(t, types.Property{Kind: types.PropFamily, Value: types.String("serif")}, m.Tests[0].Value)
		require.Len(t, m.Edits, 1)
		assert.Equal(t, types.Property{Kind: types.PropHintStyle, Value: types.ConstHintSlight}, m.Edits[0].Value)
	})

	t.Run("reusable_across_documents", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			doc, err := reader.Parse(strings.NewReader(testutil.Fontconfig(`<dir>fonts</dir>`)))
			require.NoError(t, err)
			assert.Len(t, doc.Dirs, 1)
		}
	})

	t.Run("matrix_value", func(t *testing.T) {
		doc, err := reader.Parse(strings.NewReader(testutil.Fontconfig(`
<match>
  <edit name="matrix" mode="assign">
    <matrix><double>1</double><double>0.5</double><double>0</double><double>1</double></matrix>
  </edit>
</match>
`)))
		require.NoError(t, err)
		require.Len(t, doc.Matches, 1)
		assert.Equal(t, types.Matrix{
			types.Double(1), types.Double(0.5), types.Double(0), types.Double(1),
		}, doc.Matches[0].Edits[0].Value.Value)
	})

	t.Run("unknown_top_level_element_is_skipped", func(t *testing.T) {
		doc, err := reader.Parse(strings.NewReader(testutil.Fontconfig(`
<shiny-new-thing><int>1</int></shiny-new-thing>
<dir>fonts</dir>
`)))
		require.NoError(t, err)
		assert.Len(t, doc.Dirs, 1)
	})

	t.Run("no_root_element", func(t *testing.T) {
		_, err := reader.Parse(strings.NewReader(`<?xml version="1.0"?><!-- nothing here -->`))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoFontconfig))
	})

	t.Run("wrong_root_element", func(t *testing.T) {
		_, err := reader.Parse(strings.NewReader(`<html></html>`))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNoFontconfig))
	})

	t.Run("foreign_doctype", func(t *testing.T) {
		_, err := reader.Parse(strings.NewReader(`<?xml version="1.0"?>
<!DOCTYPE html>
<fontconfig></fontconfig>`))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnmatchedDocType))
	})

	t.Run("eof_while_expecting_value", func(t *testing.T) {
		_, err := reader.Parse(strings.NewReader(
			`<fontconfig><match><edit name="family" mode="assign">`))
		require.Error(t, err)
		// The decoder surfaces the truncated document before the value
		// reader can; either way the parse fails loudly.
		code := errors.GetErrorCode(err)
		assert.Contains(t, []errors.ErrorCode{errors.ErrUnexpectedEOF, errors.ErrXMLSyntax}, code)
	})

	t.Run("missing_config_end_tag_is_fatal", func(t *testing.T) {
		_, err := reader.Parse(strings.NewReader(
			`<fontconfig><config><rescan><int>30</int></rescan>`))
		require.Error(t, err)
		code := errors.GetErrorCode(err)
		assert.Contains(t, []errors.ErrorCode{errors.ErrUnexpectedEOF, errors.ErrXMLSyntax}, code)
	})

	t.Run("coercion_matches_tree_walk_parser", func(t *testing.T) {
		src := testutil.Fontconfig(`
<dir prefix="relative" salt="abc">fonts</dir>
<match>
  <test name="weight" compare="more"><const>medium</const></test>
  <edit name="weight" mode="assign"><const>bold</const></edit>
</match>
`)

		doc, err := reader.Parse(strings.NewReader(src))
		require.NoError(t, err)

		parts, err := parser.ParseConfigBytes([]byte(src))
		require.NoError(t, err)
		require.Len(t, parts, 2)

		assert.Equal(t, parts[0], doc.Dirs[0])
		assert.Equal(t, parts[1], doc.Matches[0])
	})
}
