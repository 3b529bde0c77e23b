package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fontconf/pkg/errors"
	"github.com/arthur-debert/fontconf/pkg/types"
)

func TestNewOperator(t *testing.T) {
	args := []types.Expression{types.Bool(true)}

	t.Run("resolves_each_family", func(t *testing.T) {
		expr, err := types.NewOperator("and", args)
		require.NoError(t, err)
		assert.Equal(t, types.ListExpr{Op: types.ListAnd, Args: args}, expr)

		expr, err = types.NewOperator("not", args)
		require.NoError(t, err)
		assert.Equal(t, types.UnaryExpr{Op: types.UnaryNot, Args: args}, expr)

		expr, err = types.NewOperator("less_eq", args)
		require.NoError(t, err)
		assert.Equal(t, types.BinaryExpr{Op: types.BinaryLessEq, Args: args}, expr)

		expr, err = types.NewOperator("if", args)
		require.NoError(t, err)
		assert.Equal(t, types.TernaryExpr{Op: types.TernaryIf, Args: args}, expr)
	})

	t.Run("unknown_operator_is_an_error", func(t *testing.T) {
		_, err := types.NewOperator("xor", args)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownOperator))
		assert.Contains(t, err.Error(), "xor")
	})
}

func TestParseConstant(t *testing.T) {
	t.Run("round_trips_text_forms", func(t *testing.T) {
		for _, name := range []string{"thin", "bold", "roman", "hintslight", "lcddefault", "mono", "vbgr"} {
			c, err := types.ParseConstant(name)
			require.NoError(t, err)
			assert.Equal(t, name, c.String())
		}
	})

	t.Run("families", func(t *testing.T) {
		assert.NotZero(t, types.ConstBold.Family()&types.FamilyWeight)
		assert.NotZero(t, types.ConstRoman.Family()&types.FamilySlant)
		assert.NotZero(t, types.ConstNormal.Family()&types.FamilyWeight)
		assert.NotZero(t, types.ConstNormal.Family()&types.FamilyWidth)
		assert.Zero(t, types.ConstBold.Family()&types.FamilySlant)
	})

	t.Run("unknown_constant", func(t *testing.T) {
		_, err := types.ParseConstant("extrablack")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownVariant))
	})
}

func TestEnumCoercion(t *testing.T) {
	t.Run("qual", func(t *testing.T) {
		q, err := types.ParseTestQual("not_first")
		require.NoError(t, err)
		assert.Equal(t, types.QualNotFirst, q)
		assert.Equal(t, "not_first", q.String())
	})

	t.Run("compare", func(t *testing.T) {
		c, err := types.ParseTestCompare("not_contains")
		require.NoError(t, err)
		assert.Equal(t, types.CompareNotContains, c)
	})

	t.Run("mode", func(t *testing.T) {
		m, err := types.ParseEditMode("prepend_first")
		require.NoError(t, err)
		assert.Equal(t, types.ModePrependFirst, m)
	})

	t.Run("binding", func(t *testing.T) {
		b, err := types.ParseEditBinding("strong")
		require.NoError(t, err)
		assert.Equal(t, types.BindingStrong, b)
	})

	t.Run("prefix", func(t *testing.T) {
		p, err := types.ParseDirPrefix("xdg")
		require.NoError(t, err)
		assert.Equal(t, types.PrefixXdg, p)
	})

	t.Run("unknown_variant_names_raw_text", func(t *testing.T) {
		_, err := types.ParseEditMode("replace")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownVariant))
		assert.Equal(t, "replace", errors.GetErrorDetails(err)["raw"])
	})
}
