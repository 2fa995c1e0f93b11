package domain

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/raygun/internal/model"
)

func testRegistry() *Registry {
	return NewRegistry(
		binaryOpSpec("arith_add_sub", token.ADD, token.SUB),
		binaryOpSpec("arith_sub_add", token.SUB, token.ADD),
		binaryOpSpec("cmp_lt_le", token.LSS, token.LEQ),
	)
}

func TestRegistry_RegisterTwicePanics(t *testing.T) {
	r := testRegistry()

	assert.Panics(t, func() {
		r.Register(binaryOpSpec("cmp_lt_le", token.LSS, token.GTR))
	})
}

func TestRegistry_Specs(t *testing.T) {
	specs := testRegistry().Specs()

	require.Len(t, specs, 3)
	assert.Equal(t, m.OperatorKind("arith_add_sub"), specs[0].Kind)
	assert.Equal(t, m.OperatorKind("cmp_lt_le"), specs[2].Kind)
}

func TestRegistry_Resolve(t *testing.T) {
	r := testRegistry()

	t.Run("empty selects all", func(t *testing.T) {
		specs, err := r.Resolve()
		require.NoError(t, err)
		assert.Len(t, specs, 3)
	})

	t.Run("exact and family without duplicates", func(t *testing.T) {
		specs, err := r.Resolve("cmp_lt_le", "arith", "arith_add_sub")
		require.NoError(t, err)
		require.Len(t, specs, 3)
		assert.Equal(t, m.OperatorKind("cmp_lt_le"), specs[0].Kind)
		assert.Equal(t, m.OperatorKind("arith_add_sub"), specs[1].Kind)
		assert.Equal(t, m.OperatorKind("arith_sub_add"), specs[2].Kind)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := r.Resolve("arit")
		require.ErrorIs(t, err, ErrUnknownOperator)
		assert.Contains(t, err.Error(), "arit")
	})
}
