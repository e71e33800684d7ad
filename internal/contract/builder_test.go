package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("Success: preserves declaration order", func(t *testing.T) {
		t.Parallel()

		c, err := NewBuilder().
			Declare(Bare("a"), Bare("b")).
			Declare(WithDefault("c", cty.NumberIntVal(1))).
			Build()
		require.NoError(t, err)
		require.False(t, c.Empty())

		decls := c.Declarations()
		require.Len(t, decls, 3)
		assert.Equal(t, "a", decls[0].Name)
		assert.Equal(t, "b", decls[1].Name)
		assert.Equal(t, "c", decls[2].Name)
		require.NotNil(t, decls[2].Default)
		assert.True(t, decls[2].Default.RawEquals(cty.NumberIntVal(1)))
	})

	t.Run("Success: empty builder yields empty contract", func(t *testing.T) {
		t.Parallel()

		c, err := NewBuilder().Build()
		require.NoError(t, err)
		assert.True(t, c.Empty())
		assert.Empty(t, c.Declarations())
	})

	t.Run("Success: sole sentinel declaration", func(t *testing.T) {
		t.Parallel()

		c, err := NewBuilder().Declare(NoParameters()).Build()
		require.NoError(t, err)
		assert.False(t, c.Empty())

		decls := c.Declarations()
		require.Len(t, decls, 1)
		assert.True(t, decls[0].NoParams)
	})

	t.Run("Success: frozen contract is isolated from caller mutation", func(t *testing.T) {
		t.Parallel()

		c, err := NewBuilder().Declare(Bare("a")).Build()
		require.NoError(t, err)

		decls := c.Declarations()
		decls[0].Name = "mutated"
		assert.Equal(t, "a", c.Declarations()[0].Name)
	})

	t.Run("Error: sentinel combined with other declarations", func(t *testing.T) {
		t.Parallel()

		_, err := NewBuilder().Declare(NoParameters(), Bare("a")).Build()
		var authoring *AuthoringError
		require.ErrorAs(t, err, &authoring)
		assert.Contains(t, err.Error(), "no-parameters sentinel")
	})

	t.Run("Error: nameless declaration", func(t *testing.T) {
		t.Parallel()

		_, err := NewBuilder().Declare(Declaration{}).Build()
		var authoring *AuthoringError
		require.ErrorAs(t, err, &authoring)
	})

	t.Run("Error: name declared both bare and with default", func(t *testing.T) {
		t.Parallel()

		_, err := NewBuilder().
			Declare(Bare("a"), WithDefault("a", cty.True)).
			Build()
		var authoring *AuthoringError
		require.ErrorAs(t, err, &authoring)
		assert.Contains(t, err.Error(), "'a'")
	})

	t.Run("Error: same name declared twice", func(t *testing.T) {
		t.Parallel()

		_, err := NewBuilder().Declare(Bare("a"), Bare("a")).Build()
		var authoring *AuthoringError
		require.ErrorAs(t, err, &authoring)
	})
}

func TestBuilder_MustBuild(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		NewBuilder().Declare(Bare("a")).MustBuild()
	})
	assert.Panics(t, func() {
		NewBuilder().Declare(NoParameters(), Bare("a")).MustBuild()
	})
}
