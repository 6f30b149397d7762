package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("TwoHeaders_OneLineEach", func(t *testing.T) {
		blocks := Split([]string{
			"For the sauce:",
			"1 cup broth",
			"For the rub:",
			"2 tbsp paprika",
		})

		require.Len(t, blocks, 2)
		assert.Equal(t, "sauce", blocks[0].Name)
		assert.Equal(t, []string{"1 cup broth"}, blocks[0].Lines)
		assert.Equal(t, "rub", blocks[1].Name)
		assert.Equal(t, []string{"2 tbsp paprika"}, blocks[1].Lines)
	})

	t.Run("NoHeaders_SingleUnnamedBlock", func(t *testing.T) {
		blocks := Split([]string{"2 cups flour", "3 eggs"})

		require.Len(t, blocks, 1)
		assert.Empty(t, blocks[0].Name)
		assert.Equal(t, []string{"2 cups flour", "3 eggs"}, blocks[0].Lines)
	})

	t.Run("LinesBeforeFirstHeader_StayUnnamed", func(t *testing.T) {
		blocks := Split([]string{
			"1 lemon",
			"For the dressing:",
			"2 tbsp olive oil",
		})

		require.Len(t, blocks, 2)
		assert.Empty(t, blocks[0].Name)
		assert.Equal(t, []string{"1 lemon"}, blocks[0].Lines)
		assert.Equal(t, "dressing", blocks[1].Name)
	})

	t.Run("HeaderWithoutColon_StillOpensSection", func(t *testing.T) {
		blocks := Split([]string{"For the glaze", "1 tbsp honey"})

		require.Len(t, blocks, 1)
		assert.Equal(t, "glaze", blocks[0].Name)
	})

	t.Run("BlankLines_AreDropped", func(t *testing.T) {
		blocks := Split([]string{"", "2 cups flour", "   ", "3 eggs", ""})

		require.Len(t, blocks, 1)
		assert.Len(t, blocks[0].Lines, 2)
	})

	t.Run("TrailingEmptyHeader_IsDropped", func(t *testing.T) {
		blocks := Split([]string{"2 cups flour", "For the topping:"})

		require.Len(t, blocks, 1)
		assert.Empty(t, blocks[0].Name)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, Split(nil))
	})
}
