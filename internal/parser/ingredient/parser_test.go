package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/grocerly/recipetext/internal/domain/parse"
)

// ParseLineTestSuite exercises the full ingredient line pipeline.
type ParseLineTestSuite struct {
	suite.Suite
}

func (suite *ParseLineTestSuite) parseOne(line string) parse.Ingredient {
	records := ParseLine(line, "")
	require.Len(suite.T(), records, 1, "line %q should yield one record", line)
	return records[0]
}

func (suite *ParseLineTestSuite) TestQuantityAndUnit() {
	suite.Run("SimpleLine", func() {
		ing := suite.parseOne("2 cups flour, sifted")

		require.NotNil(suite.T(), ing.Quantity)
		assert.Equal(suite.T(), 2.0, ing.Quantity.Min)
		assert.Equal(suite.T(), "cup", ing.Unit)
		assert.Equal(suite.T(), "flour", ing.Item)
		assert.Equal(suite.T(), []string{"sifted"}, ing.Forms)
		assert.Equal(suite.T(), parse.CategoryPantry, ing.Category)
	})

	suite.Run("UnicodeFraction", func() {
		ing := suite.parseOne("¾ cup sugar")

		require.NotNil(suite.T(), ing.Quantity)
		assert.InDelta(suite.T(), 0.75, ing.Quantity.Min, 1e-9)
		assert.Equal(suite.T(), "cup", ing.Unit)
		assert.Equal(suite.T(), "sugar", ing.Item)
	})

	suite.Run("Range", func() {
		ing := suite.parseOne("2-3 tbsp olive oil")

		require.NotNil(suite.T(), ing.Quantity)
		assert.Equal(suite.T(), 2.0, ing.Quantity.Min)
		assert.Equal(suite.T(), 3.0, ing.Quantity.Max)
		assert.Equal(suite.T(), "tbsp", ing.Unit)
		assert.Equal(suite.T(), "olive oil", ing.Item)
	})

	suite.Run("CountableNounAsUnit", func() {
		ing := suite.parseOne("3 eggs")

		require.NotNil(suite.T(), ing.Quantity)
		assert.Equal(suite.T(), 3.0, ing.Quantity.Min)
		assert.Equal(suite.T(), "egg", ing.Unit)
		assert.Equal(suite.T(), "egg", ing.Item)
		assert.Equal(suite.T(), parse.CategoryDairy, ing.Category)
	})

	suite.Run("CloveUnit", func() {
		ing := suite.parseOne("2 cloves garlic, minced")

		assert.Equal(suite.T(), "clove", ing.Unit)
		assert.Equal(suite.T(), "garlic", ing.Item)
		assert.Equal(suite.T(), []string{"minced"}, ing.Forms)
	})

	suite.Run("NoQuantity", func() {
		ing := suite.parseOne("fresh basil")

		assert.Nil(suite.T(), ing.Quantity)
		assert.Empty(suite.T(), ing.Unit)
		assert.Equal(suite.T(), "basil", ing.Item)
		assert.Equal(suite.T(), []string{"fresh"}, ing.Qualifiers)
	})
}

func (suite *ParseLineTestSuite) TestContainers() {
	suite.Run("CanWithParentheticalSize", func() {
		ing := suite.parseOne("2 cans (14.5 oz) crushed tomatoes")

		require.NotNil(suite.T(), ing.Container)
		assert.Equal(suite.T(), 2, ing.Container.Count)
		assert.Equal(suite.T(), parse.ContainerKindCan, ing.Container.Kind)
		require.NotNil(suite.T(), ing.Container.Size)
		assert.InDelta(suite.T(), 14.5, ing.Container.Size.Value, 1e-9)
		assert.Equal(suite.T(), "oz", ing.Container.Size.Unit)

		assert.Nil(suite.T(), ing.Quantity)
		assert.Empty(suite.T(), ing.Unit)
		assert.Equal(suite.T(), "crushed tomato", ing.Item)
		assert.NotEmpty(suite.T(), ing.Category)
	})

	suite.Run("SizeBeforeContainerWord", func() {
		ing := suite.parseOne("1 (15 oz) can black beans, rinsed and drained")

		require.NotNil(suite.T(), ing.Container)
		assert.Equal(suite.T(), 1, ing.Container.Count)
		assert.Equal(suite.T(), parse.ContainerKindCan, ing.Container.Kind)
		require.NotNil(suite.T(), ing.Container.Size)
		assert.Equal(suite.T(), 15.0, ing.Container.Size.Value)
		assert.Equal(suite.T(), "black bean", ing.Item)
		assert.ElementsMatch(suite.T(), []string{"rinsed", "drained"}, ing.Forms)
	})

	suite.Run("MetricEquivalentParenthetical", func() {
		ing := suite.parseOne("1 cup milk (240 ml)")

		require.NotNil(suite.T(), ing.Quantity)
		assert.Equal(suite.T(), 1.0, ing.Quantity.Min)
		assert.Equal(suite.T(), "cup", ing.Unit)
		require.NotNil(suite.T(), ing.Container)
		require.NotNil(suite.T(), ing.Container.Size)
		assert.Equal(suite.T(), 240.0, ing.Container.Size.Value)
		assert.Equal(suite.T(), "ml", ing.Container.Size.Unit)
		assert.Equal(suite.T(), "milk", ing.Item)
	})
}

func (suite *ParseLineTestSuite) TestNotesAndFlags() {
	suite.Run("ToTaste", func() {
		ing := suite.parseOne("red pepper flakes, to taste")

		assert.True(suite.T(), ing.ToTaste)
		assert.Equal(suite.T(), "red pepper flake", ing.Item)
		assert.Empty(suite.T(), ing.Brand)
	})

	suite.Run("Divided", func() {
		ing := suite.parseOne("2 tbsp butter, melted, divided")

		assert.Contains(suite.T(), ing.Notes, "divided")
		assert.Equal(suite.T(), []string{"melted"}, ing.Forms)
		assert.Equal(suite.T(), "butter", ing.Item)
	})

	suite.Run("ParentheticalOptional", func() {
		ing := suite.parseOne("1 cup basmati rice (optional)")

		assert.Contains(suite.T(), ing.Notes, "optional")
		assert.Equal(suite.T(), "basmati rice", ing.Item)
	})

	suite.Run("PlusMoreTailKeptVerbatim", func() {
		ing := suite.parseOne("1 tbsp olive oil, plus more for drizzling")

		require.NotEmpty(suite.T(), ing.Notes)
		assert.Equal(suite.T(), "plus more for drizzling", ing.Notes[0])
		assert.Equal(suite.T(), "olive oil", ing.Item)
	})

	suite.Run("EstimatePhrase", func() {
		ing := suite.parseOne("a pinch of salt")

		require.NotNil(suite.T(), ing.Quantity)
		assert.Equal(suite.T(), "a pinch", ing.Quantity.Text)
		assert.True(suite.T(), ing.Estimated)
		assert.Equal(suite.T(), "salt", ing.Item)
	})
}

func (suite *ParseLineTestSuite) TestAlternativesAndBrand() {
	suite.Run("OrAlternative", func() {
		ing := suite.parseOne("1/2 cup soy sauce or tamari")

		require.NotNil(suite.T(), ing.Quantity)
		assert.Equal(suite.T(), 0.5, ing.Quantity.Min)
		assert.Equal(suite.T(), "cup", ing.Unit)
		assert.Equal(suite.T(), "soy sauce", ing.Item)
		assert.Equal(suite.T(), []string{"tamari"}, ing.Alternatives)
	})

	suite.Run("LeadingBrand", func() {
		ing := suite.parseOne("2 tbsp Heinz ketchup")

		assert.Equal(suite.T(), "Heinz", ing.Brand)
		assert.Equal(suite.T(), "ketchup", ing.Item)
	})

	suite.Run("CapitalizedFoodWord_NotABrand", func() {
		ing := suite.parseOne("Fresh cilantro, chopped")

		assert.Empty(suite.T(), ing.Brand)
		assert.Equal(suite.T(), "cilantro", ing.Item)
		assert.Equal(suite.T(), []string{"fresh"}, ing.Qualifiers)
	})
}

func (suite *ParseLineTestSuite) TestCompoundExpansion() {
	suite.Run("SaltAndPepper", func() {
		records := ParseLine("Salt and pepper to taste", "")

		require.Len(suite.T(), records, 2)
		assert.Equal(suite.T(), "salt", records[0].Item)
		assert.Equal(suite.T(), "black pepper", records[1].Item)
		for _, r := range records {
			assert.True(suite.T(), r.ToTaste)
			assert.Equal(suite.T(), parse.CategoryPantry, r.Category)
			assert.Equal(suite.T(), "Salt and pepper to taste", r.Raw)
		}
	})

	suite.Run("KoshersSaltVariant", func() {
		records := ParseLine("Kosher salt and ground pepper", "")
		require.Len(suite.T(), records, 2)
	})
}

func (suite *ParseLineTestSuite) TestSynonymsAndSections() {
	suite.Run("SynonymFolding", func() {
		ing := suite.parseOne("4 scallions, sliced")

		assert.Equal(suite.T(), "green onion", ing.Item)
		assert.Equal(suite.T(), parse.CategoryProduce, ing.Category)
	})

	suite.Run("SectionCarriedVerbatim", func() {
		records := ParseLine("1 cup broth", "sauce")
		require.Len(suite.T(), records, 1)
		assert.Equal(suite.T(), "sauce", records[0].Section)
	})
}

func (suite *ParseLineTestSuite) TestRawAndEdgeCases() {
	suite.Run("RawPreservedTrimmed", func() {
		ing := suite.parseOne("  - 2 cups flour  ")
		assert.Equal(suite.T(), "- 2 cups flour", ing.Raw)
		assert.Equal(suite.T(), "flour", ing.Item)
	})

	suite.Run("EmptyLine_NoRecords", func() {
		assert.Empty(suite.T(), ParseLine("   ", ""))
	})

	suite.Run("BulletOnly_NoRecords", func() {
		assert.Empty(suite.T(), ParseLine("- ", ""))
	})

	suite.Run("Deterministic", func() {
		first := ParseLine("2 cans (14.5 oz) crushed tomatoes", "")
		second := ParseLine("2 cans (14.5 oz) crushed tomatoes", "")
		assert.Equal(suite.T(), first, second)
	})
}

func TestParseLineTestSuite(t *testing.T) {
	suite.Run(t, new(ParseLineTestSuite))
}

func BenchmarkParseLine(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseLine("2 cans (14.5 oz) crushed tomatoes, drained", "")
	}
}
