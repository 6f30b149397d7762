package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/grocerly/recipetext/internal/domain/parse"
)

type StepParserTestSuite struct {
	suite.Suite
}

func (suite *StepParserTestSuite) TestSegmentation() {
	suite.Run("MultiLineList_OneStepPerLine", func() {
		steps := Parse([]string{
			"Preheat oven to 375°F and bake for 20 minutes, until golden",
			"Remove from oven",
			"Let rest for 5 minutes",
		}, "", nil)

		require.Len(suite.T(), steps, 3)
		assert.Equal(suite.T(), 1, steps[0].Number)
		assert.Equal(suite.T(), 2, steps[1].Number)
		assert.Equal(suite.T(), 3, steps[2].Number)
	})

	suite.Run("OrdinalMarkers_Stripped", func() {
		steps := Parse([]string{
			"1. Preheat the oven.",
			"2) Mix the batter.",
			"Step 3: Bake until done.",
		}, "", nil)

		require.Len(suite.T(), steps, 3)
		assert.Equal(suite.T(), "Preheat the oven.", steps[0].Raw)
		assert.Equal(suite.T(), "Mix the batter.", steps[1].Raw)
		assert.Equal(suite.T(), "Bake until done.", steps[2].Raw)
	})

	suite.Run("ProseBlock_SplitAtSentences", func() {
		steps := Parse([]string{
			"Heat the oil in a skillet. Add the onions and cook until soft; season with salt.",
		}, "", nil)

		require.Len(suite.T(), steps, 3)
		assert.Equal(suite.T(), "Heat the oil in a skillet.", steps[0].Raw)
		assert.Equal(suite.T(), "Add the onions and cook until soft", steps[1].Raw)
		assert.Equal(suite.T(), "season with salt.", steps[2].Raw)
	})

	suite.Run("PeriodBeforeLowercase_NotABoundary", func() {
		sentences := Segment("Heat to 350 deg. then bake.")
		assert.Len(suite.T(), sentences, 1)
	})
}

func (suite *StepParserTestSuite) TestAnnotation() {
	suite.Run("TemperatureTimeAndDoneness", func() {
		steps := Parse([]string{
			"Preheat oven to 375°F and bake for 20 minutes, until golden",
		}, "", nil)

		require.Len(suite.T(), steps, 1)
		step := steps[0]

		require.Len(suite.T(), step.Temperatures, 1)
		assert.Equal(suite.T(), 375.0, step.Temperatures[0].Value)
		assert.Equal(suite.T(), parse.TemperatureUnitFahrenheit, step.Temperatures[0].Unit)

		require.Len(suite.T(), step.Times, 1)
		assert.Equal(suite.T(), 20.0, step.Times[0].Min)
		assert.Equal(suite.T(), parse.TimeUnitMinute, step.Times[0].Unit)

		assert.Contains(suite.T(), step.Doneness, "until golden")
		assert.Contains(suite.T(), step.Actions, "bake")
		assert.Contains(suite.T(), step.Tools, "oven")
	})

	suite.Run("DualTemperature", func() {
		steps := Parse([]string{"Bake at 375°F (190°C) for one hour"}, "", nil)

		require.Len(suite.T(), steps, 1)
		require.Len(suite.T(), steps[0].Temperatures, 2)
		assert.Equal(suite.T(), 375.0, steps[0].Temperatures[0].Value)
		assert.Equal(suite.T(), parse.TemperatureUnitFahrenheit, steps[0].Temperatures[0].Unit)
		assert.Equal(suite.T(), 190.0, steps[0].Temperatures[1].Value)
		assert.Equal(suite.T(), parse.TemperatureUnitCelsius, steps[0].Temperatures[1].Unit)
	})

	suite.Run("DurationRange", func() {
		steps := Parse([]string{"Simmer for 10-15 minutes"}, "", nil)

		require.Len(suite.T(), steps, 1)
		require.Len(suite.T(), steps[0].Times, 1)
		assert.Equal(suite.T(), 10.0, steps[0].Times[0].Min)
		assert.Equal(suite.T(), 15.0, steps[0].Times[0].Max)
	})

	suite.Run("AboutDuration", func() {
		steps := Parse([]string{"Cook for about 30 seconds"}, "", nil)

		require.Len(suite.T(), steps, 1)
		require.Len(suite.T(), steps[0].Times, 1)
		assert.Equal(suite.T(), 30.0, steps[0].Times[0].Min)
		assert.Equal(suite.T(), parse.TimeUnitSecond, steps[0].Times[0].Unit)
	})

	suite.Run("ToABoil_IsDoneness", func() {
		steps := Parse([]string{"Bring the broth to a boil over medium-high heat"}, "", nil)

		require.Len(suite.T(), steps, 1)
		assert.Contains(suite.T(), steps[0].Doneness, "to a boil")
		assert.Equal(suite.T(), []string{"medium-high"}, steps[0].Speeds)
	})

	suite.Run("ToTemperature_NotDoneness", func() {
		steps := Parse([]string{"Preheat oven to 375°F"}, "", nil)

		require.Len(suite.T(), steps, 1)
		assert.Empty(suite.T(), steps[0].Doneness)
	})

	suite.Run("CompoundTool_SuppressesParts", func() {
		steps := Parse([]string{"Sear in a cast iron skillet"}, "", nil)

		require.Len(suite.T(), steps, 1)
		assert.Equal(suite.T(), []string{"cast iron skillet"}, steps[0].Tools)
	})

	suite.Run("ConcurrencyMarker", func() {
		steps := Parse([]string{
			"Meanwhile, whisk the dressing in a bowl",
			"Toss the salad",
		}, "", nil)

		require.Len(suite.T(), steps, 2)
		assert.True(suite.T(), steps[0].Concurrent)
		assert.False(suite.T(), steps[1].Concurrent)
	})

	suite.Run("Yields", func() {
		steps := Parse([]string{"Knead until the mixture forms a smooth dough"}, "", nil)

		require.Len(suite.T(), steps, 1)
		assert.Contains(suite.T(), steps[0].Yields, "forms a smooth dough")
	})
}

func (suite *StepParserTestSuite) TestIngredientReferences() {
	known := []parse.Ingredient{
		{Item: "green onion"},
		{Item: "soy sauce"},
		{Item: "chicken breast"},
	}

	suite.Run("CanonicalName", func() {
		steps := Parse([]string{"Add the soy sauce and stir"}, "", known)

		require.Len(suite.T(), steps, 1)
		assert.Equal(suite.T(), []string{"soy sauce"}, steps[0].Ingredients)
	})

	suite.Run("SynonymSpelling", func() {
		steps := Parse([]string{"Garnish with scallions"}, "", known)

		require.Len(suite.T(), steps, 1)
		assert.Equal(suite.T(), []string{"green onion"}, steps[0].Ingredients)
	})

	suite.Run("PluralForm", func() {
		steps := Parse([]string{"Slice the chicken breasts thinly"}, "", known)

		require.Len(suite.T(), steps, 1)
		assert.Equal(suite.T(), []string{"chicken breast"}, steps[0].Ingredients)
	})

	suite.Run("NoFalseSubstringMatch", func() {
		steps := Parse([]string{"Grease the pan"}, "", []parse.Ingredient{{Item: "pea"}})

		require.Len(suite.T(), steps, 1)
		assert.Empty(suite.T(), steps[0].Ingredients)
	})
}

func TestStepParserTestSuite(t *testing.T) {
	suite.Run(t, new(StepParserTestSuite))
}

func BenchmarkParse(b *testing.B) {
	lines := []string{
		"Preheat oven to 375°F (190°C)",
		"Meanwhile, whisk the eggs in a mixing bowl",
		"Bake for 20-25 minutes, until golden",
	}
	for i := 0; i < b.N; i++ {
		Parse(lines, "", nil)
	}
}
