// Package parse contains the core domain model for parsed recipe text.
// Every type here is an immutable value object: the engine produces them
// once per invocation and holds no reference after returning.
package parse

// Quantity represents a measured amount: a single value, a numeric range
// ("2-3"), or an unresolvable estimate phrase ("a pinch"). A Quantity with
// neither Min nor Text set is considered absent; downstream consumers treat
// an absent quantity as 1.
type Quantity struct {
	Min  float64 `json:"min,omitempty"`
	Max  float64 `json:"max,omitempty"`
	Text string  `json:"text,omitempty"`
}

// IsZero reports whether the quantity carries no information.
func (q Quantity) IsZero() bool {
	return q.Min == 0 && q.Max == 0 && q.Text == ""
}

// IsRange reports whether the quantity is a numeric range.
func (q Quantity) IsRange() bool {
	return q.Max > q.Min
}

// ContainerKind represents the packaging a container clause refers to.
type ContainerKind string

const (
	ContainerKindCan     ContainerKind = "can"
	ContainerKindJar     ContainerKind = "jar"
	ContainerKindPackage ContainerKind = "package"
	ContainerKindBottle  ContainerKind = "bottle"
)

// ContainerSize is the measured size of one container ("14.5 oz").
type ContainerSize struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Container captures packaging metadata distinct from the ingredient's own
// measured quantity, e.g. "2 cans (14 oz each)".
type Container struct {
	Count int            `json:"count,omitempty"`
	Size  *ContainerSize `json:"size,omitempty"`
	Kind  ContainerKind  `json:"kind,omitempty"`
}

// Category is the coarse shopping category of an ingredient.
type Category string

const (
	CategoryProduce  Category = "produce"
	CategoryMeat     Category = "meat"
	CategorySeafood  Category = "seafood"
	CategoryDairy    Category = "dairy"
	CategoryPantry   Category = "pantry"
	CategoryBakery   Category = "bakery"
	CategoryFrozen   Category = "frozen"
	CategoryBeverage Category = "beverage"
)

// Ingredient is one structured ingredient occurrence. Raw always preserves
// the source line verbatim (whitespace-trimmed); every derived field is
// re-derivable from Raw plus the static lexicons.
type Ingredient struct {
	Raw          string    `json:"raw"`
	Section      string    `json:"section,omitempty"`
	Quantity     *Quantity `json:"quantity,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	Item         string    `json:"item"`
	Container    *Container `json:"container,omitempty"`
	Forms        []string  `json:"forms,omitempty"`
	Notes        []string  `json:"notes,omitempty"`
	Alternatives []string  `json:"alternatives,omitempty"`
	ToTaste      bool      `json:"toTaste,omitempty"`
	Estimated    bool      `json:"estimated,omitempty"`
	Brand        string    `json:"brand,omitempty"`
	Qualifiers   []string  `json:"qualifiers,omitempty"`
	Category     Category  `json:"category,omitempty"`
}

// TemperatureUnit represents temperature units.
type TemperatureUnit string

const (
	TemperatureUnitCelsius    TemperatureUnit = "C"
	TemperatureUnitFahrenheit TemperatureUnit = "F"
)

// Temperature represents a cooking temperature detected in a step.
type Temperature struct {
	Value float64         `json:"value"`
	Unit  TemperatureUnit `json:"unit"`
}

// ToCelsius converts the temperature to Celsius.
func (t Temperature) ToCelsius() float64 {
	if t.Unit == TemperatureUnitFahrenheit {
		return (t.Value - 32) * 5 / 9
	}
	return t.Value
}

// TimeUnit represents duration units recognized in step text.
type TimeUnit string

const (
	TimeUnitSecond TimeUnit = "s"
	TimeUnitMinute TimeUnit = "min"
	TimeUnitHour   TimeUnit = "h"
)

// Duration is a cooking duration, possibly ranged ("20-25 minutes").
type Duration struct {
	Min  float64  `json:"min"`
	Max  float64  `json:"max,omitempty"`
	Unit TimeUnit `json:"unit"`
}

// Minutes returns the lower bound of the duration expressed in minutes.
func (d Duration) Minutes() float64 {
	switch d.Unit {
	case TimeUnitSecond:
		return d.Min / 60
	case TimeUnitHour:
		return d.Min * 60
	default:
		return d.Min
	}
}

// Step is one annotated instruction step. Raw preserves the source text
// verbatim (whitespace-trimmed); Number is 1-based and sequential across
// the whole recipe regardless of section.
type Step struct {
	Raw          string        `json:"raw"`
	Number       int           `json:"number"`
	Section      string        `json:"section,omitempty"`
	Actions      []string      `json:"actions,omitempty"`
	Ingredients  []string      `json:"ingredients,omitempty"`
	Tools        []string      `json:"tools,omitempty"`
	Temperatures []Temperature `json:"temperatures,omitempty"`
	Times        []Duration    `json:"times,omitempty"`
	Speeds       []string      `json:"speeds,omitempty"`
	Doneness     []string      `json:"doneness,omitempty"`
	Concurrent   bool          `json:"concurrent,omitempty"`
	Yields       []string      `json:"yields,omitempty"`
	Notes        []string      `json:"notes,omitempty"`
}

// Recipe is the aggregate parse result and the engine's sole externally
// visible output type. Sections are listed in first-seen order; Ingredients
// follow section order, then line order, then sub-record order for expanded
// lines; Steps are numbered sequentially starting at 1.
type Recipe struct {
	Title       string       `json:"title,omitempty"`
	Sections    []string     `json:"sections,omitempty"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []Step       `json:"steps"`
}
