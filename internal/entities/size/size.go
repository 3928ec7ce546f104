// Package size implements the Pathfinder size categories and the values that
// are fixed per category (modifiers, typical space and reach).
package size

import (
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// Category is a size rung. The zero value is Unknown so an attribute bag
// without a size can be told apart from a Fine creature.
type Category int

// Size categories, smallest first
const (
	Unknown Category = iota
	Fine
	Diminutive
	Tiny
	Small
	Medium
	Large
	Huge
	Gargantuan
	Colossal
)

// Shape selects the typical-reach column for creatures Large and above
type Shape string

// Reach shapes
const (
	ShapeTall Shape = "tall"
	ShapeLong Shape = "long"
)

type traits struct {
	name        string
	modifier    int
	special     int
	stealth     int
	fly         int
	space       float64
	tallReach   int
	longReach   int
	constructHP int
}

var table = [...]traits{
	Unknown:    {name: "Unknown"},
	Fine:       {name: "Fine", modifier: 8, special: -8, stealth: 16, fly: 8, space: 0.5},
	Diminutive: {name: "Diminutive", modifier: 4, special: -4, stealth: 12, fly: 6, space: 1},
	Tiny:       {name: "Tiny", modifier: 2, special: -2, stealth: 8, fly: 4, space: 2.5},
	Small:      {name: "Small", modifier: 1, special: -1, stealth: 4, fly: 2, space: 5, tallReach: 5, longReach: 5, constructHP: 10},
	Medium:     {name: "Medium", space: 5, tallReach: 5, longReach: 5, constructHP: 20},
	Large:      {name: "Large", modifier: -1, special: 1, stealth: -4, fly: -2, space: 10, tallReach: 10, longReach: 5, constructHP: 30},
	Huge:       {name: "Huge", modifier: -2, special: 2, stealth: -8, fly: -4, space: 15, tallReach: 15, longReach: 10, constructHP: 40},
	Gargantuan: {name: "Gargantuan", modifier: -4, special: 4, stealth: -12, fly: -6, space: 20, tallReach: 20, longReach: 15, constructHP: 60},
	Colossal:   {name: "Colossal", modifier: -8, special: 8, stealth: -16, fly: -8, space: 30, tallReach: 30, longReach: 20, constructHP: 80},
}

// All returns every valid category, smallest first
func All() []Category {
	return []Category{Fine, Diminutive, Tiny, Small, Medium, Large, Huge, Gargantuan, Colossal}
}

// Parse converts a case-insensitive size name
func Parse(s string) (Category, error) {
	name := strings.TrimSpace(s)
	for _, c := range All() {
		if strings.EqualFold(table[c].name, name) {
			return c, nil
		}
	}
	return Unknown, errors.InvalidArgumentf("unknown size %q", s)
}

// Valid reports whether c is one of Fine through Colossal
func (c Category) Valid() bool {
	return c >= Fine && c <= Colossal
}

func (c Category) String() string {
	if c < Unknown || c > Colossal {
		return table[Unknown].name
	}
	return table[c].name
}

// Shift moves n rungs along the scale. It reports false when the result
// would leave Fine..Colossal.
func (c Category) Shift(n int) (Category, bool) {
	if !c.Valid() {
		return Unknown, false
	}
	shifted := c + Category(n)
	if !shifted.Valid() {
		return Unknown, false
	}
	return shifted, true
}

func (c Category) traits() traits {
	if !c.Valid() {
		return table[Unknown]
	}
	return table[c]
}

// Modifier is the size modifier to armor class and attack rolls
func (c Category) Modifier() int { return c.traits().modifier }

// SpecialModifier is the size modifier to CMB and CMD
func (c Category) SpecialModifier() int { return c.traits().special }

// StealthModifier is the size modifier to Stealth checks
func (c Category) StealthModifier() int { return c.traits().stealth }

// FlyModifier is the size modifier to Fly checks
func (c Category) FlyModifier() int { return c.traits().fly }

// Space is the typical space in feet
func (c Category) Space() float64 { return c.traits().space }

// ConstructHitPoints is the bonus hit points a construct gets for its size
func (c Category) ConstructHitPoints() int { return c.traits().constructHP }

// Reach is the typical natural reach in feet for the given shape
func (c Category) Reach(shape Shape) int {
	if shape == ShapeLong {
		return c.traits().longReach
	}
	return c.traits().tallReach
}

// MarshalText implements encoding.TextMarshaler
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return []byte(""), nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty value leaves
// the category Unknown.
func (c *Category) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*c = Unknown
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Valid reports whether s is a known reach shape; empty means tall
func (s Shape) Valid() bool {
	return s == "" || s == ShapeTall || s == ShapeLong
}
