package scaling

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// Dice is a damage expression of Count dice with Die faces
type Dice struct {
	Count int `json:"count" yaml:"count"`
	Die   int `json:"die" yaml:"die"`
}

// NoDamage sits one rung below the bottom of the progression
var NoDamage = Dice{Count: 0, Die: 1}

// progression is the damage-dice ladder, ordered by average damage
var progression = []Dice{
	{1, 1}, {1, 2}, {1, 3}, {1, 4}, {1, 6}, {1, 8}, {1, 10},
	{2, 6}, {2, 8}, {3, 6}, {3, 8}, {4, 6}, {4, 8}, {6, 6}, {6, 8},
	{8, 6}, {8, 8}, {12, 6}, {12, 8}, {16, 6}, {16, 8},
	{24, 6}, {24, 8}, {32, 6}, {32, 8},
}

// ParseDice reads expressions such as "2d6", "d8" or "1"
func ParseDice(s string) (Dice, error) {
	expr := strings.ToLower(strings.TrimSpace(s))
	if expr == "" {
		return Dice{}, errors.InvalidArgument("dice expression is required")
	}

	countPart, diePart, found := strings.Cut(expr, "d")
	if !found {
		n, err := strconv.Atoi(expr)
		if err != nil || n < 0 {
			return Dice{}, errors.InvalidArgumentf("invalid dice expression %q", s)
		}
		if n == 0 {
			return NoDamage, nil
		}
		return Dice{Count: n, Die: 1}, nil
	}

	count := 1
	if countPart != "" {
		n, err := strconv.Atoi(countPart)
		if err != nil || n < 0 {
			return Dice{}, errors.InvalidArgumentf("invalid dice count in %q", s)
		}
		count = n
	}

	die, err := strconv.Atoi(diePart)
	if err != nil || die < 1 {
		return Dice{}, errors.InvalidArgumentf("invalid die size in %q", s)
	}

	return Dice{Count: count, Die: die}, nil
}

func (d Dice) String() string {
	if d.Count == 0 {
		return "0"
	}
	return fmt.Sprintf("%dd%d", d.Count, d.Die)
}

// Average is the mean roll of the expression
func (d Dice) Average() float64 {
	return float64(d.Count) * float64(d.Die+1) / 2
}

// IsZero reports whether the expression deals no damage
func (d Dice) IsZero() bool {
	return d.Count == 0
}

// Validate checks the expression has a positive die and non-negative count
func (d Dice) Validate() error {
	if d.Count < 0 {
		return errors.InvalidArgumentf("dice count must not be negative: %d", d.Count)
	}
	if d.Die < 1 {
		return errors.InvalidArgumentf("die size must be at least 1: %d", d.Die)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Dice) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Dice) UnmarshalText(text []byte) error {
	parsed, err := ParseDice(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func indexOf(d Dice) int {
	for i, entry := range progression {
		if entry == d {
			return i
		}
	}
	return -1
}

// nearest finds the progression entry whose average is closest to avg.
// die restricts candidates to one die size; zero allows any. Ties go to the
// smaller entry.
func nearest(avg float64, die int) int {
	best := -1
	bestDistance := math.Inf(1)
	for i, entry := range progression {
		if die != 0 && entry.Die != die {
			continue
		}
		distance := math.Abs(entry.Average() - avg)
		if distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	return best
}

// normalize maps any expression onto a rung of the progression
func normalize(d Dice) int {
	if i := indexOf(d); i >= 0 {
		return i
	}

	switch d.Die {
	case 4:
		if d.Count%2 == 0 {
			return normalize(Dice{Count: d.Count / 2, Die: 8})
		}
		count := int(math.Round(float64(2*d.Count) / 3))
		if count < 1 {
			count = 1
		}
		return normalize(Dice{Count: count, Die: 6})
	case 6:
		return nearest(d.Average(), 8)
	case 8:
		return nearest(d.Average(), 6)
	case 12:
		return normalize(Dice{Count: 2 * d.Count, Die: 6})
	default:
		return nearest(d.Average(), 0)
	}
}
