// Package scaling implements the size-driven adjustments to damage dice,
// space and natural reach.
package scaling

import (
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// rungs is how far one size change moves along the progression
func rungs(d Dice, sz size.Category, up bool) int {
	if d.Count == 1 && d.Die <= 6 {
		return 1
	}
	if up && sz <= size.Small {
		return 1
	}
	if !up && sz <= size.Medium {
		return 1
	}
	return 2
}

// StepUp returns the damage of d after one increase in size. sz is the
// size before the change.
func StepUp(sz size.Category, d Dice) (Dice, error) {
	if err := d.Validate(); err != nil {
		return Dice{}, err
	}
	if d.IsZero() {
		return progression[0], nil
	}
	if d.Die == 10 && d.Count >= 2 {
		return Dice{Count: d.Count * 2, Die: 10}, nil
	}

	idx := normalize(d) + rungs(d, sz, true)
	if idx >= len(progression) {
		return Dice{}, errors.OutOfRangef("no damage dice larger than %s", d).
			WithMeta("dice", d.String())
	}
	return progression[idx], nil
}

// StepDown returns the damage of d after one decrease in size. sz is the
// size before the change. Stepping below the bottom rung yields NoDamage.
func StepDown(sz size.Category, d Dice) (Dice, error) {
	if err := d.Validate(); err != nil {
		return Dice{}, err
	}
	if d.IsZero() {
		return NoDamage, nil
	}
	if d.Die == 10 && d.Count >= 2 && d.Count%2 == 0 {
		return Dice{Count: d.Count / 2, Die: 10}, nil
	}

	idx := normalize(d) - rungs(d, sz, false)
	if idx < 0 {
		return NoDamage, nil
	}
	return progression[idx], nil
}

// Space returns the typical space of the size offset rungs away from sz
func Space(sz size.Category, offset int) (float64, error) {
	target, ok := sz.Shift(offset)
	if !ok {
		return 0, errors.OutOfRangef("size %s shifted by %d leaves the size scale", sz, offset).
			WithMeta("size", sz.String()).
			WithMeta("offset", offset)
	}
	return target.Space(), nil
}

// Reach recomputes a natural reach for a size change. Reaches that match
// the old typical value follow the new typical value; non-standard reaches
// scale proportionally.
func Reach(oldSize, newSize size.Category, oldReach int, shape size.Shape) int {
	oldTypical := oldSize.Reach(shape)
	newTypical := newSize.Reach(shape)

	switch {
	case oldReach == oldTypical:
		return newTypical
	case oldTypical == newTypical:
		return oldReach
	case oldTypical == 0 || newTypical == 0:
		// crossing the Tiny/Small boundary
		step := size.Small.Reach(shape)
		if newTypical > oldTypical {
			return oldReach + step
		}
		return max(oldReach-step, 0)
	default:
		scaled := oldReach * newTypical / oldTypical
		return scaled / 5 * 5
	}
}
