package templates

import (
	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

type stepFunc func(size.Category, scaling.Dice) (scaling.Dice, error)

// resize moves c one size category and rescales space, reach and melee
// damage. c must be a clone owned by the caller. Nothing is changed when an
// error is returned.
func resize(c *monster.Creature, steps int) error {
	newSize, ok := c.Size.Shift(steps)
	if !ok {
		return errors.OutOfRangef("%s cannot change size by %d", c.Size, steps).
			WithMeta("size", c.Size.String())
	}

	space, err := scaling.Space(newSize, c.SpaceOffset)
	if err != nil {
		return err
	}

	step := stepFunc(scaling.StepUp)
	if steps < 0 {
		step = scaling.StepDown
	}

	attacks := make(map[string]monster.Attack, len(c.MeleeAttacks))
	for name, attack := range c.MeleeAttacks {
		dice, err := step(c.Size, attack.Dice)
		if err != nil {
			return errors.Wrapf(err, "cannot rescale %s", name)
		}
		attack.Dice = dice
		attacks[name] = attack
	}

	c.Reach = scaling.Reach(c.Size, newSize, c.Reach, c.ReachShape)
	c.Space = space
	c.Size = newSize
	c.MeleeAttacks = attacks
	return nil
}
