// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine"
	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/pkg/idgen"
)

const d20 = 20

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller  dice.Roller
	idGenerator idgen.Generator
}

// AdapterConfig contains configuration for creating a new Adapter.
// IDGenerator defaults to prefixed UUIDs.
type AdapterConfig struct {
	DiceRoller  dice.Roller
	IDGenerator idgen.Generator
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = idgen.NewUUID("roll")
	}

	return &Adapter{
		diceRoller:  cfg.DiceRoller,
		idGenerator: ids,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// RollHitPoints rolls the creature's hit dice. The total is never below the
// number of hit dice.
func (a *Adapter) RollHitPoints(
	ctx context.Context,
	input *engine.RollHitPointsInput,
) (*engine.RollHitPointsOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	creature := wrapCreature(input.Creature)
	hitDice := creature.HitDiceExpression()

	rolls, sum, err := a.roll(hitDice)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll hit points for %s", creature.Label())
	}

	bonus := creature.HitPointBonus()
	total := max(sum+bonus, creature.HitDice)

	rollID := a.idGenerator.Generate()
	slog.DebugContext(ctx, "rolled hit points",
		"roll_id", rollID,
		"entity_id", creature.GetID(),
		"entity_type", creature.GetType(),
		"dice", hitDice.String(),
		"bonus", bonus,
		"total", total)

	return &engine.RollHitPointsOutput{
		RollID:  rollID,
		Dice:    hitDice,
		Rolls:   rolls,
		Bonus:   bonus,
		Total:   total,
		Average: creature.HitPoints(),
	}, nil
}

// RollAttack rolls a d20 and damage for every iteration of the named attack.
// Damage from an attack with dice is at least 1.
func (a *Adapter) RollAttack(
	ctx context.Context,
	input *engine.RollAttackInput,
) (*engine.RollAttackOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	creature := wrapCreature(input.Creature)
	line, ok := findLine(creature.Creature, input.Attack, input.Ranged)
	if !ok {
		return nil, errors.NotFoundf("attack %q not found", input.Attack).
			WithMeta("creature", creature.Label())
	}

	output := &engine.RollAttackOutput{
		RollID: a.idGenerator.Generate(),
		Line:   line,
		Rolls:  make([]engine.AttackRoll, 0, line.Count),
	}
	for range line.Count {
		natural, err := a.diceRoller.Roll(d20)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll attack %s", line.Name)
		}

		roll := engine.AttackRoll{
			Natural:     natural,
			AttackTotal: natural + line.Bonus,
		}
		if !line.Dice.IsZero() {
			damage, sum, err := a.roll(line.Dice)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to roll damage for %s", line.Name)
			}
			roll.DamageRolls = damage
			roll.Damage = max(sum+line.DamageBonus, 1)
		}
		output.Rolls = append(output.Rolls, roll)
	}

	slog.DebugContext(ctx, "rolled attack",
		"roll_id", output.RollID,
		"entity_id", creature.GetID(),
		"attack", line.Name,
		"iterations", len(output.Rolls))

	return output, nil
}

func (a *Adapter) roll(d scaling.Dice) ([]int, int, error) {
	if d.IsZero() {
		return nil, 0, nil
	}
	rolls, err := a.diceRoller.RollN(d.Count, d.Die)
	if err != nil {
		return nil, 0, err
	}
	sum := 0
	for _, r := range rolls {
		sum += r
	}
	return rolls, sum, nil
}

func findLine(c *monster.Creature, name string, ranged bool) (monster.AttackLine, bool) {
	lines := c.MeleeAttackLines()
	if ranged {
		lines = c.RangedAttackLines()
	}
	for _, line := range lines {
		if line.Name == name {
			return line, true
		}
	}
	return monster.AttackLine{}, false
}
