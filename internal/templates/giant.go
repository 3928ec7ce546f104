package templates

import (
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
)

// Giant grows a creature one size category
type Giant struct{}

// Kind implements Template
func (Giant) Kind() Kind { return KindGiant }

// Name implements Template
func (Giant) Name() string { return "Giant" }

// DiagnosticMessage implements Template
func (Giant) DiagnosticMessage() string {
	return "The Giant template cannot be applied to Colossal creatures."
}

// IsCompatible rejects creatures that are already Colossal or at the top
// challenge rating
func (Giant) IsCompatible(c *monster.Creature) bool {
	_, ok := c.ChallengeRating.Step(1)
	return ok && c.Size != size.Colossal
}

// Apply raises CR one rung, adds 4 to Strength and the life-force ability,
// takes 2 from Dexterity (minimum 1) and grows the creature one size.
func (t Giant) Apply(c *monster.Creature) (*monster.Creature, error) {
	if !t.IsCompatible(c) {
		return nil, incompatible(t, c, nil)
	}
	cr, _ := c.ChallengeRating.Step(1)

	out := c.Clone()
	out.ChallengeRating = cr
	out.Abilities.Str = out.Abilities.Str.Add(4)
	lifeForce := out.LifeForce()
	out.Abilities.Set(lifeForce, out.Abilities.Get(lifeForce).Add(4))
	out.Abilities.Dex = out.Abilities.Dex.AddFloored(-2, 1)

	if err := resize(out, 1); err != nil {
		return nil, incompatible(t, c, err)
	}
	return out, nil
}
