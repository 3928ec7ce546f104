package templates

import (
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
)

// Advanced makes a creature tougher without changing its size
type Advanced struct{}

// Kind implements Template
func (Advanced) Kind() Kind { return KindAdvanced }

// Name implements Template
func (Advanced) Name() string { return "Advanced" }

// DiagnosticMessage implements Template
func (Advanced) DiagnosticMessage() string {
	return "The Advanced template cannot raise a creature above challenge rating 30."
}

// IsCompatible rejects creatures already at the top challenge rating
func (Advanced) IsCompatible(c *monster.Creature) bool {
	_, ok := c.ChallengeRating.Step(1)
	return ok
}

// Apply raises CR one rung, adds 2 natural armor and 4 to every present
// ability score. Intelligence only increases when it is above 2.
func (t Advanced) Apply(c *monster.Creature) (*monster.Creature, error) {
	if !t.IsCompatible(c) {
		return nil, incompatible(t, c, nil)
	}
	cr, _ := c.ChallengeRating.Step(1)

	out := c.Clone()
	out.ChallengeRating = cr
	out.NaturalArmor += 2
	for _, ab := range monster.AllAbilities() {
		score := out.Abilities.Get(ab)
		if ab == monster.Intelligence {
			if v, present := score.Value(); !present || v <= 2 {
				continue
			}
		}
		out.Abilities.Set(ab, score.Add(4))
	}
	return out, nil
}
