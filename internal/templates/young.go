package templates

import (
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
)

// Young shrinks a creature one size category
type Young struct{}

// Kind implements Template
func (Young) Kind() Kind { return KindYoung }

// Name implements Template
func (Young) Name() string { return "Young" }

// DiagnosticMessage implements Template
func (Young) DiagnosticMessage() string {
	return "The Young template cannot be applied to Fine creatures, creatures of CR 1/8, true dragons or barghests."
}

// IsCompatible rejects Fine creatures, CR 1/8, true dragons and barghests
func (Young) IsCompatible(c *monster.Creature) bool {
	switch {
	case c.Size == size.Fine:
		return false
	case c.ChallengeRating == monster.CROneEighth:
		return false
	case isTrueDragon(c):
		return false
	case strings.Contains(c.Name, "Barghest"):
		return false
	}
	return true
}

// isTrueDragon approximates the true dragon family: dragon type and a name
// ending in the word "Dragon". Drakes and wyverns pass; so does any dragon
// named otherwise.
func isTrueDragon(c *monster.Creature) bool {
	if c.Type != monster.TypeDragon {
		return false
	}
	words := strings.Fields(c.Name)
	return len(words) > 0 && words[len(words)-1] == "Dragon"
}

// Apply lowers CR one rung, takes 4 from Strength and the life-force
// ability (minimum 1), adds 4 to Dexterity, takes 2 natural armor (minimum
// 0) and shrinks the creature one size.
func (t Young) Apply(c *monster.Creature) (*monster.Creature, error) {
	if !t.IsCompatible(c) {
		return nil, incompatible(t, c, nil)
	}
	cr, ok := c.ChallengeRating.Step(-1)
	if !ok {
		return nil, incompatible(t, c, nil)
	}

	out := c.Clone()
	out.ChallengeRating = cr
	out.Abilities.Str = out.Abilities.Str.AddFloored(-4, 1)
	lifeForce := out.LifeForce()
	out.Abilities.Set(lifeForce, out.Abilities.Get(lifeForce).AddFloored(-4, 1))
	out.Abilities.Dex = out.Abilities.Dex.Add(4)
	out.NaturalArmor = max(out.NaturalArmor-2, 0)

	if err := resize(out, -1); err != nil {
		return nil, incompatible(t, c, err)
	}
	return out, nil
}
