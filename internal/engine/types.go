package engine

import (
	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// RollHitPointsInput names the creature whose hit points are rolled
type RollHitPointsInput struct {
	Creature *monster.Creature
}

// Validate checks the input
func (in *RollHitPointsInput) Validate() error {
	if in == nil {
		return errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if in.Creature == nil {
		vb.RequiredField("creature")
	}
	return vb.Build()
}

// RollHitPointsOutput is one rolled hit point total
type RollHitPointsOutput struct {
	RollID  string       `json:"roll_id"`
	Dice    scaling.Dice `json:"dice"`
	Rolls   []int        `json:"rolls"`
	Bonus   int          `json:"bonus"`
	Total   int          `json:"total"`
	Average int          `json:"average"`
}

// RollAttackInput names one attack of a creature
type RollAttackInput struct {
	Creature *monster.Creature
	Attack   string
	Ranged   bool
}

// Validate checks the input
func (in *RollAttackInput) Validate() error {
	if in == nil {
		return errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if in.Creature == nil {
		vb.RequiredField("creature")
	}
	if in.Attack == "" {
		vb.RequiredField("attack")
	}
	return vb.Build()
}

// AttackRoll is one iteration of an attack
type AttackRoll struct {
	Natural     int   `json:"natural"`
	AttackTotal int   `json:"attack_total"`
	DamageRolls []int `json:"damage_rolls,omitempty"`
	Damage      int   `json:"damage"`
}

// RollAttackOutput holds the resolved attack line and every iteration rolled
type RollAttackOutput struct {
	RollID string             `json:"roll_id"`
	Line   monster.AttackLine `json:"line"`
	Rolls  []AttackRoll       `json:"rolls"`
}
