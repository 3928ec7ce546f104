// Package monster holds the creature entity and every statistic derived from
// its stored attributes.
//
// A Creature is built once from an attribute bag with New and treated as
// immutable afterwards. Code that needs a variant clones it first:
//
//	young := ogre.Clone()
//	young.Size = size.Medium
//
// Derived statistics (armor class, saves, attack bonuses, CMB/CMD, skills,
// hit points, XP) are computed on every call and never stored.
package monster

import (
	"maps"
	"slices"
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// Creature is a Pathfinder monster stat block reduced to its stored inputs
type Creature struct {
	Name            string           `json:"name" yaml:"name"`
	Source          string           `json:"source,omitempty" yaml:"source,omitempty"`
	ChallengeRating ChallengeRating  `json:"challenge_rating" yaml:"challenge_rating"`
	Alignment       string           `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Size            size.Category    `json:"size" yaml:"size"`
	Type            CreatureType     `json:"type" yaml:"type"`
	Subtypes        []string         `json:"subtypes,omitempty" yaml:"subtypes,omitempty"`
	HitDice         int              `json:"hit_dice" yaml:"hit_dice"`
	HitDie          int              `json:"hit_die,omitempty" yaml:"hit_die,omitempty"`
	Abilities       Abilities        `json:"abilities" yaml:"abilities"`
	Saves           Saves            `json:"saves,omitempty" yaml:"saves,omitempty"`
	NaturalArmor    int              `json:"natural_armor,omitempty" yaml:"natural_armor,omitempty"`
	ACBonuses       map[ACBonus]int  `json:"ac_bonuses,omitempty" yaml:"ac_bonuses,omitempty"`
	Speeds          map[string]Speed `json:"speeds,omitempty" yaml:"speeds,omitempty"`
	Space           float64          `json:"space,omitempty" yaml:"space,omitempty"`
	Reach           int              `json:"reach,omitempty" yaml:"reach,omitempty"`
	SpaceOffset     int              `json:"space_offset,omitempty" yaml:"space_offset,omitempty"`
	ReachShape      size.Shape       `json:"reach_shape,omitempty" yaml:"reach_shape,omitempty"`

	MeleeAttacks  map[string]Attack `json:"melee,omitempty" yaml:"melee,omitempty"`
	RangedAttacks map[string]Attack `json:"ranged,omitempty" yaml:"ranged,omitempty"`

	Feats             []Feat                      `json:"feats,omitempty" yaml:"feats,omitempty"`
	Skills            []Skill                     `json:"skills,omitempty" yaml:"skills,omitempty"`
	ManeuverModifiers map[string]ManeuverModifier `json:"maneuvers,omitempty" yaml:"maneuvers,omitempty"`

	SpecialAttacks     []string `json:"special_attacks,omitempty" yaml:"special_attacks,omitempty"`
	SpecialAbilities   []string `json:"special_abilities,omitempty" yaml:"special_abilities,omitempty"`
	DefensiveAbilities []string `json:"defensive_abilities,omitempty" yaml:"defensive_abilities,omitempty"`
	Weaknesses         []string `json:"weaknesses,omitempty" yaml:"weaknesses,omitempty"`
}

// New builds a creature from an attribute bag. The bag is copied, missing
// fields get their defaults and the result is validated.
func New(attrs Creature) (*Creature, error) {
	c := attrs.Clone()
	if err := c.foldKeys(); err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// foldKeys lowercases the maneuver and speed keys every lookup uses. Two
// keys that fold to the same name are rejected.
func (c *Creature) foldKeys() error {
	vb := errors.NewValidationBuilder()
	c.ManeuverModifiers = foldMap("maneuvers", c.ManeuverModifiers, vb)
	c.Speeds = foldMap("speeds", c.Speeds, vb)
	return vb.Build()
}

func foldMap[V any](field string, m map[string]V, vb *errors.ValidationBuilder) map[string]V {
	if m == nil {
		return nil
	}
	folded := make(map[string]V, len(m))
	for key, value := range m {
		name := strings.ToLower(strings.TrimSpace(key))
		if _, dup := folded[name]; dup {
			vb.Fieldf(field, "%q is listed more than once", name)
			continue
		}
		folded[name] = value
	}
	return folded
}

func (c *Creature) applyDefaults() {
	c.Name = strings.TrimSpace(c.Name)
	c.Source = strings.TrimSpace(c.Source)

	if t, ok := ParseCreatureType(string(c.Type)); ok {
		c.Type = t
	}
	if c.Size == size.Unknown {
		c.Size = size.Medium
	}
	if c.HitDie == 0 {
		c.HitDie = c.Type.HitDie()
	}
	if c.Saves.isZero() {
		c.Saves = c.Type.DefaultSaves()
	}
	if c.ReachShape == "" {
		c.ReachShape = size.ShapeTall
	}
	if c.Space == 0 {
		if space, err := scaling.Space(c.Size, c.SpaceOffset); err == nil {
			c.Space = space
		}
	}
	if c.Reach == 0 {
		c.Reach = c.Size.Reach(c.ReachShape)
	}

	for name, attack := range c.MeleeAttacks {
		if attack.Count == 0 {
			attack.Count = 1
			c.MeleeAttacks[name] = attack
		}
	}
	for name, attack := range c.RangedAttacks {
		if attack.Count == 0 {
			attack.Count = 1
			c.RangedAttacks[name] = attack
		}
	}

	if c.ACBonuses == nil {
		c.ACBonuses = make(map[ACBonus]int)
	}
	if c.Speeds == nil {
		c.Speeds = make(map[string]Speed)
	}
	if c.MeleeAttacks == nil {
		c.MeleeAttacks = make(map[string]Attack)
	}
	if c.RangedAttacks == nil {
		c.RangedAttacks = make(map[string]Attack)
	}
	if c.ManeuverModifiers == nil {
		c.ManeuverModifiers = make(map[string]ManeuverModifier)
	}
}

// Validate checks the stored attributes
func (c *Creature) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", c.Name, vb)
	if !c.ChallengeRating.Valid() {
		vb.RequiredField("challenge_rating")
	}
	if !c.Size.Valid() {
		vb.InvalidField("size", c.Size.String())
	}
	if !c.Type.Valid() {
		vb.InvalidField("type", string(c.Type))
	}
	errors.ValidateMin("hit_dice", c.HitDice, 1, vb)
	switch c.HitDie {
	case 4, 6, 8, 10, 12:
	default:
		vb.Fieldf("hit_die", "must be one of d4, d6, d8, d10, d12, got d%d", c.HitDie)
	}
	errors.ValidateMin("natural_armor", c.NaturalArmor, 0, vb)
	if c.Space < 0 {
		vb.Field("space", "must not be negative")
	}
	if c.Size.Valid() {
		if _, err := scaling.Space(c.Size, c.SpaceOffset); err != nil {
			vb.Field("space_offset", errors.GetMessage(err))
		}
	}
	errors.ValidateMin("reach", c.Reach, 0, vb)
	if !c.ReachShape.Valid() {
		vb.InvalidField("reach_shape", string(c.ReachShape))
	}

	for _, ab := range AllAbilities() {
		if v, ok := c.Abilities.Get(ab).Value(); ok && v < 0 {
			vb.Fieldf("abilities."+string(ab), "must not be negative, got %d", v)
		}
	}
	for _, p := range []Progression{c.Saves.Fortitude, c.Saves.Reflex, c.Saves.Will} {
		if p != "" && p != Good && p != Poor {
			vb.InvalidField("saves", string(p))
		}
	}
	for bonus := range c.ACBonuses {
		if !bonus.valid() {
			vb.InvalidField("ac_bonuses", string(bonus))
		}
	}
	for mode, speed := range c.Speeds {
		if speed.Rate < 0 {
			vb.Fieldf("speeds."+mode, "must not be negative, got %d", speed.Rate)
		}
		if !speed.Maneuverability.Valid() {
			vb.InvalidField("speeds."+mode, string(speed.Maneuverability))
		}
	}
	validateAttacks("melee", c.MeleeAttacks, vb)
	validateAttacks("ranged", c.RangedAttacks, vb)
	for i, skill := range c.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			vb.Fieldf("skills", "entry %d has no name", i)
		}
		if skill.Ranks < 0 || skill.Ranks > c.HitDice {
			vb.Fieldf("skills", "%s ranks must be between 0 and %d", skill.Label(), c.HitDice)
		}
	}

	return vb.Build()
}

func validateAttacks(field string, attacks map[string]Attack, vb *errors.ValidationBuilder) {
	for name, attack := range attacks {
		if err := attack.Dice.Validate(); err != nil {
			vb.Fieldf(field+"."+name, "%s", errors.GetMessage(err))
		}
		if attack.Count < 1 {
			vb.Fieldf(field+"."+name, "count must be at least 1, got %d", attack.Count)
		}
	}
}

// Clone returns a structurally independent copy. Every map and slice gets
// its own backing storage.
func (c *Creature) Clone() *Creature {
	clone := *c
	clone.Subtypes = slices.Clone(c.Subtypes)
	clone.ACBonuses = maps.Clone(c.ACBonuses)
	clone.Speeds = maps.Clone(c.Speeds)
	clone.MeleeAttacks = maps.Clone(c.MeleeAttacks)
	clone.RangedAttacks = maps.Clone(c.RangedAttacks)
	clone.Feats = slices.Clone(c.Feats)
	clone.Skills = slices.Clone(c.Skills)
	clone.ManeuverModifiers = maps.Clone(c.ManeuverModifiers)
	clone.SpecialAttacks = slices.Clone(c.SpecialAttacks)
	clone.SpecialAbilities = slices.Clone(c.SpecialAbilities)
	clone.DefensiveAbilities = slices.Clone(c.DefensiveAbilities)
	clone.Weaknesses = slices.Clone(c.Weaknesses)
	return &clone
}

// LifeForce is the ability that feeds hit points and Fortitude: Charisma
// for undead, Constitution for everything else
func (c *Creature) LifeForce() Ability {
	if c.Type == TypeUndead {
		return Charisma
	}
	return Constitution
}

// LifeForceModifier is the modifier of LifeForce, 0 when the score is absent
func (c *Creature) LifeForceModifier() int {
	mod, _ := c.AbilityModifier(c.LifeForce())
	return mod
}

// AbilityModifier returns the modifier of ab; ok is false when the creature
// has no such score
func (c *Creature) AbilityModifier(ab Ability) (int, bool) {
	return c.Abilities.Get(ab).Modifier()
}

func (c *Creature) modifierOrZero(ab Ability) int {
	mod, _ := c.AbilityModifier(ab)
	return mod
}

// HasFeat reports whether the creature has the named feat, optionally with
// a matching detail. Matching ignores case.
func (c *Creature) HasFeat(name string, detail ...string) bool {
	for _, feat := range c.Feats {
		if !strings.EqualFold(feat.Name, name) {
			continue
		}
		if len(detail) == 0 || strings.EqualFold(feat.Detail, detail[0]) {
			return true
		}
	}
	return false
}

// HasSubtype reports whether the creature carries a subtype
func (c *Creature) HasSubtype(subtype string) bool {
	for _, s := range c.Subtypes {
		if strings.EqualFold(s, subtype) {
			return true
		}
	}
	return false
}

// Label is the display identity, e.g. "Ogre (Bestiary)"
func (c *Creature) Label() string {
	if c.Source == "" {
		return c.Name
	}
	return c.Name + " (" + c.Source + ")"
}

// MeleeAttackNames returns attack names in a stable order
func (c *Creature) MeleeAttackNames() []string {
	return slices.Sorted(maps.Keys(c.MeleeAttacks))
}

// RangedAttackNames returns attack names in a stable order
func (c *Creature) RangedAttackNames() []string {
	return slices.Sorted(maps.Keys(c.RangedAttacks))
}
