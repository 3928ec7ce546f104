package monster

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
	"github.com/KirkDiggler/rpg-bestiary/internal/engine/statistic"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
)

// Calculator is a derived statistic bound to one creature
type Calculator = statistic.Calculator[*Creature]

func constant(_ *Creature, args ...string) int {
	if len(args) == 0 {
		return 0
	}
	n, _ := strconv.Atoi(args[0])
	return n
}

func abilityComponent(c *Creature, args ...string) int {
	return c.modifierOrZero(Ability(args[0]))
}

func lifeForceComponent(c *Creature, _ ...string) int {
	return c.LifeForceModifier()
}

// featComponent yields args[1] when the creature has feat args[0]
func featComponent(c *Creature, args ...string) int {
	if !c.HasFeat(args[0]) {
		return 0
	}
	return constant(c, args[1:]...)
}

func babComponent(c *Creature, _ ...string) int {
	return c.BaseAttackBonus()
}

func sizeComponent(c *Creature, _ ...string) int {
	return c.Size.Modifier()
}

func specialSizeComponent(c *Creature, _ ...string) int {
	return c.Size.SpecialModifier()
}

func naturalArmorComponent(c *Creature, _ ...string) int {
	return c.NaturalArmor
}

func acBonusComponent(c *Creature, args ...string) int {
	bonus := c.ACBonuses[ACBonus(args[0])]
	if ACBonus(args[0]) == ACDodge && c.HasFeat("Dodge") {
		bonus++
	}
	return bonus
}

// BaseAttackBonus follows the creature type's progression
func (c *Creature) BaseAttackBonus() int {
	switch c.Type.BAB() {
	case BABFull:
		return c.HitDice
	case BABHalf:
		return c.HitDice / 2
	default:
		return c.HitDice * 3 / 4
	}
}

// BaseSave is the save bonus from hit dice alone
func (c *Creature) BaseSave(save Save) int {
	if c.Saves.progression(save) == Good {
		return 2 + c.HitDice/2
	}
	return c.HitDice / 3
}

func baseSaveComponent(c *Creature, args ...string) int {
	return c.BaseSave(Save(args[0]))
}

// SaveCalculator assembles a saving throw from its components
func (c *Creature) SaveCalculator(save Save) *Calculator {
	calc := statistic.New(c).SetComponent("base", baseSaveComponent, string(save))
	switch save {
	case Fortitude:
		calc.SetComponent("ability", lifeForceComponent).
			SetComponent("feat", featComponent, "Great Fortitude", "2")
	case Reflex:
		calc.SetComponent("ability", abilityComponent, string(Dexterity)).
			SetComponent("feat", featComponent, "Lightning Reflexes", "2")
	case Will:
		calc.SetComponent("ability", abilityComponent, string(Wisdom)).
			SetComponent("feat", featComponent, "Iron Will", "2")
	}
	return calc
}

// Fortitude save bonus
func (c *Creature) Fortitude() int { return c.SaveCalculator(Fortitude).Calculate() }

// Reflex save bonus
func (c *Creature) Reflex() int { return c.SaveCalculator(Reflex).Calculate() }

// Will save bonus
func (c *Creature) Will() int { return c.SaveCalculator(Will).Calculate() }

// meleeAbility is Strength, or Dexterity for Weapon Finesse users when it
// is higher. Creatures without Strength use Dexterity.
func (c *Creature) meleeAbility() Ability {
	str, hasStr := c.AbilityModifier(Strength)
	if !hasStr {
		return Dexterity
	}
	if c.HasFeat("Weapon Finesse") {
		if dex, ok := c.AbilityModifier(Dexterity); ok && dex > str {
			return Dexterity
		}
	}
	return Strength
}

// MeleeAttackCalculator assembles the melee attack bonus
func (c *Creature) MeleeAttackCalculator() *Calculator {
	return statistic.New(c).
		SetComponent("bab", babComponent).
		SetComponent("ability", abilityComponent, string(c.meleeAbility())).
		SetComponent("size", sizeComponent)
}

// MeleeAttackBonus is the bonus of a melee natural attack
func (c *Creature) MeleeAttackBonus() int {
	return c.MeleeAttackCalculator().Calculate()
}

// RangedAttackCalculator assembles the ranged attack bonus
func (c *Creature) RangedAttackCalculator() *Calculator {
	return statistic.New(c).
		SetComponent("bab", babComponent).
		SetComponent("ability", abilityComponent, string(Dexterity)).
		SetComponent("size", sizeComponent)
}

// RangedAttackBonus is the bonus of a ranged attack
func (c *Creature) RangedAttackBonus() int {
	return c.RangedAttackCalculator().Calculate()
}

// NaturalAttackCount is the total number of melee attacks per full attack
func (c *Creature) NaturalAttackCount() int {
	total := 0
	for _, attack := range c.MeleeAttacks {
		total += attack.Count
	}
	return total
}

// DamageBonus is the Strength bonus to melee damage. A creature with a
// single natural attack adds one and a half times its Strength bonus.
func (c *Creature) DamageBonus() int {
	str, ok := c.AbilityModifier(Strength)
	if !ok {
		return 0
	}
	if str > 0 && c.NaturalAttackCount() == 1 {
		return str * 3 / 2
	}
	return str
}

// AttackLine is one resolved attack of a stat block
type AttackLine struct {
	Name        string       `json:"name"`
	Count       int          `json:"count"`
	Bonus       int          `json:"bonus"`
	Dice        scaling.Dice `json:"dice"`
	DamageBonus int          `json:"damage_bonus"`
	Extra       string       `json:"extra,omitempty"`
}

// MeleeAttackLines resolves every melee attack, sorted by name
func (c *Creature) MeleeAttackLines() []AttackLine {
	bonus := c.MeleeAttackBonus()
	damage := c.DamageBonus()
	lines := make([]AttackLine, 0, len(c.MeleeAttacks))
	for _, name := range c.MeleeAttackNames() {
		attack := c.MeleeAttacks[name]
		line := AttackLine{
			Name:        name,
			Count:       attack.Count,
			Bonus:       bonus,
			Dice:        attack.Dice,
			DamageBonus: damage,
			Extra:       attack.Extra,
		}
		if c.HasFeat("Weapon Focus", name) {
			line.Bonus++
		}
		lines = append(lines, line)
	}
	return lines
}

// RangedAttackLines resolves every ranged attack, sorted by name
func (c *Creature) RangedAttackLines() []AttackLine {
	bonus := c.RangedAttackBonus()
	lines := make([]AttackLine, 0, len(c.RangedAttacks))
	for _, name := range c.RangedAttackNames() {
		attack := c.RangedAttacks[name]
		line := AttackLine{
			Name:  name,
			Count: attack.Count,
			Bonus: bonus,
			Dice:  attack.Dice,
			Extra: attack.Extra,
		}
		if c.HasFeat("Weapon Focus", name) {
			line.Bonus++
		}
		lines = append(lines, line)
	}
	return lines
}

// ArmorClassCalculator assembles normal armor class
func (c *Creature) ArmorClassCalculator() *Calculator {
	calc := statistic.New(c).
		SetComponent("base", constant, "10").
		SetComponent("size", sizeComponent).
		SetComponent("dexterity", abilityComponent, string(Dexterity)).
		SetComponent("natural", naturalArmorComponent)
	for _, bonus := range acBonusOrder {
		calc.SetComponent(string(bonus), acBonusComponent, string(bonus))
	}
	return calc
}

// ArmorClass is normal armor class
func (c *Creature) ArmorClass() int {
	return c.ArmorClassCalculator().Calculate()
}

// TouchArmorClass ignores armor, shield and natural armor
func (c *Creature) TouchArmorClass() int {
	return c.ArmorClassCalculator().
		RemoveComponent("natural").
		RemoveComponent(string(ACArmor)).
		RemoveComponent(string(ACShield)).
		Calculate()
}

// FlatFootedArmorClass loses dodge bonuses and any Dexterity bonus. A
// Dexterity penalty still applies.
func (c *Creature) FlatFootedArmorClass() int {
	calc := c.ArmorClassCalculator().RemoveComponent(string(ACDodge))
	if c.modifierOrZero(Dexterity) > 0 {
		calc.RemoveComponent("dexterity")
	}
	return calc.Calculate()
}

// Initiative is Dexterity plus Improved Initiative
func (c *Creature) Initiative() int {
	return statistic.New(c).
		SetComponent("dexterity", abilityComponent, string(Dexterity)).
		SetComponent("feat", featComponent, "Improved Initiative", "4").
		Calculate()
}

// maneuverFeatComponent adds args[2] for each of "Improved <maneuver>" and,
// for offense, "Greater <maneuver>"
func maneuverFeatComponent(c *Creature, args ...string) int {
	maneuver, mode := args[0], args[1]
	bonus := 0
	if c.HasFeat("Improved " + maneuver) {
		bonus += 2
	}
	if mode == "offense" && c.HasFeat("Greater "+maneuver) {
		bonus += 2
	}
	return bonus
}

func maneuverModifierComponent(c *Creature, args ...string) int {
	mod := c.ManeuverModifiers[strings.ToLower(args[0])]
	if args[1] == "offense" {
		return mod.Offense
	}
	return mod.Defense
}

// cmbAbility is Strength, or Dexterity for Tiny and smaller creatures and
// Agile Maneuvers users when it is higher
func (c *Creature) cmbAbility() Ability {
	if _, ok := c.AbilityModifier(Strength); !ok {
		return Dexterity
	}
	if c.Size <= size.Tiny || c.HasFeat("Agile Maneuvers") {
		if c.modifierOrZero(Dexterity) > c.modifierOrZero(Strength) {
			return Dexterity
		}
	}
	return Strength
}

// CMBCalculator assembles combat maneuver bonus. An empty maneuver gives the
// general value.
func (c *Creature) CMBCalculator(maneuver string) *Calculator {
	calc := statistic.New(c).
		SetComponent("bab", babComponent).
		SetComponent("ability", abilityComponent, string(c.cmbAbility())).
		SetComponent("size", specialSizeComponent)
	if maneuver != "" {
		calc.SetComponent("feat", maneuverFeatComponent, maneuver, "offense").
			SetComponent("maneuver", maneuverModifierComponent, maneuver, "offense")
	}
	return calc
}

// CMB is the general combat maneuver bonus
func (c *Creature) CMB() int {
	return c.CMBCalculator("").Calculate()
}

// CMBAgainst is the combat maneuver bonus for one maneuver
func (c *Creature) CMBAgainst(maneuver string) int {
	return c.CMBCalculator(maneuver).Calculate()
}

// CMDCalculator assembles combat maneuver defense
func (c *Creature) CMDCalculator(maneuver string) *Calculator {
	calc := statistic.New(c).
		SetComponent("base", constant, "10").
		SetComponent("bab", babComponent).
		SetComponent("strength", abilityComponent, string(Strength)).
		SetComponent("dexterity", abilityComponent, string(Dexterity)).
		SetComponent("size", specialSizeComponent)
	for _, bonus := range acBonusOrder {
		if bonus == ACArmor || bonus == ACShield {
			continue
		}
		calc.SetComponent(string(bonus), acBonusComponent, string(bonus))
	}
	if maneuver != "" {
		calc.SetComponent("feat", maneuverFeatComponent, maneuver, "defense").
			SetComponent("maneuver", maneuverModifierComponent, maneuver, "defense")
	}
	return calc
}

// CMD is the general combat maneuver defense
func (c *Creature) CMD() int {
	return c.CMDCalculator("").Calculate()
}

// CMDAgainst is the defense against one maneuver; ok is false when the
// creature cannot be targeted by it
func (c *Creature) CMDAgainst(maneuver string) (int, bool) {
	if c.ManeuverModifiers[strings.ToLower(maneuver)].Immune {
		return 0, false
	}
	return c.CMDCalculator(maneuver).Calculate(), true
}

// HitPoints is the average hit point total
func (c *Creature) HitPoints() int {
	average := c.HitDice * (c.HitDie + 1) / 2
	return max(average+c.HitPointBonus(), c.HitDice)
}

// HitDiceExpression is the dice rolled for hit points
func (c *Creature) HitDiceExpression() scaling.Dice {
	return scaling.Dice{Count: c.HitDice, Die: c.HitDie}
}

// HitPointBonus is the flat part of the hit point formula
func (c *Creature) HitPointBonus() int {
	bonus := c.HitDice * c.LifeForceModifier()
	if c.Type == TypeConstruct {
		bonus += c.Size.ConstructHitPoints()
	}
	if c.HasFeat("Toughness") {
		bonus += max(3, c.HitDice)
	}
	return bonus
}

// XP is the experience award for the creature's challenge rating
func (c *Creature) XP() int {
	return c.ChallengeRating.XP()
}
