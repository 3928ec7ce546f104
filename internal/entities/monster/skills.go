package monster

import (
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine/statistic"
)

var skillAbilities = map[string]Ability{
	"acrobatics":       Dexterity,
	"appraise":         Intelligence,
	"bluff":            Charisma,
	"climb":            Strength,
	"craft":            Intelligence,
	"diplomacy":        Charisma,
	"disable device":   Dexterity,
	"disguise":         Charisma,
	"escape artist":    Dexterity,
	"fly":              Dexterity,
	"handle animal":    Charisma,
	"heal":             Wisdom,
	"intimidate":       Charisma,
	"knowledge":        Intelligence,
	"linguistics":      Intelligence,
	"perception":       Wisdom,
	"perform":          Charisma,
	"profession":       Wisdom,
	"ride":             Dexterity,
	"sense motive":     Wisdom,
	"sleight of hand":  Dexterity,
	"spellcraft":       Intelligence,
	"stealth":          Dexterity,
	"survival":         Wisdom,
	"swim":             Strength,
	"use magic device": Charisma,
}

// SkillAbility returns the ability keyed to a skill; ok is false for
// unknown skills
func SkillAbility(name string) (Ability, bool) {
	ab, ok := skillAbilities[strings.ToLower(strings.TrimSpace(name))]
	return ab, ok
}

func (c *Creature) findSkill(label string) (Skill, bool) {
	for _, skill := range c.Skills {
		if strings.EqualFold(skill.Label(), label) {
			return skill, true
		}
	}
	return Skill{}, false
}

func skillRanksComponent(c *Creature, args ...string) int {
	skill, _ := c.findSkill(args[0])
	return skill.Ranks
}

func skillRacialComponent(c *Creature, args ...string) int {
	skill, _ := c.findSkill(args[0])
	return skill.Racial
}

// class skills with at least one rank get +3
func skillClassComponent(c *Creature, args ...string) int {
	skill, _ := c.findSkill(args[0])
	if skill.ClassSkill && skill.Ranks > 0 {
		return 3
	}
	return 0
}

func skillSizeComponent(c *Creature, args ...string) int {
	switch strings.ToLower(args[0]) {
	case "stealth":
		return c.Size.StealthModifier()
	case "fly":
		return c.Size.FlyModifier()
	}
	return 0
}

func skillManeuverabilityComponent(c *Creature, _ ...string) int {
	return c.Speeds[SpeedFly].Maneuverability.Modifier()
}

// creatures with a climb or swim speed get +8 on the matching skill
func skillSpeedComponent(c *Creature, args ...string) int {
	if speed, ok := c.Speeds[args[0]]; ok && speed.Rate > 0 {
		return 8
	}
	return 0
}

func skillFocusComponent(c *Creature, args ...string) int {
	if !c.HasFeat("Skill Focus", args[0]) {
		return 0
	}
	skill, _ := c.findSkill(args[0])
	if skill.Ranks >= 10 {
		return 6
	}
	return 3
}

// SkillCalculator assembles the bonus for a skill label such as "Stealth"
// or "Knowledge (planes)"
func (c *Creature) SkillCalculator(label string) *Calculator {
	name, _, _ := strings.Cut(label, " (")
	name = strings.ToLower(strings.TrimSpace(name))

	calc := statistic.New(c).
		SetComponent("ranks", skillRanksComponent, label).
		SetComponent("racial", skillRacialComponent, label).
		SetComponent("class", skillClassComponent, label).
		SetComponent("focus", skillFocusComponent, label)

	if ab, ok := SkillAbility(name); ok {
		calc.SetComponent("ability", abilityComponent, string(ab))
	}

	switch name {
	case "stealth":
		calc.SetComponent("size", skillSizeComponent, name)
	case "fly":
		calc.SetComponent("size", skillSizeComponent, name).
			SetComponent("maneuverability", skillManeuverabilityComponent)
	case "climb":
		calc.SetComponent("speed", skillSpeedComponent, SpeedClimb)
	case "swim":
		calc.SetComponent("speed", skillSpeedComponent, SpeedSwim)
	}

	return calc
}

// SkillBonus is the total bonus for a skill label
func (c *Creature) SkillBonus(label string) int {
	return c.SkillCalculator(label).Calculate()
}

// SkillLine is one resolved skill of a stat block
type SkillLine struct {
	Label string `json:"label"`
	Bonus int    `json:"bonus"`
}

// SkillLines resolves every listed skill in stored order
func (c *Creature) SkillLines() []SkillLine {
	lines := make([]SkillLine, 0, len(c.Skills))
	for _, skill := range c.Skills {
		label := skill.Label()
		lines = append(lines, SkillLine{Label: label, Bonus: c.SkillBonus(label)})
	}
	return lines
}
