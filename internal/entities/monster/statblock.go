package monster

import (
	"maps"
	"slices"
	"strings"
)

// ManeuverDefense is the CMD against one maneuver
type ManeuverDefense struct {
	Maneuver string `json:"maneuver"`
	Value    int    `json:"value,omitempty"`
	Immune   bool   `json:"immune,omitempty"`
}

// StatBlock is every derived statistic of a creature evaluated at one point
// in time. It carries numbers only; rendering is left to the caller.
type StatBlock struct {
	Name            string `json:"name"`
	Source          string `json:"source,omitempty"`
	ChallengeRating string `json:"challenge_rating"`
	XP              int    `json:"xp"`
	Size            string `json:"size"`
	Type            string `json:"type"`
	Alignment       string `json:"alignment,omitempty"`

	Initiative int `json:"initiative"`

	ArmorClass           int `json:"armor_class"`
	TouchArmorClass      int `json:"touch_armor_class"`
	FlatFootedArmorClass int `json:"flat_footed_armor_class"`
	HitPoints            int `json:"hit_points"`
	HitDice              int `json:"hit_dice"`
	HitDie               int `json:"hit_die"`
	HitPointBonus        int `json:"hit_point_bonus"`
	Fortitude            int `json:"fortitude"`
	Reflex               int `json:"reflex"`
	Will                 int `json:"will"`

	Space   float64           `json:"space"`
	Reach   int               `json:"reach"`
	Speeds  map[string]Speed  `json:"speeds,omitempty"`
	Melee   []AttackLine      `json:"melee,omitempty"`
	Ranged  []AttackLine      `json:"ranged,omitempty"`
	BAB     int               `json:"base_attack_bonus"`
	CMB     int               `json:"cmb"`
	CMD     int               `json:"cmd"`
	Defense []ManeuverDefense `json:"maneuver_defenses,omitempty"`

	Abilities Abilities   `json:"abilities"`
	Feats     []string    `json:"feats,omitempty"`
	Skills    []SkillLine `json:"skills,omitempty"`

	SpecialAttacks     []string `json:"special_attacks,omitempty"`
	SpecialAbilities   []string `json:"special_abilities,omitempty"`
	DefensiveAbilities []string `json:"defensive_abilities,omitempty"`
	Weaknesses         []string `json:"weaknesses,omitempty"`
}

// StatBlock evaluates every derived statistic
func (c *Creature) StatBlock() StatBlock {
	typeLabel := string(c.Type)
	if len(c.Subtypes) > 0 {
		typeLabel += " (" + strings.Join(c.Subtypes, ", ") + ")"
	}

	feats := make([]string, 0, len(c.Feats))
	for _, feat := range c.Feats {
		feats = append(feats, feat.Label())
	}

	sb := StatBlock{
		Name:                 c.Name,
		Source:               c.Source,
		ChallengeRating:      c.ChallengeRating.String(),
		XP:                   c.XP(),
		Size:                 c.Size.String(),
		Type:                 typeLabel,
		Alignment:            c.Alignment,
		Initiative:           c.Initiative(),
		ArmorClass:           c.ArmorClass(),
		TouchArmorClass:      c.TouchArmorClass(),
		FlatFootedArmorClass: c.FlatFootedArmorClass(),
		HitPoints:            c.HitPoints(),
		HitDice:              c.HitDice,
		HitDie:               c.HitDie,
		HitPointBonus:        c.HitPointBonus(),
		Fortitude:            c.Fortitude(),
		Reflex:               c.Reflex(),
		Will:                 c.Will(),
		Space:                c.Space,
		Reach:                c.Reach,
		Speeds:               maps.Clone(c.Speeds),
		Melee:                c.MeleeAttackLines(),
		Ranged:               c.RangedAttackLines(),
		BAB:                  c.BaseAttackBonus(),
		CMB:                  c.CMB(),
		CMD:                  c.CMD(),
		Abilities:            c.Abilities,
		Feats:                feats,
		Skills:               c.SkillLines(),
		SpecialAttacks:       slices.Clone(c.SpecialAttacks),
		SpecialAbilities:     slices.Clone(c.SpecialAbilities),
		DefensiveAbilities:   slices.Clone(c.DefensiveAbilities),
		Weaknesses:           slices.Clone(c.Weaknesses),
	}

	maneuvers := make([]string, 0, len(c.ManeuverModifiers))
	for name := range c.ManeuverModifiers {
		maneuvers = append(maneuvers, name)
	}
	slices.Sort(maneuvers)
	for _, name := range maneuvers {
		value, ok := c.CMDAgainst(name)
		sb.Defense = append(sb.Defense, ManeuverDefense{Maneuver: name, Value: value, Immune: !ok})
	}

	return sb
}
