package monster

import (
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
)

// CreatureType is the closed set of Pathfinder creature types
type CreatureType string

// Creature types
const (
	TypeAberration        CreatureType = "aberration"
	TypeAnimal            CreatureType = "animal"
	TypeConstruct         CreatureType = "construct"
	TypeDragon            CreatureType = "dragon"
	TypeFey               CreatureType = "fey"
	TypeHumanoid          CreatureType = "humanoid"
	TypeMagicalBeast      CreatureType = "magical beast"
	TypeMonstrousHumanoid CreatureType = "monstrous humanoid"
	TypeOoze              CreatureType = "ooze"
	TypeOutsider          CreatureType = "outsider"
	TypePlant             CreatureType = "plant"
	TypeUndead            CreatureType = "undead"
	TypeVermin            CreatureType = "vermin"
)

// BABProgression is the fraction of hit dice granted as base attack bonus
type BABProgression int

// Base attack bonus progressions
const (
	BABHalf BABProgression = iota
	BABThreeQuarters
	BABFull
)

type typeTraits struct {
	hitDie int
	bab    BABProgression
	saves  Saves
}

var creatureTypes = map[CreatureType]typeTraits{
	TypeAberration:        {hitDie: 8, bab: BABThreeQuarters, saves: Saves{Will: Good}},
	TypeAnimal:            {hitDie: 8, bab: BABThreeQuarters, saves: Saves{Fortitude: Good, Reflex: Good}},
	TypeConstruct:         {hitDie: 10, bab: BABFull},
	TypeDragon:            {hitDie: 12, bab: BABFull, saves: Saves{Fortitude: Good, Reflex: Good, Will: Good}},
	TypeFey:               {hitDie: 6, bab: BABHalf, saves: Saves{Reflex: Good, Will: Good}},
	TypeHumanoid:          {hitDie: 8, bab: BABThreeQuarters, saves: Saves{Reflex: Good}},
	TypeMagicalBeast:      {hitDie: 10, bab: BABFull, saves: Saves{Fortitude: Good, Reflex: Good}},
	TypeMonstrousHumanoid: {hitDie: 10, bab: BABFull, saves: Saves{Reflex: Good, Will: Good}},
	TypeOoze:              {hitDie: 8, bab: BABThreeQuarters},
	TypeOutsider:          {hitDie: 10, bab: BABFull, saves: Saves{Reflex: Good, Will: Good}},
	TypePlant:             {hitDie: 8, bab: BABThreeQuarters, saves: Saves{Fortitude: Good}},
	TypeUndead:            {hitDie: 8, bab: BABThreeQuarters, saves: Saves{Will: Good}},
	TypeVermin:            {hitDie: 8, bab: BABThreeQuarters, saves: Saves{Fortitude: Good}},
}

// ParseCreatureType normalizes case and spacing; it reports false for
// unknown types
func ParseCreatureType(s string) (CreatureType, bool) {
	t := CreatureType(strings.Join(strings.Fields(strings.ToLower(s)), " "))
	_, ok := creatureTypes[t]
	return t, ok
}

// Valid reports whether t is a known creature type
func (t CreatureType) Valid() bool {
	_, ok := creatureTypes[t]
	return ok
}

// HitDie is the die size used for the type's hit dice
func (t CreatureType) HitDie() int {
	return creatureTypes[t].hitDie
}

// BAB is the base attack bonus progression of the type
func (t CreatureType) BAB() BABProgression {
	if traits, ok := creatureTypes[t]; ok {
		return traits.bab
	}
	return BABThreeQuarters
}

// DefaultSaves is the save progression typical for the type
func (t CreatureType) DefaultSaves() Saves {
	return creatureTypes[t].saves
}

// Ability names one of the six ability scores
type Ability string

// Abilities in stat block order
const (
	Strength     Ability = "str"
	Dexterity    Ability = "dex"
	Constitution Ability = "con"
	Intelligence Ability = "int"
	Wisdom       Ability = "wis"
	Charisma     Ability = "cha"
)

// AllAbilities lists the abilities in stat block order
func AllAbilities() []Ability {
	return []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}
}

// Abilities holds the six optional ability scores
type Abilities struct {
	Str Score `json:"str" yaml:"str"`
	Dex Score `json:"dex" yaml:"dex"`
	Con Score `json:"con" yaml:"con"`
	Int Score `json:"int" yaml:"int"`
	Wis Score `json:"wis" yaml:"wis"`
	Cha Score `json:"cha" yaml:"cha"`
}

// Get returns the score for ab; unknown abilities are absent
func (a Abilities) Get(ab Ability) Score {
	switch ab {
	case Strength:
		return a.Str
	case Dexterity:
		return a.Dex
	case Constitution:
		return a.Con
	case Intelligence:
		return a.Int
	case Wisdom:
		return a.Wis
	case Charisma:
		return a.Cha
	default:
		return NoScore
	}
}

// Set replaces the score for ab
func (a *Abilities) Set(ab Ability, s Score) {
	switch ab {
	case Strength:
		a.Str = s
	case Dexterity:
		a.Dex = s
	case Constitution:
		a.Con = s
	case Intelligence:
		a.Int = s
	case Wisdom:
		a.Wis = s
	case Charisma:
		a.Cha = s
	}
}

// Progression is a good or poor base save
type Progression string

// Save progressions
const (
	Poor Progression = "poor"
	Good Progression = "good"
)

// Saves holds the base progression of each saving throw. Empty means poor.
type Saves struct {
	Fortitude Progression `json:"fortitude,omitempty" yaml:"fortitude,omitempty"`
	Reflex    Progression `json:"reflex,omitempty" yaml:"reflex,omitempty"`
	Will      Progression `json:"will,omitempty" yaml:"will,omitempty"`
}

func (s Saves) isZero() bool {
	return s == Saves{}
}

// Save identifies a saving throw
type Save string

// Saving throws
const (
	Fortitude Save = "fortitude"
	Reflex    Save = "reflex"
	Will      Save = "will"
)

func (s Saves) progression(save Save) Progression {
	switch save {
	case Fortitude:
		return s.Fortitude
	case Reflex:
		return s.Reflex
	case Will:
		return s.Will
	}
	return Poor
}

// Maneuverability rates how well a creature flies
type Maneuverability string

// Fly maneuverability classes
const (
	FlyClumsy  Maneuverability = "clumsy"
	FlyPoor    Maneuverability = "poor"
	FlyAverage Maneuverability = "average"
	FlyGood    Maneuverability = "good"
	FlyPerfect Maneuverability = "perfect"
)

var maneuverabilityModifiers = map[Maneuverability]int{
	FlyClumsy:  -8,
	FlyPoor:    -4,
	FlyAverage: 0,
	FlyGood:    4,
	FlyPerfect: 8,
}

// Valid reports whether m is a known class; empty is accepted
func (m Maneuverability) Valid() bool {
	if m == "" {
		return true
	}
	_, ok := maneuverabilityModifiers[m]
	return ok
}

// Modifier is the Fly skill modifier for the class
func (m Maneuverability) Modifier() int {
	return maneuverabilityModifiers[m]
}

// Movement modes with rules attached
const (
	SpeedLand  = "land"
	SpeedFly   = "fly"
	SpeedClimb = "climb"
	SpeedSwim  = "swim"
)

// Speed is one movement mode
type Speed struct {
	Rate            int             `json:"rate" yaml:"rate"`
	Maneuverability Maneuverability `json:"maneuverability,omitempty" yaml:"maneuverability,omitempty"`
}

// Attack describes a natural attack: Count attacks of Dice damage with an
// optional rider such as "plus grab"
type Attack struct {
	Dice  scaling.Dice `json:"dice" yaml:"dice"`
	Count int          `json:"count,omitempty" yaml:"count,omitempty"`
	Extra string       `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Feat is a feat name with an optional detail, e.g. Skill Focus (Stealth)
type Feat struct {
	Name   string `json:"name" yaml:"name"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// Label renders the feat as it appears in a stat block
func (f Feat) Label() string {
	if f.Detail == "" {
		return f.Name
	}
	return f.Name + " (" + f.Detail + ")"
}

// Skill is a skill entry. Specialty is set for skills such as Craft or
// Knowledge.
type Skill struct {
	Name       string `json:"name" yaml:"name"`
	Specialty  string `json:"specialty,omitempty" yaml:"specialty,omitempty"`
	Ranks      int    `json:"ranks,omitempty" yaml:"ranks,omitempty"`
	Racial     int    `json:"racial,omitempty" yaml:"racial,omitempty"`
	ClassSkill bool   `json:"class_skill,omitempty" yaml:"class_skill,omitempty"`
}

// Label renders the skill as it appears in a stat block
func (s Skill) Label() string {
	if s.Specialty == "" {
		return s.Name
	}
	return s.Name + " (" + s.Specialty + ")"
}

// ACBonus names a typed bonus to armor class
type ACBonus string

// Armor class bonus types stored on a creature. Natural armor and Dexterity
// have their own fields.
const (
	ACArmor      ACBonus = "armor"
	ACShield     ACBonus = "shield"
	ACDeflection ACBonus = "deflection"
	ACDodge      ACBonus = "dodge"
	ACInsight    ACBonus = "insight"
	ACLuck       ACBonus = "luck"
	ACMorale     ACBonus = "morale"
	ACProfane    ACBonus = "profane"
	ACSacred     ACBonus = "sacred"
)

// acBonusOrder fixes evaluation order for AC and CMD
var acBonusOrder = []ACBonus{
	ACArmor, ACShield, ACDeflection, ACDodge, ACInsight, ACLuck, ACMorale, ACProfane, ACSacred,
}

func (b ACBonus) valid() bool {
	for _, known := range acBonusOrder {
		if b == known {
			return true
		}
	}
	return false
}

// Maneuvers a creature can be modified against
const (
	ManeuverBullRush   = "bull rush"
	ManeuverDirtyTrick = "dirty trick"
	ManeuverDisarm     = "disarm"
	ManeuverDrag       = "drag"
	ManeuverGrapple    = "grapple"
	ManeuverOverrun    = "overrun"
	ManeuverReposition = "reposition"
	ManeuverSteal      = "steal"
	ManeuverSunder     = "sunder"
	ManeuverTrip       = "trip"
)

// ManeuverModifier adjusts CMB and CMD for one maneuver. Immune creatures
// cannot be targeted by the maneuver at all.
type ManeuverModifier struct {
	Offense int  `json:"offense,omitempty" yaml:"offense,omitempty"`
	Defense int  `json:"defense,omitempty" yaml:"defense,omitempty"`
	Immune  bool `json:"immune,omitempty" yaml:"immune,omitempty"`
}
