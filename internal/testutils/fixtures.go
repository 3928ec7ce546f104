package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
)

// Sources used by the fixtures
const (
	SourceBestiary1 = "Bestiary 1"
	SourceBestiary3 = "Bestiary 3"
)

// Ogre returns a Large humanoid with a single weapon attack
func Ogre(t *testing.T) *monster.Creature {
	return mustCreature(t, monster.Creature{
		Name:            "Ogre",
		Source:          SourceBestiary1,
		ChallengeRating: monster.CR(3),
		Size:            size.Large,
		Type:            monster.TypeHumanoid,
		Subtypes:        []string{"giant"},
		HitDice:         4,
		Abilities: monster.Abilities{
			Str: monster.NewScore(21),
			Dex: monster.NewScore(8),
			Con: monster.NewScore(15),
			Int: monster.NewScore(6),
			Wis: monster.NewScore(10),
			Cha: monster.NewScore(7),
		},
		NaturalArmor: 5,
		MeleeAttacks: map[string]monster.Attack{
			"greatclub": {Dice: scaling.Dice{Count: 2, Die: 8}},
		},
		Feats: []monster.Feat{{Name: "Toughness"}, {Name: "Iron Will"}},
	})
}

// GrayOoze returns a mindless Large ooze
func GrayOoze(t *testing.T) *monster.Creature {
	return mustCreature(t, monster.Creature{
		Name:            "Gray Ooze",
		Source:          SourceBestiary1,
		ChallengeRating: monster.CR(4),
		Size:            size.Large,
		Type:            monster.TypeOoze,
		HitDice:         4,
		Abilities: monster.Abilities{
			Str: monster.NewScore(10),
			Dex: monster.NewScore(1),
			Con: monster.NewScore(26),
			Wis: monster.NewScore(1),
			Cha: monster.NewScore(1),
		},
		MeleeAttacks: map[string]monster.Attack{
			"slam": {Dice: scaling.Dice{Count: 1, Die: 6}, Extra: "acid"},
		},
	})
}

// Kraken returns a Colossal creature no Giant template accepts
func Kraken(t *testing.T) *monster.Creature {
	return mustCreature(t, monster.Creature{
		Name:            "Kraken",
		Source:          SourceBestiary1,
		ChallengeRating: monster.CR(12),
		Size:            size.Colossal,
		Type:            monster.TypeMagicalBeast,
		Subtypes:        []string{"aquatic"},
		HitDice:         20,
		Abilities: monster.Abilities{
			Str: monster.NewScore(34),
			Dex: monster.NewScore(10),
			Con: monster.NewScore(29),
			Int: monster.NewScore(21),
			Wis: monster.NewScore(20),
			Cha: monster.NewScore(21),
		},
		NaturalArmor: 12,
		MeleeAttacks: map[string]monster.Attack{
			"arm":       {Dice: scaling.Dice{Count: 2, Die: 6}, Count: 2},
			"tentacles": {Dice: scaling.Dice{Count: 4, Die: 6}, Count: 2},
		},
	})
}

func mustCreature(t *testing.T, attrs monster.Creature) *monster.Creature {
	t.Helper()
	creature, err := monster.New(attrs)
	require.NoError(t, err)
	return creature
}
