package templates_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine/scaling"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates"
)

type TemplatesTestSuite struct {
	suite.Suite
	ooze   *monster.Creature
	ogre   *monster.Creature
	purple *monster.Creature
}

func TestTemplatesSuite(t *testing.T) {
	suite.Run(t, new(TemplatesTestSuite))
}

func (s *TemplatesTestSuite) mustNew(attrs monster.Creature) *monster.Creature {
	c, err := monster.New(attrs)
	s.Require().NoError(err)
	return c
}

func (s *TemplatesTestSuite) SetupTest() {
	s.ooze = s.mustNew(monster.Creature{
		Name:            "Gelatinous Cube",
		ChallengeRating: monster.CR(3),
		Size:            size.Large,
		Type:            monster.TypeOoze,
		HitDice:         4,
		Abilities: monster.Abilities{
			Str: monster.NewScore(10),
			Dex: monster.NewScore(1),
			Con: monster.NewScore(26),
		},
		MeleeAttacks: map[string]monster.Attack{
			"slam": {Dice: scaling.Dice{Count: 1, Die: 6}},
		},
	})

	s.ogre = s.mustNew(monster.Creature{
		Name:            "Ogre",
		ChallengeRating: monster.CR(3),
		Size:            size.Large,
		Type:            monster.TypeHumanoid,
		Subtypes:        []string{"giant"},
		HitDice:         4,
		NaturalArmor:    5,
		Abilities: monster.Abilities{
			Str: monster.NewScore(21),
			Dex: monster.NewScore(8),
			Con: monster.NewScore(15),
			Int: monster.NewScore(6),
			Wis: monster.NewScore(10),
			Cha: monster.NewScore(7),
		},
		MeleeAttacks: map[string]monster.Attack{
			"greatclub": {Dice: scaling.Dice{Count: 2, Die: 8}},
		},
		Feats:  []monster.Feat{{Name: "Iron Will"}, {Name: "Toughness"}},
		Skills: []monster.Skill{{Name: "Climb", Ranks: 4, ClassSkill: true}},
	})

	s.purple = s.mustNew(monster.Creature{
		Name:            "Purple Worm",
		ChallengeRating: monster.CR(12),
		Size:            size.Gargantuan,
		Type:            monster.TypeMagicalBeast,
		HitDice:         16,
		NaturalArmor:    15,
		Reach:           10,
		Abilities: monster.Abilities{
			Str: monster.NewScore(18),
			Dex: monster.NewScore(16),
			Con: monster.NewScore(14),
			Int: monster.NewScore(1),
			Wis: monster.NewScore(8),
			Cha: monster.NewScore(8),
		},
		MeleeAttacks: map[string]monster.Attack{
			"bite":  {Dice: scaling.Dice{Count: 4, Die: 8}, Extra: "plus grab"},
			"sting": {Dice: scaling.Dice{Count: 2, Die: 6}, Extra: "plus poison"},
		},
	})
}

func (s *TemplatesTestSuite) TestParseKind() {
	kind, err := templates.ParseKind(" Giant ")
	s.Require().NoError(err)
	s.Assert().Equal(templates.KindGiant, kind)
	s.Assert().Equal("giant", kind.String())

	tmpl, err := kind.Template()
	s.Require().NoError(err)
	s.Assert().Equal("Giant", tmpl.Name())
	s.Assert().Equal(templates.KindGiant, tmpl.Kind())

	_, err = templates.ParseKind("celestial")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = templates.KindUnspecified.Template()
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *TemplatesTestSuite) TestAdvancedScenario() {
	out, err := templates.Advanced{}.Apply(s.ooze)
	s.Require().NoError(err)

	s.Assert().Equal("4", out.ChallengeRating.String())
	s.Assert().Equal(2, out.NaturalArmor)
	s.Assert().Equal(monster.NewScore(14), out.Abilities.Str)
	s.Assert().Equal(monster.NewScore(5), out.Abilities.Dex)
	s.Assert().Equal(monster.NewScore(30), out.Abilities.Con)
	s.Assert().False(out.Abilities.Int.Present())
	s.Assert().Equal(4, out.MeleeAttackBonus())
	s.Assert().Equal(3, out.DamageBonus())
	s.Assert().Equal(11, out.Fortitude())
}

func (s *TemplatesTestSuite) TestAdvancedIntelligence() {
	out, err := templates.Advanced{}.Apply(s.ogre)
	s.Require().NoError(err)
	s.Assert().Equal(monster.NewScore(10), out.Abilities.Int)
	s.Assert().Equal(monster.NewScore(11), out.Abilities.Cha)

	animal := s.ogre.Clone()
	animal.Abilities.Int = monster.NewScore(2)
	out, err = templates.Advanced{}.Apply(animal)
	s.Require().NoError(err)
	s.Assert().Equal(monster.NewScore(2), out.Abilities.Int)
}

func (s *TemplatesTestSuite) TestGiantScenario() {
	before := s.purple.Clone()

	out, err := templates.Giant{}.Apply(s.purple)
	s.Require().NoError(err)

	s.Assert().Equal(size.Colossal, out.Size)
	s.Assert().Equal("Colossal", out.Size.String())
	s.Assert().Equal(size.Gargantuan, s.purple.Size)
	s.Assert().Equal(before, s.purple)

	s.Assert().Equal(monster.CR(13), out.ChallengeRating)
	s.Assert().Equal(monster.NewScore(22), out.Abilities.Str)
	s.Assert().Equal(monster.NewScore(18), out.Abilities.Con)
	s.Assert().Equal(monster.NewScore(14), out.Abilities.Dex)
	s.Assert().Equal(30.0, out.Space)
	s.Assert().Equal(15, out.Reach)
	s.Assert().Equal(scaling.Dice{Count: 6, Die: 8}, out.MeleeAttacks["bite"].Dice)
	s.Assert().Equal("plus grab", out.MeleeAttacks["bite"].Extra)
	s.Assert().Equal(scaling.Dice{Count: 3, Die: 6}, out.MeleeAttacks["sting"].Dice)
}

func (s *TemplatesTestSuite) TestGiantRejectsColossal() {
	colossal := s.purple.Clone()
	colossal.Size = size.Colossal

	s.Assert().False(templates.Giant{}.IsCompatible(colossal))
	out, err := templates.Giant{}.Apply(colossal)
	s.Assert().Nil(out)
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal(templates.Giant{}.DiagnosticMessage(), errors.GetMessage(err))
	s.Assert().Equal("Giant", errors.GetMeta(err)["template"])
}

func (s *TemplatesTestSuite) TestGiantDamageOffTheTableIsIncompatible() {
	huge := s.purple.Clone()
	huge.MeleeAttacks["bite"] = monster.Attack{Dice: scaling.Dice{Count: 32, Die: 6}, Count: 1}

	out, err := templates.Giant{}.Apply(huge)
	s.Assert().Nil(out)
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal(templates.Giant{}.DiagnosticMessage(), errors.GetMessage(err))
}

func (s *TemplatesTestSuite) TestGiantDexterityFloor() {
	clumsy := s.ooze.Clone()
	out, err := templates.Giant{}.Apply(clumsy)
	s.Require().NoError(err)
	s.Assert().Equal(monster.NewScore(1), out.Abilities.Dex)
}

func (s *TemplatesTestSuite) TestYoung() {
	out, err := templates.Young{}.Apply(s.ogre)
	s.Require().NoError(err)

	s.Assert().Equal(monster.CR(2), out.ChallengeRating)
	s.Assert().Equal(size.Medium, out.Size)
	s.Assert().Equal(monster.NewScore(17), out.Abilities.Str)
	s.Assert().Equal(monster.NewScore(11), out.Abilities.Con)
	s.Assert().Equal(monster.NewScore(12), out.Abilities.Dex)
	s.Assert().Equal(3, out.NaturalArmor)
	s.Assert().Equal(5.0, out.Space)
	s.Assert().Equal(5, out.Reach)
	s.Assert().Equal(scaling.Dice{Count: 1, Die: 10}, out.MeleeAttacks["greatclub"].Dice)
}

func (s *TemplatesTestSuite) TestYoungFloors() {
	frail := s.ogre.Clone()
	frail.Abilities.Str = monster.NewScore(3)
	frail.Abilities.Con = monster.NewScore(2)
	frail.NaturalArmor = 1

	out, err := templates.Young{}.Apply(frail)
	s.Require().NoError(err)
	s.Assert().Equal(monster.NewScore(1), out.Abilities.Str)
	s.Assert().Equal(monster.NewScore(1), out.Abilities.Con)
	s.Assert().Equal(0, out.NaturalArmor)
}

func (s *TemplatesTestSuite) TestYoungIncompatible() {
	fine := s.ogre.Clone()
	fine.Size = size.Fine

	weakest := s.ogre.Clone()
	weakest.ChallengeRating = monster.CROneEighth

	dragon := s.ogre.Clone()
	dragon.Name = "Adult Red Dragon"
	dragon.Type = monster.TypeDragon

	barghest := s.ogre.Clone()
	barghest.Name = "Greater Barghest"

	testCases := []struct {
		name     string
		creature *monster.Creature
	}{
		{"fine", fine},
		{"lowest challenge rating", weakest},
		{"true dragon", dragon},
		{"barghest", barghest},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := tc.creature.Clone()
			s.Assert().False(templates.Young{}.IsCompatible(tc.creature))
			out, err := templates.Young{}.Apply(tc.creature)
			s.Assert().Nil(out)
			s.Assert().True(errors.IsFailedPrecondition(err))
			s.Assert().Equal(before, tc.creature)
		})
	}
}

func (s *TemplatesTestSuite) TestTrueDragonHeuristicIsLiteral() {
	drake := s.ogre.Clone()
	drake.Type = monster.TypeDragon
	drake.Name = "Forest Drake"
	s.Assert().True(templates.Young{}.IsCompatible(drake))

	lower := s.ogre.Clone()
	lower.Type = monster.TypeDragon
	lower.Name = "Paper dragon"
	s.Assert().True(templates.Young{}.IsCompatible(lower))

	notDragonType := s.ogre.Clone()
	notDragonType.Name = "Snapdragon Fox Dragon"
	s.Assert().True(templates.Young{}.IsCompatible(notDragonType))
}

func (s *TemplatesTestSuite) TestUndeadUseCharisma() {
	ghoul := s.mustNew(monster.Creature{
		Name:            "Ghoul",
		ChallengeRating: monster.CR(1),
		Type:            monster.TypeUndead,
		HitDice:         2,
		Abilities: monster.Abilities{
			Str: monster.NewScore(13),
			Dex: monster.NewScore(15),
			Cha: monster.NewScore(14),
		},
	})

	giant, err := templates.Giant{}.Apply(ghoul)
	s.Require().NoError(err)
	s.Assert().False(giant.Abilities.Con.Present())
	s.Assert().Equal(monster.NewScore(18), giant.Abilities.Cha)

	young, err := templates.Young{}.Apply(ghoul)
	s.Require().NoError(err)
	s.Assert().False(young.Abilities.Con.Present())
	s.Assert().Equal(monster.NewScore(10), young.Abilities.Cha)
}

func (s *TemplatesTestSuite) TestNonMutation() {
	for _, kind := range templates.Kinds() {
		tmpl, err := kind.Template()
		s.Require().NoError(err)

		for _, c := range []*monster.Creature{s.ooze, s.ogre, s.purple} {
			before := c.Clone()
			_, _ = tmpl.Apply(c)
			s.Assert().Equal(before, c, "%s mutated %s", tmpl.Name(), c.Name)
		}
	}
}

func (s *TemplatesTestSuite) TestChallengeRatingMonotonicity() {
	for _, c := range []*monster.Creature{s.ooze, s.ogre, s.purple} {
		advanced, err := templates.Advanced{}.Apply(c)
		s.Require().NoError(err)
		up, _ := c.ChallengeRating.Step(1)
		s.Assert().Equal(up, advanced.ChallengeRating)

		giant, err := templates.Giant{}.Apply(c)
		s.Require().NoError(err)
		s.Assert().Equal(up, giant.ChallengeRating)

		young, err := templates.Young{}.Apply(c)
		s.Require().NoError(err)
		down, _ := c.ChallengeRating.Step(-1)
		s.Assert().Equal(down, young.ChallengeRating)

		roundTrip, err := templates.Young{}.Apply(advanced)
		s.Require().NoError(err)
		s.Assert().Equal(c.ChallengeRating, roundTrip.ChallengeRating)
	}
}

func (s *TemplatesTestSuite) TestAdvancedAtTopOfLadder() {
	top := s.ogre.Clone()
	top.ChallengeRating = monster.CR(30)

	s.Assert().False(templates.Advanced{}.IsCompatible(top))
	_, err := templates.Advanced{}.Apply(top)
	s.Assert().True(errors.IsFailedPrecondition(err))

	s.Assert().False(templates.Giant{}.IsCompatible(top))
	_, err = templates.Giant{}.Apply(top)
	s.Assert().True(errors.IsFailedPrecondition(err))
}
