package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-bestiary/internal/catalog"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/size"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters"
)

type CatalogTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *CatalogTestSuite) TestDefault() {
	creatures, err := catalog.Default()
	s.Require().NoError(err)
	s.Require().Len(creatures, 11)

	byName := make(map[string]*monster.Creature, len(creatures))
	for _, c := range creatures {
		byName[c.Name] = c
	}

	s.Assert().Equal(size.Colossal, byName["Kraken"].Size)
	s.Assert().Equal(monster.CROneThird, byName["Skeleton"].ChallengeRating)
	s.Assert().False(byName["Skeleton"].Abilities.Int.Present())
	s.Assert().Equal(monster.TypeMagicalBeast, byName["Purple Worm"].Type)
	s.Assert().Equal(2, byName["Ghoul"].MeleeAttacks["claw"].Count)
	s.Assert().Equal(monster.FlyGood, byName["Pixie"].Speeds[monster.SpeedFly].Maneuverability)
}

func (s *CatalogTestSuite) TestLoadFromReader() {
	testCases := []struct {
		name    string
		doc     string
		count   int
		wantErr bool
		entries int
	}{
		{
			name:  "empty document",
			doc:   "",
			count: 0,
		},
		{
			name: "single entry",
			doc: `
- name: Wolf
  challenge_rating: 1
  type: animal
  hit_dice: 2
  abilities: {str: 13, dex: 15, con: 15, int: 2, wis: 12, cha: 6}
  melee:
    bite: {dice: 1d6}
`,
			count: 1,
		},
		{
			name: "unknown field",
			doc: `
- name: Wolf
  challenge_rating: 1
  type: animal
  hit_dice: 2
  hp: 13
`,
			wantErr: true,
		},
		{
			name: "every invalid entry reported",
			doc: `
- name: Wolf
  type: animal
  hit_dice: 2
- name: Lemure
  challenge_rating: 1
  type: outsider
  hit_dice: 0
- name: Bat
  challenge_rating: 1/8
  size: diminutive
  type: animal
  hit_dice: 1
`,
			wantErr: true,
			entries: 2,
		},
		{
			name: "duplicate name and source",
			doc: `
- {name: Wolf, challenge_rating: 1, type: animal, hit_dice: 2}
- {name: WOLF, challenge_rating: 1, type: animal, hit_dice: 2}
`,
			wantErr: true,
			entries: 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			creatures, err := catalog.LoadFromReader(strings.NewReader(tc.doc))
			if tc.wantErr {
				s.Require().Error(err)
				s.Assert().True(errors.IsInvalidArgument(err))
				if tc.entries > 0 {
					s.Assert().Len(errors.GetMeta(err)["entries"], tc.entries)
				}
				return
			}
			s.Require().NoError(err)
			s.Assert().Len(creatures, tc.count)
		})
	}
}

func (s *CatalogTestSuite) TestLoad() {
	s.Run("missing file", func() {
		_, err := catalog.Load(filepath.Join(s.T().TempDir(), "missing.yaml"))
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("file on disk", func() {
		path := filepath.Join(s.T().TempDir(), "bestiary.yaml")
		doc := "- {name: Wolf, challenge_rating: 1, type: animal, hit_dice: 2}\n"
		s.Require().NoError(os.WriteFile(path, []byte(doc), 0o600))

		creatures, err := catalog.Load(path)
		s.Require().NoError(err)
		s.Require().Len(creatures, 1)
		s.Assert().Equal("Wolf", creatures[0].Name)
	})
}

func (s *CatalogTestSuite) TestSeed() {
	creatures, err := catalog.Default()
	s.Require().NoError(err)
	repo := monsters.NewInMemory(nil)

	out, err := catalog.Seed(s.ctx, repo, creatures)
	s.Require().NoError(err)
	s.Assert().Equal(len(creatures), out.Stored)
	s.Assert().Zero(out.Replaced)

	again, err := catalog.Seed(s.ctx, repo, creatures[:2])
	s.Require().NoError(err)
	s.Assert().Equal(2, again.Replaced)

	got, err := repo.Get(s.ctx, monsters.GetInput{Name: "purple worm"})
	s.Require().NoError(err)
	s.Assert().Equal(size.Gargantuan, got.Creature.Size)

	_, err = catalog.Seed(s.ctx, nil, creatures)
	s.Assert().True(errors.IsInvalidArgument(err))
}
