package monsters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters"
	"github.com/KirkDiggler/rpg-bestiary/internal/testutils"
)

var storedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// RepositoryTestSuite runs the same behaviour against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func(t *testing.T, c clock.Clock) (monsters.Repository, func())
	repo    monsters.Repository
	cleanup func()

	ogre *monster.Creature
	ooze *monster.Creature
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(_ *testing.T, c clock.Clock) (monsters.Repository, func()) {
			return monsters.NewInMemory(c), func() {}
		},
	})
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, c clock.Clock) (monsters.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := monsters.NewRedis(&monsters.RedisConfig{Client: client, Clock: c})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo(s.T(), clock.Fixed{At: storedAt})

	s.ogre = testutils.Ogre(s.T())
	s.ooze = testutils.GrayOoze(s.T())
	for _, c := range []*monster.Creature{s.ogre, s.ooze} {
		_, err := s.repo.Put(s.ctx, monsters.PutInput{Creature: c})
		s.Require().NoError(err)
	}
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryTestSuite) putVariant(name, source string) *monster.Creature {
	c := s.ogre.Clone()
	c.Name = name
	c.Source = source
	_, err := s.repo.Put(s.ctx, monsters.PutInput{Creature: c})
	s.Require().NoError(err)
	return c
}

func (s *RepositoryTestSuite) TestPut() {
	s.Run("reports replacement", func() {
		out, err := s.repo.Put(s.ctx, monsters.PutInput{Creature: s.ogre})
		s.Require().NoError(err)
		s.Assert().True(out.Replaced)
		s.Assert().Equal(storedAt, out.StoredAt)
	})

	s.Run("rejects nil creature", func() {
		_, err := s.repo.Put(s.ctx, monsters.PutInput{})
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("rejects empty name", func() {
		_, err := s.repo.Put(s.ctx, monsters.PutInput{Creature: &monster.Creature{}})
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("rejects invalid creature", func() {
		broken := s.ogre.Clone()
		broken.Name = "Broken Ogre"
		broken.HitDice = 0
		_, err := s.repo.Put(s.ctx, monsters.PutInput{Creature: broken})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))

		_, err = s.repo.Get(s.ctx, monsters.GetInput{Name: "Broken Ogre"})
		s.Assert().True(errors.IsNotFound(err))
	})
}

func (s *RepositoryTestSuite) TestGet() {
	s.Run("case insensitive without source", func() {
		out, err := s.repo.Get(s.ctx, monsters.GetInput{Name: "  GRAY   ooze"})
		s.Require().NoError(err)
		s.Assert().Equal(s.ooze, out.Creature)
		s.Assert().Equal(storedAt, out.StoredAt)
	})

	s.Run("with source", func() {
		out, err := s.repo.Get(s.ctx, monsters.GetInput{Name: "ogre", Source: "bestiary 1"})
		s.Require().NoError(err)
		s.Assert().Equal(s.ogre, out.Creature)
	})

	s.Run("returns a copy", func() {
		out, err := s.repo.Get(s.ctx, monsters.GetInput{Name: "Ogre"})
		s.Require().NoError(err)
		out.Creature.MeleeAttacks["bite"] = monster.Attack{}

		again, err := s.repo.Get(s.ctx, monsters.GetInput{Name: "Ogre"})
		s.Require().NoError(err)
		s.Assert().NotContains(again.Creature.MeleeAttacks, "bite")
	})

	s.Run("unknown name suggests close names", func() {
		_, err := s.repo.Get(s.ctx, monsters.GetInput{Name: "Ogri"})
		s.Require().True(errors.IsNotFound(err))
		s.Assert().Equal([]interface{}{"Ogre"}, errors.GetMeta(err)["suggestions"])
	})

	s.Run("unknown source", func() {
		_, err := s.repo.Get(s.ctx, monsters.GetInput{Name: "Ogre", Source: "Bestiary 6"})
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("empty name", func() {
		_, err := s.repo.Get(s.ctx, monsters.GetInput{})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *RepositoryTestSuite) TestGetAmbiguous() {
	s.putVariant("Ogre", testutils.SourceBestiary3)

	_, err := s.repo.Get(s.ctx, monsters.GetInput{Name: "ogre"})
	s.Require().True(errors.IsFailedPrecondition(err))
	s.Assert().Equal(
		[]interface{}{testutils.SourceBestiary1, testutils.SourceBestiary3},
		errors.GetMeta(err)["sources"],
	)

	out, err := s.repo.Get(s.ctx, monsters.GetInput{Name: "ogre", Source: testutils.SourceBestiary3})
	s.Require().NoError(err)
	s.Assert().Equal(testutils.SourceBestiary3, out.Creature.Source)
}

func (s *RepositoryTestSuite) TestListSources() {
	s.putVariant("OGRE", testutils.SourceBestiary3)

	out, err := s.repo.ListSources(s.ctx, monsters.ListSourcesInput{Name: "Ogre"})
	s.Require().NoError(err)
	s.Assert().Equal([]string{testutils.SourceBestiary1, testutils.SourceBestiary3}, out.Sources)

	_, err = s.repo.ListSources(s.ctx, monsters.ListSourcesInput{Name: "Tarrasque"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestSearch() {
	s.putVariant("Ogre Mage", testutils.SourceBestiary1)
	s.putVariant("Fog Ogre", testutils.SourceBestiary3)

	s.Run("exact name first", func() {
		out, err := s.repo.Search(s.ctx, monsters.SearchInput{Query: "ogre"})
		s.Require().NoError(err)
		s.Require().Len(out.Matches, 3)
		s.Assert().Equal("Ogre", out.Matches[0].Name)
		s.Assert().Equal([]string{testutils.SourceBestiary1}, out.Matches[0].Sources)
		s.Assert().Empty(out.Suggestions)
	})

	s.Run("token prefixes", func() {
		out, err := s.repo.Search(s.ctx, monsters.SearchInput{Query: "mag og"})
		s.Require().NoError(err)
		s.Require().Len(out.Matches, 1)
		s.Assert().Equal("Ogre Mage", out.Matches[0].Name)
	})

	s.Run("limit", func() {
		out, err := s.repo.Search(s.ctx, monsters.SearchInput{Query: "ogre", Limit: 1})
		s.Require().NoError(err)
		s.Assert().Len(out.Matches, 1)
	})

	s.Run("suggestions when nothing matches", func() {
		out, err := s.repo.Search(s.ctx, monsters.SearchInput{Query: "grey ooze"})
		s.Require().NoError(err)
		s.Assert().Empty(out.Matches)
		s.Assert().Equal([]string{"Gray Ooze"}, out.Suggestions)
	})

	s.Run("bad input", func() {
		_, err := s.repo.Search(s.ctx, monsters.SearchInput{Query: "   "})
		s.Assert().True(errors.IsInvalidArgument(err))

		_, err = s.repo.Search(s.ctx, monsters.SearchInput{Query: "ogre", Limit: -1})
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}
