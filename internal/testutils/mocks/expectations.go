// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters"
	monstersmock "github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters/mock"
)

// ExpectMonsterLookup expects one Get for the creature's name and source and
// returns a copy of it
func ExpectMonsterLookup(ctx context.Context, repo *monstersmock.MockRepository, creature *monster.Creature) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, monsters.GetInput{Name: creature.Name, Source: creature.Source}).
		Return(&monsters.GetOutput{
			Creature: creature.Clone(),
			StoredAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil)
}

// ExpectMonsterMissing expects one Get that finds nothing
func ExpectMonsterMissing(ctx context.Context, repo *monstersmock.MockRepository, name, source string) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, monsters.GetInput{Name: name, Source: source}).
		Return(nil, errors.NotFoundf("monster %q not found", name))
}
