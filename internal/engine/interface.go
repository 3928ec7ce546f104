// Package engine rolls the random parts of a creature's statistics with the
// rpg toolkit
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-bestiary/internal/engine Engine

import (
	"context"
)

// Engine turns a creature's derived statistics into dice rolls
type Engine interface {
	// RollHitPoints rolls the creature's hit dice and adds the flat bonus
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)

	// RollAttack rolls every iteration of one named attack
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error)
}
