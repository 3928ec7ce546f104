// Package monsters defines the interface for creature persistence and lookup
package monsters

//go:generate mockgen -destination=mock/mock_repository.go -package=monstersmock github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

const (
	// DefaultSearchLimit caps search results when no limit is given
	DefaultSearchLimit = 10

	// MaxSearchLimit is the largest accepted search limit
	MaxSearchLimit = 50

	// Error messages
	errCreatureNil  = "creature cannot be nil"
	errNameEmpty    = "name cannot be empty"
	errQueryEmpty   = "query cannot be empty"
	errNegativeSize = "limit cannot be negative"
)

// Repository stores creatures keyed by name and source. Lookups are case
// insensitive and every returned creature is a copy.
type Repository interface {
	// Put stores a creature, replacing any creature with the same name and source
	// Returns errors.InvalidArgument for a nil creature
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves a creature by name and, optionally, source
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if nothing matches
	// Returns errors.FailedPrecondition when the name exists in several
	// sources and no source was given
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Search finds creature names matching a free text query
	// Returns errors.InvalidArgument for an empty query or a bad limit
	Search(ctx context.Context, input SearchInput) (*SearchOutput, error)

	// ListSources lists the sources that define a creature name
	// Returns errors.NotFound if the name is unknown
	ListSources(ctx context.Context, input ListSourcesInput) (*ListSourcesOutput, error)
}

// PutInput defines the input for storing a creature
type PutInput struct {
	Creature *monster.Creature
}

// PutOutput defines the output for storing a creature
type PutOutput struct {
	StoredAt time.Time
	Replaced bool
}

// GetInput defines the input for getting a creature
type GetInput struct {
	Name   string
	Source string
}

// GetOutput defines the output for getting a creature
type GetOutput struct {
	Creature *monster.Creature
	StoredAt time.Time
}

// SearchInput defines the input for searching creatures
type SearchInput struct {
	Query string
	Limit int
}

// Match is one creature name found by a search
type Match struct {
	Name    string
	Sources []string
	Score   float64
}

// SearchOutput defines the output for searching creatures. Suggestions are
// close names offered only when nothing matched.
type SearchOutput struct {
	Matches     []Match
	Suggestions []string
}

// ListSourcesInput defines the input for listing a creature's sources
type ListSourcesInput struct {
	Name string
}

// ListSourcesOutput defines the output for listing a creature's sources
type ListSourcesOutput struct {
	Sources []string
}

// record is the stored form of a creature
type record struct {
	Creature *monster.Creature `json:"creature"`
	StoredAt time.Time         `json:"stored_at"`
}

// validatePut rejects creatures that could not be read back, so every
// backend stores the same set
func validatePut(input PutInput) error {
	if input.Creature == nil {
		return errors.InvalidArgument(errCreatureNil)
	}
	if input.Creature.Name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	if err := input.Creature.Validate(); err != nil {
		return errors.Wrapf(err, "invalid monster %q", input.Creature.Name)
	}
	return nil
}
