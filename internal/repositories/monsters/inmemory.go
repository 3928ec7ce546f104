package monsters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu      sync.RWMutex
	clock   clock.Clock
	store   map[string]record
	names   map[string]string
	sources map[string]map[string]string
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock:   c,
		store:   make(map[string]record),
		names:   make(map[string]string),
		sources: make(map[string]map[string]string),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Put stores a copy of the creature
func (r *InMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	nameKey := fold(input.Creature.Name)
	sourceKey := fold(input.Creature.Source)
	key := recordKey(nameKey, sourceKey)

	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.store[key]
	rec := record{
		Creature: input.Creature.Clone(),
		StoredAt: r.clock.Now().UTC(),
	}
	r.store[key] = rec
	r.names[nameKey] = input.Creature.Name
	if r.sources[nameKey] == nil {
		r.sources[nameKey] = make(map[string]string)
	}
	r.sources[nameKey][sourceKey] = input.Creature.Source

	return &PutOutput{StoredAt: rec.StoredAt, Replaced: replaced}, nil
}

// Get retrieves a copy of a stored creature
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	nameKey := fold(input.Name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := r.sources[nameKey]
	if len(sources) == 0 {
		return nil, notFound(input.Name, r.names)
	}
	sourceKey, err := resolveSource(input.Name, input.Source, sources)
	if err != nil {
		return nil, err
	}

	rec, ok := r.store[recordKey(nameKey, sourceKey)]
	if !ok {
		return nil, errors.NotFoundf("monster %q not found", input.Name)
	}

	return &GetOutput{Creature: rec.Creature.Clone(), StoredAt: rec.StoredAt}, nil
}

// Search ranks stored names against the query
func (r *InMemoryRepository) Search(_ context.Context, input SearchInput) (*SearchOutput, error) {
	if fold(input.Query) == "" {
		return nil, errors.InvalidArgument(errQueryEmpty)
	}
	limit, err := searchLimit(input.Limit)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ranked := rank(input.Query, r.names, limit)
	if len(ranked) == 0 {
		return &SearchOutput{Suggestions: suggest(input.Query, r.names, limit)}, nil
	}

	output := &SearchOutput{Matches: make([]Match, 0, len(ranked))}
	for _, s := range ranked {
		output.Matches = append(output.Matches, Match{
			Name:    s.name,
			Sources: sortedValues(r.sources[s.key]),
			Score:   s.score,
		})
	}
	return output, nil
}

// ListSources lists the sources defining a name
func (r *InMemoryRepository) ListSources(_ context.Context, input ListSourcesInput) (*ListSourcesOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sources := r.sources[fold(input.Name)]
	if len(sources) == 0 {
		return nil, notFound(input.Name, r.names)
	}
	return &ListSourcesOutput{Sources: sortedValues(sources)}, nil
}
