package monsters

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-bestiary/internal/redis"
)

const (
	monsterKeyPrefix = "monster:"
	sourcesKeyPrefix = "monster:sources:"
	namesKey         = "monster:names"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis monster repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed monster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func recordKey(nameKey, sourceKey string) string {
	return monsterKeyPrefix + nameKey + ":" + sourceKey
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	nameKey := fold(input.Creature.Name)
	sourceKey := fold(input.Creature.Source)
	key := recordKey(nameKey, sourceKey)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	rec := record{
		Creature: input.Creature,
		StoredAt: r.clock.Now().UTC(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal monster")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.HSet(ctx, namesKey, nameKey, input.Creature.Name)
	pipe.HSet(ctx, sourcesKeyPrefix+nameKey, sourceKey, input.Creature.Source)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store monster")
	}

	slog.DebugContext(ctx, "stored monster",
		"name", input.Creature.Name,
		"source", input.Creature.Source,
		"replaced", exists > 0)

	return &PutOutput{StoredAt: rec.StoredAt, Replaced: exists > 0}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	nameKey := fold(input.Name)
	sources, err := r.sources(ctx, nameKey)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		names, err := r.names(ctx)
		if err != nil {
			return nil, err
		}
		return nil, notFound(input.Name, names)
	}

	sourceKey, err := resolveSource(input.Name, input.Source, sources)
	if err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, recordKey(nameKey, sourceKey)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster %q not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get monster")
	}

	var rec record
	if err := json.Unmarshal([]byte(result), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster")
	}
	if rec.Creature == nil {
		return nil, errors.Internalf("monster %q has an empty record", input.Name)
	}

	creature, err := monster.New(*rec.Creature)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "stored monster %q is invalid", input.Name)
	}

	return &GetOutput{Creature: creature, StoredAt: rec.StoredAt}, nil
}

func (r *redisRepository) Search(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	if fold(input.Query) == "" {
		return nil, errors.InvalidArgument(errQueryEmpty)
	}
	limit, err := searchLimit(input.Limit)
	if err != nil {
		return nil, err
	}

	names, err := r.names(ctx)
	if err != nil {
		return nil, err
	}

	ranked := rank(input.Query, names, limit)
	if len(ranked) == 0 {
		return &SearchOutput{Suggestions: suggest(input.Query, names, limit)}, nil
	}

	output := &SearchOutput{Matches: make([]Match, 0, len(ranked))}
	for _, s := range ranked {
		sources, err := r.sources(ctx, s.key)
		if err != nil {
			return nil, err
		}
		output.Matches = append(output.Matches, Match{
			Name:    s.name,
			Sources: sortedValues(sources),
			Score:   s.score,
		})
	}
	return output, nil
}

func (r *redisRepository) ListSources(ctx context.Context, input ListSourcesInput) (*ListSourcesOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	sources, err := r.sources(ctx, fold(input.Name))
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		names, err := r.names(ctx)
		if err != nil {
			return nil, err
		}
		return nil, notFound(input.Name, names)
	}

	return &ListSourcesOutput{Sources: sortedValues(sources)}, nil
}

func (r *redisRepository) names(ctx context.Context) (map[string]string, error) {
	names, err := r.client.HGetAll(ctx, namesKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monster names")
	}
	return names, nil
}

func (r *redisRepository) sources(ctx context.Context, nameKey string) (map[string]string, error) {
	sources, err := r.client.HGetAll(ctx, sourcesKeyPrefix+nameKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monster sources")
	}
	return sources, nil
}
