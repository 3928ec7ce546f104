// Package catalog loads creature definitions from YAML and seeds a store
// with them.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters"
)

//go:embed data/bestiary.yaml
var defaultCatalog []byte

// Default returns the creatures bundled with the binary
func Default() ([]*monster.Creature, error) {
	return LoadFromReader(bytes.NewReader(defaultCatalog))
}

// Load reads a catalog file
func Load(path string) ([]*monster.Creature, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	creatures, err := LoadFromReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return creatures, nil
}

// LoadFromReader decodes a YAML list of creature attribute bags. Unknown
// fields are rejected. Every entry is built with monster.New and all
// invalid entries are reported together in the "entries" metadata.
func LoadFromReader(r io.Reader) ([]*monster.Creature, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var bags []monster.Creature
	if err := dec.Decode(&bags); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}

	creatures := make([]*monster.Creature, 0, len(bags))
	seen := make(map[string]int, len(bags))
	var problems []interface{}
	for i, bag := range bags {
		creature, err := monster.New(bag)
		if err != nil {
			problems = append(problems, entryProblem(i, bag.Name, errors.GetMessage(err)))
			continue
		}

		key := strings.ToLower(creature.Name) + "\x00" + strings.ToLower(creature.Source)
		if first, dup := seen[key]; dup {
			problems = append(problems, entryProblem(i, bag.Name, fmt.Sprintf("duplicates entry %d", first)))
			continue
		}
		seen[key] = i
		creatures = append(creatures, creature)
	}

	if len(problems) > 0 {
		return nil, errors.InvalidArgumentf("catalog has %d invalid entries", len(problems)).
			WithMeta("entries", problems)
	}
	return creatures, nil
}

func entryProblem(index int, name, problem string) string {
	if name == "" {
		return fmt.Sprintf("entry %d: %s", index, problem)
	}
	return fmt.Sprintf("entry %d (%s): %s", index, name, problem)
}

// SeedOutput reports what Seed stored
type SeedOutput struct {
	Stored   int
	Replaced int
}

// Seed stores every creature in repo, stopping at the first failure
func Seed(ctx context.Context, repo monsters.Repository, creatures []*monster.Creature) (*SeedOutput, error) {
	if repo == nil {
		return nil, errors.InvalidArgument("repository is required")
	}

	out := &SeedOutput{}
	for _, creature := range creatures {
		put, err := repo.Put(ctx, monsters.PutInput{Creature: creature})
		if err != nil {
			return out, errors.Wrapf(err, "failed to seed %s", creature.Label())
		}
		out.Stored++
		if put.Replaced {
			out.Replaced++
		}
	}

	slog.InfoContext(ctx, "seeded bestiary",
		"stored", out.Stored,
		"replaced", out.Replaced)

	return out, nil
}
