// Package bestiary implements the orchestrator that looks up creatures,
// reshapes them with templates and rolls their dice
package bestiary

//go:generate mockgen -destination=mock/mock_service.go -package=bestiarymock github.com/KirkDiggler/rpg-bestiary/internal/orchestrators/bestiary Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates/blueprint"
)

// Service defines the interface for bestiary operations
type Service interface {
	// Lookup
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	SearchMonsters(ctx context.Context, input *SearchMonstersInput) (*SearchMonstersOutput, error)

	// Templates. An incompatible template is reported in the output, not
	// as an error.
	ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error)
	ApplyTemplates(ctx context.Context, input *ApplyTemplatesInput) (*ApplyTemplatesOutput, error)

	// Dice
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)
	RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error)
}

// Config holds the dependencies for the bestiary orchestrator
type Config struct {
	MonsterRepo monsters.Repository
	Engine      engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo monsters.Repository
	engine      engine.Engine
}

// New creates a new bestiary orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		monsterRepo: cfg.MonsterRepo,
		engine:      cfg.Engine,
	}, nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	slog.DebugContext(ctx, "getting monster", "name", input.Name, "source", input.Source)

	out, err := o.monsterRepo.Get(ctx, monsters.GetInput{Name: input.Name, Source: input.Source})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %q", input.Name)
	}

	return &GetMonsterOutput{
		Creature:  out.Creature,
		StatBlock: out.Creature.StatBlock(),
		StoredAt:  out.StoredAt,
	}, nil
}

func (o *orchestrator) SearchMonsters(
	ctx context.Context,
	input *SearchMonstersInput,
) (*SearchMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.monsterRepo.Search(ctx, monsters.SearchInput{Query: input.Query, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search monsters")
	}

	slog.DebugContext(ctx, "searched monsters",
		"query", input.Query,
		"matches", len(out.Matches),
		"suggestions", len(out.Suggestions))

	return &SearchMonstersOutput{
		Matches:     out.Matches,
		Suggestions: out.Suggestions,
	}, nil
}

func (o *orchestrator) ListTemplates(
	ctx context.Context,
	input *ListTemplatesInput,
) (*ListTemplatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var creature *monster.Creature
	if input.Name != "" {
		out, err := o.monsterRepo.Get(ctx, monsters.GetInput{Name: input.Name, Source: input.Source})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get monster %q", input.Name)
		}
		creature = out.Creature
	}

	kinds := templates.Kinds()
	output := &ListTemplatesOutput{Templates: make([]TemplateInfo, 0, len(kinds))}
	for _, kind := range kinds {
		tmpl, err := kind.Template()
		if err != nil {
			return nil, err
		}
		info := TemplateInfo{
			Kind:       kind,
			Name:       tmpl.Name(),
			Diagnostic: tmpl.DiagnosticMessage(),
		}
		if creature != nil {
			_, err := tmpl.Apply(creature)
			compatible := err == nil
			info.Compatible = &compatible
		}
		output.Templates = append(output.Templates, info)
	}

	return output, nil
}

func (o *orchestrator) ApplyTemplates(
	ctx context.Context,
	input *ApplyTemplatesInput,
) (*ApplyTemplatesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	selections, err := selectionsFor(input.Slug, input.Selections)
	if err != nil {
		return nil, err
	}
	bp, err := blueprint.New(selections)
	if err != nil {
		return nil, err
	}

	got, err := o.monsterRepo.Get(ctx, monsters.GetInput{Name: input.Name, Source: input.Source})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %q", input.Name)
	}

	output := &ApplyTemplatesOutput{
		Original:      got.Creature,
		OriginalStats: got.Creature.StatBlock(),
		Slug:          blueprint.EncodeSlug(selections),
	}

	result, err := bp.Reshape(got.Creature)
	if err != nil {
		failure, ok := blueprint.AsIncompatible(err)
		if !ok {
			return nil, errors.Wrapf(err, "failed to apply templates to %s", got.Creature.Label())
		}
		slog.InfoContext(ctx, "template pipeline stopped",
			"monster", got.Creature.Label(),
			"slug", output.Slug,
			"template", failure.Template,
			"applied", failure.Applied())
		output.Failure = failure
		return output, nil
	}

	stats := result.StatBlock()
	output.Result = result
	output.ResultStats = &stats

	slog.DebugContext(ctx, "applied templates",
		"monster", got.Creature.Label(),
		"slug", output.Slug,
		"challenge_rating", result.ChallengeRating.String())

	return output, nil
}

func (o *orchestrator) RollHitPoints(
	ctx context.Context,
	input *RollHitPointsInput,
) (*RollHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	creature, err := o.reshaped(ctx, input.Name, input.Source, input.Slug)
	if err != nil {
		return nil, err
	}

	roll, err := o.engine.RollHitPoints(ctx, &engine.RollHitPointsInput{Creature: creature})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll hit points")
	}

	return &RollHitPointsOutput{Creature: creature, Roll: roll}, nil
}

func (o *orchestrator) RollAttack(ctx context.Context, input *RollAttackInput) (*RollAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	creature, err := o.reshaped(ctx, input.Name, input.Source, input.Slug)
	if err != nil {
		return nil, err
	}

	roll, err := o.engine.RollAttack(ctx, &engine.RollAttackInput{
		Creature: creature,
		Attack:   input.Attack,
		Ranged:   input.Ranged,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll attack")
	}

	return &RollAttackOutput{Creature: creature, Roll: roll}, nil
}

// reshaped loads a creature and applies the slug's templates. Here an
// incompatible template is an error since there is nothing to roll.
func (o *orchestrator) reshaped(ctx context.Context, name, source, slug string) (*monster.Creature, error) {
	selections, err := blueprint.DecodeSlug(slug)
	if err != nil {
		return nil, err
	}
	bp, err := blueprint.New(selections)
	if err != nil {
		return nil, err
	}

	got, err := o.monsterRepo.Get(ctx, monsters.GetInput{Name: name, Source: source})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %q", name)
	}

	creature, err := bp.Reshape(got.Creature)
	if err != nil {
		return nil, err
	}
	return creature, nil
}

// selectionsFor resolves either a slug or explicit selections. Explicit
// selections are validated, then clamped the same way a slug is.
func selectionsFor(slug string, selections []blueprint.Selection) ([]blueprint.Selection, error) {
	if slug != "" && len(selections) > 0 {
		return nil, errors.InvalidArgument("slug and selections are mutually exclusive")
	}
	if slug != "" {
		return blueprint.DecodeSlug(slug)
	}
	if _, err := blueprint.New(selections); err != nil {
		return nil, err
	}
	return blueprint.DecodeSlug(blueprint.EncodeSlug(selections))
}
