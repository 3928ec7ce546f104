package bestiary

import (
	"time"

	"github.com/KirkDiggler/rpg-bestiary/internal/engine"
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/repositories/monsters"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates/blueprint"
)

// GetMonsterInput names a creature. Source may be empty when the name is
// defined by a single source.
type GetMonsterInput struct {
	Name   string
	Source string
}

// GetMonsterOutput is a stored creature and its derived statistics
type GetMonsterOutput struct {
	Creature  *monster.Creature
	StatBlock monster.StatBlock
	StoredAt  time.Time
}

// SearchMonstersInput is a free text query
type SearchMonstersInput struct {
	Query string
	Limit int
}

// SearchMonstersOutput lists matching names, or close names when nothing
// matched
type SearchMonstersOutput struct {
	Matches     []monsters.Match
	Suggestions []string
}

// ListTemplatesInput optionally names a creature to check compatibility
// against
type ListTemplatesInput struct {
	Name   string
	Source string
}

// TemplateInfo describes one template
type TemplateInfo struct {
	Kind       templates.Kind
	Name       string
	Diagnostic string
	// Compatible is set only when a creature was named. It is true when
	// applying the template once would succeed.
	Compatible *bool
}

// ListTemplatesOutput lists every known template
type ListTemplatesOutput struct {
	Templates []TemplateInfo
}

// ApplyTemplatesInput selects a creature and the templates to apply to it,
// either as a slug or as selections but not both
type ApplyTemplatesInput struct {
	Name       string
	Source     string
	Slug       string
	Selections []blueprint.Selection
}

// ApplyTemplatesOutput holds the original creature and either the result or
// the failure. Slug is the canonical form of the requested templates.
type ApplyTemplatesOutput struct {
	Original      *monster.Creature
	OriginalStats monster.StatBlock
	Result        *monster.Creature
	ResultStats   *monster.StatBlock
	Failure       *blueprint.IncompatibleError
	Slug          string
}

// RollHitPointsInput selects a creature, optionally reshaped by a slug
type RollHitPointsInput struct {
	Name   string
	Source string
	Slug   string
}

// RollHitPointsOutput is a rolled hit point total for the creature
type RollHitPointsOutput struct {
	Creature *monster.Creature
	Roll     *engine.RollHitPointsOutput
}

// RollAttackInput selects one attack of a creature, optionally reshaped by
// a slug
type RollAttackInput struct {
	Name   string
	Source string
	Slug   string
	Attack string
	Ranged bool
}

// RollAttackOutput is every rolled iteration of the attack
type RollAttackOutput struct {
	Creature *monster.Creature
	Roll     *engine.RollAttackOutput
}
