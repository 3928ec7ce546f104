package rpgtoolkit

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
)

var _ core.Entity = (*CreatureEntity)(nil)

// CreatureEntity wraps monster.Creature to implement core.Entity interface
type CreatureEntity struct {
	*monster.Creature
}

// GetID returns the creature's name and source as a lowercase slug
func (c *CreatureEntity) GetID() string {
	id := slugify(c.Name)
	if c.Source != "" {
		id += "@" + slugify(c.Source)
	}
	return id
}

// GetType returns the entity type for rpg-toolkit
func (c *CreatureEntity) GetType() string {
	return "monster"
}

// wrapCreature converts a monster.Creature to a CreatureEntity
func wrapCreature(creature *monster.Creature) *CreatureEntity {
	return &CreatureEntity{Creature: creature}
}

func slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
