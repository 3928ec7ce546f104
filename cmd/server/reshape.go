package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates/blueprint"
)

var (
	reshapeSource  string
	reshapeCatalog string
)

var reshapeCmd = &cobra.Command{
	Use:   "reshape NAME [SLUG]",
	Short: "Apply templates to a catalog creature without a server",
	Long: `Reshape looks a creature up in the bundled catalog (or --catalog) and
prints its stat block after applying the templates named by SLUG, for example
"advanced-giant-x2".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := blueprint.OriginalSlug
		if len(args) == 2 {
			slug = args[1]
		}
		return reshape(cmd.OutOrStdout(), args[0], reshapeSource, slug, reshapeCatalog)
	},
}

func init() {
	reshapeCmd.Flags().StringVar(&reshapeSource, "source", "", "source book when the name is ambiguous")
	reshapeCmd.Flags().StringVar(&reshapeCatalog, "catalog", "", "YAML catalog to read instead of the bundled one")
}

type reshapeResult struct {
	Slug     string                       `json:"slug"`
	Original monster.StatBlock            `json:"original"`
	Result   *monster.StatBlock           `json:"result,omitempty"`
	Failure  *blueprint.IncompatibleError `json:"failure,omitempty"`
	Message  string                       `json:"message,omitempty"`
}

func reshape(w io.Writer, name, source, slug, catalogPath string) error {
	creatures, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	original, err := findCreature(creatures, name, source)
	if err != nil {
		return err
	}

	selections, err := blueprint.DecodeSlug(slug)
	if err != nil {
		return err
	}
	b, err := blueprint.New(selections)
	if err != nil {
		return err
	}

	out := reshapeResult{
		Slug:     blueprint.EncodeSlug(selections),
		Original: original.StatBlock(),
	}
	result, err := b.Reshape(original)
	if incompatible, ok := blueprint.AsIncompatible(err); ok {
		out.Failure = incompatible
		out.Message = incompatible.Message()
	} else if err != nil {
		return err
	} else {
		stats := result.StatBlock()
		out.Result = &stats
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// findCreature matches names case-insensitively. A name defined by several
// sources needs source to pick one.
func findCreature(creatures []*monster.Creature, name, source string) (*monster.Creature, error) {
	var found []*monster.Creature
	for _, c := range creatures {
		if !strings.EqualFold(c.Name, name) {
			continue
		}
		if source != "" && !strings.EqualFold(c.Source, source) {
			continue
		}
		found = append(found, c)
	}

	switch len(found) {
	case 0:
		return nil, errors.NotFoundf("monster %q not found in catalog", name)
	case 1:
		return found[0], nil
	default:
		sources := make([]interface{}, len(found))
		for i, c := range found {
			sources[i] = c.Source
		}
		return nil, errors.FailedPreconditionf("monster %q is defined by %d sources", name, len(found)).
			WithMeta("sources", sources)
	}
}
