package client

import (
	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-bestiary/internal/handlers/bestiary/v1alpha1"
)

var (
	rollSource string
	rollSlug   string
	rollRanged bool
)

var rollHPCmd = &cobra.Command{
	Use:   "roll-hp NAME",
	Short: "Roll hit points for a monster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodRollHitPoints, rollFields(args[0]))
	},
}

var rollAttackCmd = &cobra.Command{
	Use:   "roll-attack NAME ATTACK",
	Short: "Roll a full attack line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := rollFields(args[0])
		fields["attack"] = args[1]
		if rollRanged {
			fields["ranged"] = true
		}
		return invoke(cmd, v1alpha1.MethodRollAttack, fields)
	},
}

func rollFields(name string) map[string]interface{} {
	fields := withSource(map[string]interface{}{"name": name}, rollSource)
	if rollSlug != "" {
		fields["slug"] = rollSlug
	}
	return fields
}

func init() {
	for _, cmd := range []*cobra.Command{rollHPCmd, rollAttackCmd} {
		cmd.Flags().StringVar(&rollSource, "source", "", "Source book when the name is ambiguous")
		cmd.Flags().StringVar(&rollSlug, "slug", "", "Templates to apply before rolling")
	}
	rollAttackCmd.Flags().BoolVar(&rollRanged, "ranged", false, "Roll a ranged attack line")
}
