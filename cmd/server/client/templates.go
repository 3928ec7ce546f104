package client

import (
	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-bestiary/internal/handlers/bestiary/v1alpha1"
)

var templateSource string

var listTemplatesCmd = &cobra.Command{
	Use:   "templates [NAME]",
	Short: "List templates, checking compatibility when a monster is named",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]interface{}{}
		if len(args) == 1 {
			fields["name"] = args[0]
		}
		return invoke(cmd, v1alpha1.MethodListTemplates, withSource(fields, templateSource))
	},
}

var applySource string

var applyCmd = &cobra.Command{
	Use:   "apply NAME SLUG",
	Short: "Apply templates to a monster",
	Long: `Apply the templates named by SLUG, for example "advanced-giant-x2",
and print the reshaped stat block or the reason the templates stopped.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodApplyTemplates, withSource(map[string]interface{}{
			"name": args[0],
			"slug": args[1],
		}, applySource))
	},
}

func init() {
	listTemplatesCmd.Flags().StringVar(&templateSource, "source", "", "Source book when the name is ambiguous")
	applyCmd.Flags().StringVar(&applySource, "source", "", "Source book when the name is ambiguous")
}
