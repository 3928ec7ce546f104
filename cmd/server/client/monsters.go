package client

import (
	"github.com/spf13/cobra"

	v1alpha1 "github.com/KirkDiggler/rpg-bestiary/internal/handlers/bestiary/v1alpha1"
)

var (
	source      string
	searchLimit int
)

var getMonsterCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Get a monster and its stat block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return invoke(cmd, v1alpha1.MethodGetMonster, withSource(map[string]interface{}{
			"name": args[0],
		}, source))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search monster names",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]interface{}{"query": args[0]}
		if searchLimit > 0 {
			fields["limit"] = float64(searchLimit)
		}
		return invoke(cmd, v1alpha1.MethodSearchMonsters, fields)
	},
}

func init() {
	getMonsterCmd.Flags().StringVar(&source, "source", "", "Source book when the name is ambiguous")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum matches (server default when 0)")
}
