// Package main is the entry point for the bestiary gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-bestiary/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-bestiary",
	Short: "Bestiary gRPC server",
	Long:  `rpg-bestiary stores monster stat blocks and reshapes them with the Advanced, Giant and Young templates.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(reshapeCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
