// Package main is the entry point for the character sheet API
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "rpg-sheet-api",
	Short:        "RPG character sheet GraphQL API",
	Long:         `rpg-sheet-api serves D&D 5e character sheets and the SRD spell catalog over GraphQL.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedSpellsCmd)
}
