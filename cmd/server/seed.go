package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet-api/internal/services/spell"
)

var seedLevels []int32

var seedSpellsCmd = &cobra.Command{
	Use:   "seed-spells",
	Short: "Import SRD spells into the catalog",
	Long:  `Fetch spells from the D&D 5e SRD API and upsert them into the spell catalog. Without --level every level is imported.`,
	RunE:  runSeedSpells,
}

func init() {
	seedSpellsCmd.Flags().Int32SliceVar(&seedLevels, "level", nil, "spell level to import (repeatable, 0 for cantrips)")
}

func runSeedSpells(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	out, err := a.spells.ImportSpells(ctx, &spell.ImportSpellsInput{Levels: seedLevels})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d spells, skipped %d\n", out.Imported, out.Skipped)
	return nil
}
