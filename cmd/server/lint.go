package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgebound/crafting-api/internal/grammar"
	"github.com/forgebound/crafting-api/internal/registry"
)

var lintDataDir string

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check entity annotations for recipe authoring mistakes",
	Long: `Lint parses every entity note in the data directory and reports what the
runtime absorbs silently: malformed recipe blocks and recipes whose refs do
not resolve against the registry. Exits non-zero when problems are found.`,
	RunE: runLint,
}

func init() {
	lintCmd.Flags().StringVar(&lintDataDir, "data-dir", "./data", "directory holding the entity definition files")
}

func runLint(cmd *cobra.Command, args []string) error {
	reg, err := registry.NewFileStore(lintDataDir)
	if err != nil {
		return fmt.Errorf("failed to load entity registry: %w", err)
	}

	problems := 0

	for _, kind := range reg.Kinds() {
		for _, entity := range reg.All(kind) {
			if entity.Note == "" {
				continue
			}

			for _, problem := range grammar.Diagnose(entity.Note) {
				problems++
				fmt.Printf("%s %q: block %d: %s", entity.Ref, entity.Name, problem.Block, problem.Message)
				if problem.Line != "" {
					fmt.Printf(" (line: %q)", problem.Line)
				}
				fmt.Println()
			}

			for blockIndex, recipe := range grammar.ParseAll(entity.Note) {
				for _, ref := range recipe.Refs() {
					if _, err := reg.Lookup(ref.Kind, ref.ID); err != nil {
						problems++
						fmt.Printf("%s %q: recipe %d: ref %s does not resolve, the catalog will drop this recipe\n",
							entity.Ref, entity.Name, blockIndex+1, ref)
					}
				}
			}
		}
	}

	if problems > 0 {
		return fmt.Errorf("found %d problem(s)", problems)
	}

	fmt.Println("All entity annotations are clean.")
	return nil
}
