package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgebound/crafting-api/internal/registry"
)

var schemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for entity definition files",
	Long:  `Emit the JSON Schema describing the entity definition file format, for editor validation of the data directory.`,
	RunE:  runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOut, "out", "", "write the schema to this file instead of stdout")
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := registry.SchemaJSON()
	if err != nil {
		return fmt.Errorf("failed to build schema: %w", err)
	}

	if schemaOut == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(schemaOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	fmt.Printf("Schema written to %s\n", schemaOut)
	return nil
}
