// Package main is the entry point for the crafting server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgebound/crafting-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "crafting-api",
	Short: "Crafting rule engine server",
	Long:  `crafting-api serves a party's crafting menu over WebSocket: recipes are parsed from entity annotations, checked against the party inventory, and executed atomically.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
