package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the recipes visible to the party",
	Long: `List the party's crafting menu the way a connected client sees it:
entries in catalog order, each marked craftable or carrying the reason the
crafter would refuse it.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	session, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.send(map[string]any{"type": "open"}); err != nil {
		return err
	}

	var catalog catalogReply
	if err := session.expect("catalog", &catalog); err != nil {
		return err
	}

	fmt.Printf("=== %s (party %s) ===\n", catalog.Label, partyID)

	if len(catalog.Entries) == 0 {
		fmt.Println("No recipes are visible for this party.")
		return nil
	}

	for i, entry := range catalog.Entries {
		marker := " "
		if i == catalog.Selection.Cursor {
			marker = ">"
		}

		status := "craftable"
		if !entry.Craftable {
			status = entry.Reason
		}

		fmt.Printf("%s [%d] %-28s %s\n", marker, i, entry.ResultName, status)
	}

	return nil
}
