package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var craftIndex int

var craftCmd = &cobra.Command{
	Use:   "craft",
	Short: "Craft the recipe at the given catalog index",
	Long: `Open the party's catalog, select the entry at --index, and attempt the
craft. A refused craft prints the crafter's reason; only transport and server
failures exit non-zero.`,
	RunE: runCraft,
}

func init() {
	craftCmd.Flags().IntVar(&craftIndex, "index", 0, "catalog index of the recipe to craft")
}

func runCraft(cmd *cobra.Command, args []string) error {
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

	if craftIndex < 0 || craftIndex >= len(catalog.Entries) {
		return fmt.Errorf("index %d is out of range, the catalog has %d entries", craftIndex, len(catalog.Entries))
	}

	if err := session.send(map[string]any{"type": "select", "index": craftIndex}); err != nil {
		return err
	}

	var selected selectionReply
	if err := session.expect("selection", &selected); err != nil {
		return err
	}

	if selected.Detail != nil {
		fmt.Printf("Crafting %s", selected.Detail.ResultName)
		if selected.Detail.Cost > 0 {
			fmt.Printf(" (cost %d, balance %d)", selected.Detail.Cost, selected.Detail.Balance)
		}
		fmt.Println("...")
	}

	if err := session.send(map[string]any{"type": "craft"}); err != nil {
		return err
	}

	var outcome outcomeReply
	if err := session.expect("outcome", &outcome); err != nil {
		return err
	}

	// The server follows every outcome with the rebuilt catalog.
	var rebuilt catalogReply
	if err := session.expect("catalog", &rebuilt); err != nil {
		return err
	}

	if !outcome.Success {
		fmt.Printf("Craft refused: %s\n", outcome.Reason)
		return nil
	}

	fmt.Println("Craft succeeded.")

	if craftIndex < len(rebuilt.Entries) {
		entry := rebuilt.Entries[craftIndex]
		if !entry.Craftable {
			fmt.Printf("Next craft of %s would be refused: %s\n", entry.ResultName, entry.Reason)
		}
	}

	return nil
}
