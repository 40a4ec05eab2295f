package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the party's recent crafts, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum entries to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	session, cleanup, err := openSession()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := session.send(map[string]any{"type": "history", "limit": historyLimit}); err != nil {
		return err
	}

	var history historyReply
	if err := session.expect("history", &history); err != nil {
		return err
	}

	if len(history.Entries) == 0 {
		fmt.Println("No crafts recorded for this party.")
		return nil
	}

	fmt.Printf("=== Craft history (party %s) ===\n", partyID)

	for _, entry := range history.Entries {
		fmt.Printf("%s  %dx %s", entry.CraftedAt.Format(time.RFC3339), entry.Result.Quantity, entry.Result.Ref)
		if entry.Cost > 0 {
			fmt.Printf("  (cost %d)", entry.Cost)
		}
		fmt.Println()
	}

	return nil
}
