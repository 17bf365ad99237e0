package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/game"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent XP, achievement and wheel events",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of events to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	events, err := e.db.RecentEvents(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("\n  No events yet. Finish a personalized estimate to start earning XP.")
		fmt.Println()
		return nil
	}
	total, err := e.db.EventCount()
	if err != nil {
		return err
	}

	now := time.Now()
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			game.Describe(ev.Kind, ev.Detail),
			cli.FormatAgo(ev.At, now),
			cli.FormatNumber(int64(ev.XP)),
			strconv.Itoa(ev.Level),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("History (%d of %d)", len(events), total),
		Headers: []string{"Event", "When", "XP", "Level"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
