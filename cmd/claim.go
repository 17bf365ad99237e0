package cmd

import (
	"fmt"

	"github.com/theirongolddev/vowbudget/internal/cli"

	"github.com/spf13/cobra"
)

var claimCmd = &cobra.Command{
	Use:     "claim <reward-id>",
	Short:   "Claim an unlocked reward",
	Example: "  vowbudget claim wedding_planning_guide",
	Args:    cobra.ExactArgs(1),
	RunE:    runClaim,
}

func init() {
	rootCmd.AddCommand(claimCmd)
}

func runClaim(_ *cobra.Command, args []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	id := args[0]
	for _, r := range e.progress.Snapshot().Rewards {
		if r.ID != id {
			continue
		}
		e.progress.ClaimReward(id)
		fmt.Printf("\n  Claimed %s\n", cli.Gold(r.Title))
		fmt.Printf("  %s\n", cli.Muted(r.Description))
		if r.Code != "" {
			fmt.Printf("  Code: %s\n", cli.Gold(r.Code))
		}
		fmt.Println()
		return nil
	}
	return fmt.Errorf("no unlocked reward %q (see `vowbudget progress`)", id)
}
