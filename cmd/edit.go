package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/progress"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <category> <percent>",
	Short: "Set one category's share and rebalance the rest",
	Example: `  vowbudget edit Venue 40
  vowbudget edit Photography 15`,
	Args: cobra.ExactArgs(2),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	pct, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("percent %q is not a number", args[1])
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	sess, err := e.session()
	if err != nil {
		return noPlanHint(err)
	}

	before := len(e.progress.Snapshot().Achievements)
	if err := sess.EditCategory(args[0], pct); err != nil {
		return err
	}
	printBreakdown(sess)
	printNewAchievements(e, before)
	return nil
}

// printNewAchievements lists achievements unlocked since the count before.
func printNewAchievements(e *env, before int) {
	held := e.progress.Snapshot().Achievements
	for _, a := range held[min(before, len(held)):] {
		fmt.Printf("  %s %s  %s\n", cli.Gold("Achievement unlocked:"), a.Name, cli.XP("+"+cli.FormatXP(progress.AchievementBonusXP)))
		if a.Reward != nil {
			fmt.Printf("  %s %s\n", cli.Muted("Reward:"), a.Reward.Title)
		}
	}
	if len(held) > before {
		fmt.Println()
	}
}
