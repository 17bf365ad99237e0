package cmd

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:     "budget <amount>",
	Short:   "Change the total budget",
	Example: "  vowbudget budget 32,500",
	Args:    cobra.ExactArgs(1),
	RunE:    runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, args []string) error {
	raw := strings.NewReplacer(",", "", "$", "").Replace(args[0])
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("amount %q is not a number", args[0])
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
	if err := sess.SetBudget(amount); err != nil {
		return err
	}
	printBreakdown(sess)
	printNewAchievements(e, before)
	return nil
}
