package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/planner"
	"github.com/theirongolddev/vowbudget/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagQuickEstimate bool
	flagBudget        int
	flagGuests        int
	flagStyle         string
	flagSeason        string
	flagVenue         string
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Build a new budget plan",
	Long: `Build a new budget plan with the estimate wizard.

Pass --budget and --guests to skip the wizard. Adding --style, --season and
--venue makes it a personalized plan, which earns XP and the Budget Master
achievement.`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().BoolVar(&flagQuickEstimate, "quick", false, "Preselect the quick flow (budget and guests only)")
	estimateCmd.Flags().IntVar(&flagBudget, "budget", 0, "Total budget in USD")
	estimateCmd.Flags().IntVar(&flagGuests, "guests", 0, "Guest count")
	estimateCmd.Flags().StringVar(&flagStyle, "style", "", "Wedding style (intimate, traditional, luxury, destination, custom)")
	estimateCmd.Flags().StringVar(&flagSeason, "season", "", "Season (summer, fall, winter, spring)")
	estimateCmd.Flags().StringVar(&flagVenue, "venue", "", "Venue type (hotel, garden, historic, beach, urban)")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(_ *cobra.Command, _ []string) error {
	answers, err := collectAnswers()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("\n  Estimate cancelled.")
			return nil
		}
		return err
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	xpBefore := e.progress.XP()
	plan, unlocked, err := planner.Finish(answers, e.engine)
	if err != nil {
		return err
	}
	sess := planner.NewSession(plan, e.engine, e.plans, e.logger)
	if err := sess.Save(); err != nil {
		return err
	}
	e.logger.Debug("plan saved", "mode", plan.Mode, "budget", plan.Budget.String(), "guests", plan.Guests)

	printBreakdown(sess)

	if gained := e.progress.XP() - xpBefore; gained > 0 {
		fmt.Printf("  %s  (level %d)\n", cli.XP("+"+cli.FormatXP(gained)), e.progress.Level())
	}
	if unlocked {
		if a, ok := catalog.Achievement(catalog.BudgetMaster); ok {
			fmt.Printf("  %s %s\n", cli.Gold("Achievement unlocked:"), a.Name)
		}
		fmt.Println("  Spin the reward wheel with `vowbudget spin`.")
	}
	fmt.Println()
	return nil
}

// collectAnswers uses the flags when budget and guests are both given and
// runs the wizard otherwise.
func collectAnswers() (planner.Answers, error) {
	vals := tui.NewWizardValues()

	if flagBudget > 0 && flagGuests > 0 {
		vals.Budget, vals.CustomBudget = "custom", strconv.Itoa(flagBudget)
		vals.Guests, vals.CustomGuests = "custom", strconv.Itoa(flagGuests)
		if !flagQuickEstimate && (flagStyle != "" || flagSeason != "" || flagVenue != "") {
			vals.Mode = string(model.ModePersonalized)
			vals.Style, vals.Season, vals.Venue = flagStyle, flagSeason, flagVenue
		}
		return vals.Answers()
	}

	if !flagQuickEstimate {
		vals.Mode = string(model.ModePersonalized)
	}
	if err := tui.NewWizardForm(vals).Run(); err != nil {
		return planner.Answers{}, err
	}
	return vals.Answers()
}
