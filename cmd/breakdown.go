package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/model"
	"github.com/theirongolddev/vowbudget/internal/planner"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Show the budget split across categories",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	sess, err := e.session()
	if err != nil {
		return noPlanHint(err)
	}
	printBreakdown(sess)

	if e.progress.HasUnclaimedRewards() {
		fmt.Println(cli.Gold("  You have unclaimed rewards. Run `vowbudget progress` to see them."))
		fmt.Println()
	}
	return nil
}

func printBreakdown(sess *planner.Session) {
	plan := sess.Plan()
	lines := sess.Lines()

	maxPct := 0
	for _, c := range plan.Categories {
		maxPct = max(maxPct, c.Percentage)
	}

	rows := make([][]string, 0, len(lines)+2)
	for _, l := range lines {
		rows = append(rows, []string{
			l.Category.Name,
			cli.FormatPercent(l.Category.Percentage),
			cli.FormatMoney(l.Amount),
			cli.RenderShareBar(l.Category.Percentage, maxPct, 20),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "100%", cli.FormatMoney(plan.Budget), ""})

	fmt.Println()
	fmt.Println(cli.RenderTitle("WEDDING BUDGET  " + cli.FormatMoney(plan.Budget)))
	fmt.Println()
	fmt.Printf("  %s  %s guests  %s per guest\n",
		cli.Header(planLabel(plan)),
		cli.Value(cli.FormatNumber(int64(plan.Guests))),
		cli.Money(cli.FormatMoney(sess.PerGuest())),
	)
	if detail := planDetail(plan); detail != "" {
		fmt.Printf("  %s\n", cli.Muted(detail))
	}
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Share", "Amount", ""},
		Rows:    rows,
	}))
	fmt.Println()
}

func planLabel(p *planner.Plan) string {
	if p.Mode == model.ModePersonalized {
		return "Personalized estimate"
	}
	return "Quick estimate"
}

func planDetail(p *planner.Plan) string {
	var parts []string
	if o, ok := p.StyleOption(); ok {
		parts = append(parts, o.Label)
	}
	if o, ok := p.SeasonOption(); ok {
		parts = append(parts, o.Label)
	}
	if o, ok := p.VenueOption(); ok {
		parts = append(parts, o.Label)
	}
	return strings.Join(parts, " · ")
}
