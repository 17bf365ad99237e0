package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/vowbudget/internal/catalog"
	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/expiry"
	"github.com/theirongolddev/vowbudget/internal/progress"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show level, XP, achievements and rewards",
	RunE:  runProgress,
}

func init() {
	rootCmd.AddCommand(progressCmd)
}

func runProgress(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	expiry.Check(e.progress, time.Now())
	snap := e.progress.Snapshot()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LEVEL %d  %s", snap.Level, cli.FormatXP(snap.XP))))
	fmt.Println()
	fmt.Printf("  %s  %s to level %d\n\n",
		cli.RenderProgressBar(snap.XP%progress.XPPerLevel, progress.XPPerLevel, 30),
		cli.FormatXP(progress.XPToNextLevel(snap.XP)),
		snap.Level+1,
	)

	held := make(map[string]bool, len(snap.Achievements))
	for _, a := range snap.Achievements {
		held[a.ID] = true
	}
	rows := make([][]string, 0, len(catalog.Achievements()))
	for _, a := range catalog.Achievements() {
		status := cli.Muted("locked")
		if held[a.ID] {
			status = cli.Gold("unlocked")
		}
		rows = append(rows, []string{a.Name, a.Description, status})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Achievements",
		Headers: []string{"Achievement", "How", "Status"},
		Rows:    rows,
	}))
	fmt.Println()

	if len(snap.Rewards) > 0 {
		rows = rows[:0]
		for _, r := range snap.Rewards {
			status := cli.Warn("unclaimed")
			if r.Claimed {
				status = cli.Money("claimed")
			}
			rows = append(rows, []string{r.ID, r.Title, status})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Rewards",
			Headers: []string{"ID", "Reward", "Status"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	if d := snap.ActiveDiscount; d != nil {
		fmt.Printf("  Discount %s %s, expires in %s\n\n",
			cli.Gold(d.Code), d.Option, cli.FormatCountdown(expiry.Remaining(d, time.Now())))
	}
	if err := e.engine.CanSpin(); err == nil {
		fmt.Println("  The reward wheel is ready. Run `vowbudget spin`.")
		fmt.Println()
	} else if e.progress.HasUnclaimedRewards() {
		fmt.Println("  Claim a reward with `vowbudget claim <id>`.")
		fmt.Println()
	}
	return nil
}
