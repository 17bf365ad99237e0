package cmd

import (
	"fmt"

	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/game"

	"github.com/spf13/cobra"
)

var spinCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spin the reward wheel (unlocked by Budget Master)",
	RunE:  runSpin,
}

func init() {
	rootCmd.AddCommand(spinCmd)
}

func runSpin(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.engine.CanSpin(); err != nil {
		return err
	}
	idx := e.engine.Spin()
	prize, err := e.engine.ApplySpin(idx)
	if err != nil {
		return err
	}

	fmt.Println()
	for i, s := range game.Slices {
		marker := "   "
		label := cli.Muted(s)
		if i == idx {
			marker = cli.Gold(" ▸ ")
			label = cli.Gold(s)
		}
		fmt.Printf("  %s%s\n", marker, label)
	}
	fmt.Println()

	if d := prize.Discount; d != nil {
		fmt.Printf("  You won %s! Your code is %s\n", cli.Gold(prize.Slice), cli.Gold(d.Code))
		fmt.Printf("  It expires in %s. Watch it with `vowbudget discount --watch`.\n",
			cli.FormatCountdown(e.engine.DiscountTTL))
	} else {
		fmt.Printf("  You won the %s!\n", cli.Gold(prize.Slice))
	}
	fmt.Println()
	return nil
}
