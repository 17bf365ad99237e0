package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/theirongolddev/vowbudget/internal/cli"
	"github.com/theirongolddev/vowbudget/internal/expiry"
	"github.com/theirongolddev/vowbudget/internal/model"

	"github.com/spf13/cobra"
)

var flagWatch bool

var discountCmd = &cobra.Command{
	Use:   "discount",
	Short: "Show the active discount code and its countdown",
	RunE:  runDiscount,
}

func init() {
	discountCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "Keep counting down until the code expires")
	rootCmd.AddCommand(discountCmd)
}

func runDiscount(_ *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	d := e.progress.ActiveDiscount()
	if _, expired := expiry.Check(e.progress, time.Now()); expired {
		fmt.Printf("\n  Your discount code %s has expired.\n\n", d.Code)
		return nil
	}
	if d == nil {
		fmt.Println("\n  No active discount. Win one with `vowbudget spin`.")
		fmt.Println()
		return nil
	}

	fmt.Printf("\n  %s  %s\n", cli.Gold(d.Code), d.Option)
	if !flagWatch {
		fmt.Printf("  Expires in %s\n\n", cli.FormatCountdown(expiry.Remaining(d, time.Now())))
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w := &expiry.Watcher{
		Store:  e.progress,
		Logger: e.logger,
		OnTick: func(left time.Duration) {
			fmt.Printf("\r  Expires in %s ", cli.Warn(cli.FormatCountdown(left)))
		},
		OnExpire: func(d model.ActiveDiscount) {
			fmt.Printf("\r  Your discount code %s has expired.\n\n", d.Code)
		},
	}
	<-w.Start(ctx)
	if ctx.Err() != nil {
		fmt.Println()
		fmt.Println()
	}
	return nil
}
