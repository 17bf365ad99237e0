package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the plan, progress and history",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagYes {
		fmt.Print("\n  This erases your plan, XP, achievements and rewards. Continue? [y/N] ")
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("  Nothing changed.")
			return nil
		}
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.Close()

	if err := e.progress.Reset(); err != nil {
		return fmt.Errorf("resetting progress: %w", err)
	}
	if err := e.db.Reset(); err != nil {
		return fmt.Errorf("resetting database: %w", err)
	}
	fmt.Println("\n  All clear. Start over with `vowbudget estimate`.")
	fmt.Println()
	return nil
}
