package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var guestsCmd = &cobra.Command{
	Use:     "guests <count>",
	Short:   "Change the guest count",
	Example: "  vowbudget guests 140",
	Args:    cobra.ExactArgs(1),
	RunE:    runGuests,
}

func init() {
	rootCmd.AddCommand(guestsCmd)
}

func runGuests(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(strings.ReplaceAll(args[0], ",", ""))
	if err != nil {
		return fmt.Errorf("guest count %q is not a whole number", args[0])
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
	if err := sess.SetGuests(n); err != nil {
		return err
	}
	printBreakdown(sess)
	return nil
}
