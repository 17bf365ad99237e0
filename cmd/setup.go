package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/vowbudget/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to vowbudget!")
	fmt.Println()

	// 1. Theme
	fmt.Println("  1. Color theme")
	fmt.Println("     (1) Blush [default]")
	fmt.Println("     (2) Champagne")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "champagne"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "blush"
	}
	fmt.Println()

	// 2. Discount lifetime
	fmt.Println("  2. How long should a won discount code stay valid?")
	fmt.Printf("     Minutes [%d]\n", cfg.Rewards.DiscountMinutes)
	fmt.Print("     > ")
	minutes, _ := reader.ReadString('\n')
	if m, err := strconv.Atoi(strings.TrimSpace(minutes)); err == nil && m > 0 {
		cfg.Rewards.DiscountMinutes = m
	}
	fmt.Println()

	// 3. Database location
	fmt.Println("  3. Database file")
	fmt.Printf("     Leave empty for %s\n", config.DBPath(config.DefaultConfig()))
	if cfg.General.DBPath != "" {
		fmt.Printf("     Current: %s\n", cfg.General.DBPath)
	}
	fmt.Print("     > ")
	dbPath, _ := reader.ReadString('\n')
	if dbPath = strings.TrimSpace(dbPath); dbPath != "" {
		cfg.General.DBPath = dbPath
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `vowbudget setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
