package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/carefinder/carefinder-cli/internal/faircost"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Fair-cost gap for a quoted weekly fee",
	Long: `Compute the gap between a facility's quoted weekly fee and the
regulatory fair cost of care lower bound, with negotiation guidance.

Examples:
  # Professional tone (default)
  gap --price 1912 --fair-cost 1048

  # Empathetic phrasing, JSON output
  gap --price 1912 --fair-cost 1048 --tone empathetic --format json`,
	RunE: runGap,
}

func init() {
	f := gapCmd.Flags()
	f.Float64("price", 0, "quoted weekly fee")
	f.Float64("fair-cost", 0, "fair cost of care lower bound")
	f.String("tone", "", "narrative tone: professional, empathetic, or urgent (overrides config)")
	f.String("format", "text", "output format: text or json")
	_ = gapCmd.MarkFlagRequired("price")

	rootCmd.AddCommand(gapCmd)
}

func runGap(cmd *cobra.Command, _ []string) error {
	price, _ := cmd.Flags().GetFloat64("price")
	fairCost, _ := cmd.Flags().GetFloat64("fair-cost")
	format, _ := cmd.Flags().GetString("format")

	if price < 0 || fairCost < 0 {
		return eris.New("gap: --price and --fair-cost must be >= 0")
	}
	if format != "text" && format != "json" {
		return eris.Errorf("gap: --format must be text or json (got %q)", format)
	}

	tone := faircost.Tone(cfg.Gap.Tone)
	if v, _ := cmd.Flags().GetString("tone"); v != "" {
		tone = faircost.Tone(v)
	}

	calc := faircost.NewGapCalculator(tone)
	gap := calc.Calculate(price, fairCost)

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(gap)
	}

	fmt.Printf("Weekly gap:   %.2f\n", gap.GapWeek)
	fmt.Printf("Yearly gap:   %.2f\n", gap.GapYear)
	fmt.Printf("5-year gap:   %.2f\n", gap.Gap5Year)
	fmt.Printf("Gap percent:  %.1f%%\n", gap.GapPercent)
	fmt.Printf("\n%s\n", gap.Narrative)
	if len(gap.Recommendations) > 0 {
		fmt.Println("\nRecommendations:")
		for _, r := range gap.Recommendations {
			fmt.Printf("  - %s\n", r)
		}
	}
	return nil
}
