package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/carefinder/carefinder-cli/internal/faircost"
	"github.com/carefinder/carefinder-cli/internal/model"
)

var bandCmd = &cobra.Command{
	Use:   "band",
	Short: "Affordability band for a quoted weekly fee",
	Long: `Place a facility's quoted weekly fee on the A-E affordability band
between the fair cost lower bound and the local upper reference price,
with a confidence score and expected price range.

Examples:
  band --price 1200 --lower 1048 --upper 1900
  band --price 1200 --lower 1048 --upper 1900 --rating Outstanding --chain`,
	RunE: runBand,
}

func init() {
	f := bandCmd.Flags()
	f.Float64("price", 0, "quoted weekly fee")
	f.Float64("lower", 0, "fair cost lower bound")
	f.Float64("upper", 0, "local upper reference price")
	f.String("rating", "", "regulator overall rating, if known")
	f.Bool("chain", false, "facility belongs to a chain operator")
	f.Float64("quality-score", 0, "normalized facilities/quality score [0,1], if known")
	f.String("format", "text", "output format: text or json")
	_ = bandCmd.MarkFlagRequired("price")

	rootCmd.AddCommand(bandCmd)
}

func runBand(cmd *cobra.Command, _ []string) error {
	price, _ := cmd.Flags().GetFloat64("price")
	lower, _ := cmd.Flags().GetFloat64("lower")
	upper, _ := cmd.Flags().GetFloat64("upper")
	rating, _ := cmd.Flags().GetString("rating")
	chain, _ := cmd.Flags().GetBool("chain")
	quality, _ := cmd.Flags().GetFloat64("quality-score")
	format, _ := cmd.Flags().GetString("format")

	if price < 0 || lower < 0 || upper < 0 {
		return eris.New("band: prices must be >= 0")
	}
	if format != "text" && format != "json" {
		return eris.Errorf("band: --format must be text or json (got %q)", format)
	}

	result := faircost.CalculateBandResult(price, lower, upper, faircost.ConfidenceInput{
		HasBenchmark:    lower > 0,
		RegulatorRating: model.RegulatorRating(rating),
		Chain:           chain,
		FacilitiesScore: quality,
	})

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("Band:           %s\n", result.Band)
	fmt.Printf("Ratio:          %.2f\n", result.Ratio)
	fmt.Printf("Confidence:     %.0f\n", result.Confidence)
	fmt.Printf("Expected range: %.2f - %.2f\n", result.ExpectedMin, result.ExpectedMax)
	fmt.Printf("\n%s\n", result.Reasoning)
	return nil
}
