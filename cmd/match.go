package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/carefinder/carefinder-cli/internal/enrich"
	"github.com/carefinder/carefinder-cli/internal/match"
	"github.com/carefinder/carefinder-cli/internal/model"
	"github.com/carefinder/carefinder-cli/internal/scoring"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank care facilities for a questionnaire",
	Long: `Score candidate facilities against a user questionnaire using the
multi-category weighted matching engine.

Reads the facility list and questionnaire from JSON or YAML files, plus an
optional directory of per-facility enrichment dumps (one file per facility
id, keyed by source type: cqc_detailed, staff_data, financial, fsa,
google_places).

Examples:
  # Rank facilities with default weights
  match --facilities homes.json --questionnaire needs.yaml

  # Include enrichment data and export the top 10 to CSV
  match --facilities homes.json --questionnaire needs.yaml \
    --enrichment-dir ./enrichment --limit 10 --format csv --output ranked.csv

  # Use the 100-point preset and a minimum normalized score
  match --facilities homes.json --questionnaire needs.yaml \
    --preset percent --min-score 0.5`,
	RunE: runMatch,
}

func init() {
	f := matchCmd.Flags()
	f.String("facilities", "", "path to the facility list (JSON or YAML)")
	f.String("questionnaire", "", "path to the questionnaire (JSON or YAML)")
	f.String("enrichment-dir", "", "directory of per-facility enrichment dumps")
	f.String("preset", "", "weight preset: full, percent, or compact (overrides config)")
	f.Int("limit", 0, "maximum number of results (overrides config)")
	f.Float64("min-score", 0, "minimum normalized score threshold (overrides config)")
	f.String("output", "", "output file path (default: stdout)")
	f.String("format", "table", "output format: table, csv, or json")
	_ = matchCmd.MarkFlagRequired("facilities")
	_ = matchCmd.MarkFlagRequired("questionnaire")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	facilitiesPath, _ := cmd.Flags().GetString("facilities")
	questionnairePath, _ := cmd.Flags().GetString("questionnaire")
	enrichmentDir, _ := cmd.Flags().GetString("enrichment-dir")
	outputPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")

	if format != "table" && format != "csv" && format != "json" {
		return eris.Errorf("match: --format must be table, csv, or json (got %q)", format)
	}

	preset := scoring.Preset(cfg.Match.Preset)
	if v, _ := cmd.Flags().GetString("preset"); v != "" {
		preset = scoring.Preset(v)
	}
	limit := cfg.Match.Limit
	if v, _ := cmd.Flags().GetInt("limit"); v > 0 {
		limit = v
	}
	minScore := cfg.Match.MinScore
	if v, _ := cmd.Flags().GetFloat64("min-score"); v > 0 {
		minScore = v
	}

	runID := uuid.New().String()
	log := zap.L().With(
		zap.String("command", "match"),
		zap.String("run_id", runID),
	)

	facilities, err := loadFacilities(facilitiesPath)
	if err != nil {
		return eris.Wrap(err, "match")
	}
	questionnaire, err := loadQuestionnaire(questionnairePath)
	if err != nil {
		return eris.Wrap(err, "match")
	}
	if err := questionnaire.Validate(); err != nil {
		return eris.Wrap(err, "match")
	}

	bundle := enrich.Bundle{}
	if enrichmentDir != "" {
		bundle, err = enrich.LoadBundle(ctx, enrichmentDir)
		if err != nil {
			return eris.Wrap(err, "match")
		}
	}

	log.Info("starting match run",
		zap.Int("facilities", len(facilities)),
		zap.Int("enriched", len(bundle)),
		zap.String("preset", string(preset)),
	)

	engine := match.NewEngine(preset)
	results, err := engine.Match(facilities, questionnaire, bundle)
	if err != nil {
		return eris.Wrap(err, "match")
	}

	// Apply threshold and limit after ranking.
	var filtered []model.MatchResult
	for _, r := range results {
		if r.NormalizedScore >= minScore {
			filtered = append(filtered, r)
		}
	}
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}

	log.Info("match run complete",
		zap.Int("ranked", len(results)),
		zap.Int("returned", len(filtered)),
	)

	if err := outputMatchResults(filtered, format, outputPath); err != nil {
		return err
	}
	if format == "table" {
		printMatchSummary(filtered)
	}
	return nil
}

func outputMatchResults(results []model.MatchResult, format, outputPath string) error {
	var w *os.File
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "match: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	} else {
		w = os.Stdout
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return eris.Wrap(err, "match: encode json")
		}
		return nil
	case "csv":
		return writeMatchCSV(w, results)
	default:
		return writeMatchTable(w, results)
	}
}

func writeMatchCSV(w *os.File, results []model.MatchResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"facility_id", "facility_name", "total_score", "normalized_score"}
	for _, c := range scoring.Calculators() {
		header = append(header, c.Name())
	}
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "match: write CSV header")
	}

	for _, r := range results {
		row := []string{
			r.FacilityID,
			r.FacilityName,
			fmt.Sprintf("%.2f", r.TotalScore),
			fmt.Sprintf("%.3f", r.NormalizedScore),
		}
		for _, c := range r.Categories {
			row = append(row, fmt.Sprintf("%.3f", c.Value))
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "match: write CSV row")
		}
	}
	return nil
}

func writeMatchTable(w *os.File, results []model.MatchResult) error {
	header := fmt.Sprintf("%-4s %-12s %-40s %8s %6s\n",
		"Rank", "ID", "Facility", "Score", "Norm")
	if _, err := fmt.Fprint(w, header); err != nil {
		return eris.Wrap(err, "match: write table header")
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 75)); err != nil {
		return eris.Wrap(err, "match: write table separator")
	}

	for i, r := range results {
		name := r.FacilityName
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		line := fmt.Sprintf("%-4d %-12s %-40s %8.2f %6.3f\n",
			i+1, r.FacilityID, name, r.TotalScore, r.NormalizedScore)
		if _, err := fmt.Fprint(w, line); err != nil {
			return eris.Wrap(err, "match: write table row")
		}
	}
	return nil
}

func printMatchSummary(results []model.MatchResult) {
	if len(results) == 0 {
		fmt.Println("No results.")
		return
	}
	var sum float64
	maxScore := results[0].NormalizedScore
	minScore := results[0].NormalizedScore
	for _, r := range results {
		sum += r.NormalizedScore
		if r.NormalizedScore > maxScore {
			maxScore = r.NormalizedScore
		}
		if r.NormalizedScore < minScore {
			minScore = r.NormalizedScore
		}
	}
	fmt.Printf("\n--- Summary ---\n")
	fmt.Printf("Facilities ranked: %d\n", len(results))
	fmt.Printf("Score range:       %.3f - %.3f\n", minScore, maxScore)
	fmt.Printf("Average score:     %.3f\n", sum/float64(len(results)))
	if len(results[0].Conditions) > 0 {
		fmt.Println("\nTriggered conditions:")
		for _, c := range results[0].Conditions {
			fmt.Printf("  - %s\n", c)
		}
	}
}
