package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetlab/ocmr/internal/llm"
	"github.com/fleetlab/ocmr/internal/model"
	"github.com/fleetlab/ocmr/internal/seed"
)

var (
	genSeedFile string
	genPerShip  int
	genRandSeed int64
	genLLM      bool
	genLLMModel string
	genBaseURL  string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize additional oil-analysis records",
	Long: `Generate appends synthetic records for every ship in the fleet to an
existing seed-data file, with realistic parameter ranges, a heuristic
health score derived from wear metals and viscosity, and matching
status/trend/recommendation fields. New record ids continue from the
highest existing id.

With --llm, recommendation text is written by an OpenAI-compatible model
instead of the static per-status table. LLM output never affects scores
or statuses, and any provider failure falls back to the table.

Example:
  ocmr generate --seed-file lib/seed-data-new.json --per-ship 50
  ocmr generate --seed-file seed.json --per-ship 10 --rand-seed 42
  ocmr generate --seed-file seed.json --per-ship 10 --llm --llm-model gpt-4o-mini`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genSeedFile, "seed-file", "lib/seed-data-new.json", "seed-data file to extend")
	generateCmd.Flags().IntVar(&genPerShip, "per-ship", 50, "records to generate per ship")
	generateCmd.Flags().Int64Var(&genRandSeed, "rand-seed", 0, "RNG seed (0 uses the current time)")

	// LLM flags
	generateCmd.Flags().BoolVar(&genLLM, "llm", false, "write recommendations with an LLM")
	generateCmd.Flags().StringVar(&genLLMModel, "llm-model", "gpt-4o-mini", "LLM model name")
	generateCmd.Flags().StringVar(&genBaseURL, "llm-base-url", "", "OpenAI-compatible endpoint override")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	existing, err := seed.Load(genSeedFile)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d existing records\n", len(existing))

	randSeed := genRandSeed
	if randSeed == 0 {
		randSeed = time.Now().UnixNano()
	}

	gen := seed.NewGenerator(randSeed, time.Now())
	all := gen.Generate(existing, genPerShip)
	added := all[len(existing):]

	if genLLM {
		if err := rewriteRecommendations(added); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM recommendations unavailable, keeping defaults: %v\n", err)
		}
	}

	if err := seed.Save(genSeedFile, all); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "✓ Updated %s: %d total records (%d new)\n", genSeedFile, len(all), len(added))
	for _, line := range seed.FormatCounts(seed.CountByShip(all)) {
		fmt.Fprintf(os.Stderr, "  %s\n", line)
	}
	return nil
}

// rewriteRecommendations replaces the static recommendation text on newly
// generated records with provider-written sentences. Per-record failures
// keep the static text.
func rewriteRecommendations(records []model.Record) error {
	cfg := model.DefaultConfig().LLM
	cfg.Provider = "openai"
	cfg.Model = genLLMModel
	cfg.BaseURL = genBaseURL
	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	if cfg.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	rec, err := llm.NewRecommender(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	for i := range records {
		summary := fmt.Sprintf("oil_hrs=%s, fe_ppm=%s, viscosity_40=%s, health_score=%.3f",
			records[i].OilHrs, records[i].FePPM, records[i].Viscosity40, records[i].MLRawScore)
		text, err := rec.Recommend(ctx, records[i].Status, summary)
		if err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: recommendation for %s kept static: %v\n",
					records[i].ShipName, err)
			}
			continue
		}
		records[i].Recommendation = text
	}
	return nil
}
