package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fleetlab/ocmr/internal/model"
	"github.com/fleetlab/ocmr/internal/pipeline"
	"github.com/fleetlab/ocmr/internal/worker"
)

var (
	mappingsFile string
	concurrency  int
	batchNoCache bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse a set of mapped report documents in parallel",
	Long: `Batch reads a YAML mappings file that routes each input document's
categories to output seed-data files, then parses all documents
concurrently. Missing input files are skipped with a warning; the run
continues with the remaining documents.

Mappings file format:

  input_dir: temp_text_extracts
  output_dir: lib/seed-data
  documents:
    - file: Sagara_ME.txt
      outputs:
        Port: seed-data-sagara-main-engine-port.json
        Stbd: seed-data-sagara-main-engine-starboard.json
    - file: Gajabahu_DA1.txt
      outputs:
        Default: seed-data-gajabahu-diesel-alternator-no1.json

Example:
  ocmr batch --mappings mappings.yaml
  ocmr batch --mappings mappings.yaml --concurrency 8 --no-cache`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&mappingsFile, "mappings", "mappings.yaml", "document-to-output mappings file")
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().BoolVar(&batchNoCache, "no-cache", false, "disable the parse-result cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	mappings, err := loadMappings(mappingsFile)
	if err != nil {
		return err
	}

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !batchNoCache
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Verbose = verbose

	jobs := buildJobs(mappings)
	if len(jobs) == 0 {
		fmt.Fprintf(os.Stderr, "No input documents found\n")
		return nil
	}

	fmt.Fprintf(os.Stderr, "Processing %d documents with %d workers\n", len(jobs), concurrency)

	pool := worker.NewPool(pipeline.NewPipeline(cfg), concurrency)
	results := pool.Run(context.Background(), jobs)

	successCount := 0
	failureCount := 0
	recordCount := 0

	for _, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Job.Path, result.Err)
			continue
		}
		successCount++
		if result.Parsed.Samples() == 0 {
			fmt.Fprintf(os.Stderr, "✓ %s: no sample IDs found\n", result.Job.Path)
			continue
		}

		recordCount += result.Parsed.Samples()
		note := ""
		if result.Parsed.CacheHit {
			note = " (cached)"
		}
		fmt.Fprintf(os.Stderr, "✓ %s: %d samples, %d files%s\n",
			result.Job.Path, result.Parsed.Samples(), len(result.Written), note)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d ok, %d failed, %d records\n", successCount, failureCount, recordCount)
	return nil
}

// loadMappings reads and decodes the batch routing table
func loadMappings(path string) (*model.Mappings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mappings file: %w", err)
	}
	var mappings model.Mappings
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("decode mappings file %s: %w", path, err)
	}
	return &mappings, nil
}

// buildJobs resolves mapping entries to jobs, skipping missing inputs with
// a warning rather than aborting the batch.
func buildJobs(mappings *model.Mappings) []worker.DocumentJob {
	var jobs []worker.DocumentJob
	for _, doc := range mappings.Documents {
		path := filepath.Join(mappings.InputDir, doc.File)
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			continue
		}

		outputs := make(map[model.Category]string, len(doc.Outputs))
		for category, target := range doc.Outputs {
			outputs[category] = filepath.Join(mappings.OutputDir, target)
		}
		jobs = append(jobs, worker.DocumentJob{Path: path, Outputs: outputs})
	}
	return jobs
}
