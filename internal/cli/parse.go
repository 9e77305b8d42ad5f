package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleetlab/ocmr/internal/model"
	"github.com/fleetlab/ocmr/internal/pipeline"
)

var (
	parseOutputs map[string]string
	parseNoCache bool
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse one lab report into per-category seed-data files",
	Long: `Parse segments one flattened lab report (plain text or HTML) into sample
blocks, classifies each block by equipment side (Port, Stbd, No1, No2,
Default), extracts the tracked oil-analysis parameters, and writes one
JSON seed-data file per mapped category.

Categories without an --out mapping fall back to the Default mapping when
one is given; otherwise their records are dropped with a warning.

Example:
  ocmr parse Sagara_ME.txt --out Port=port.json --out Stbd=stbd.json
  ocmr parse Gajabahu_DA1.txt --out Default=da1.json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringToStringVar(&parseOutputs, "out", nil, "category=path output mapping (repeatable)")
	parseCmd.Flags().BoolVar(&parseNoCache, "no-cache", false, "disable the parse-result cache")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !parseNoCache
	cfg.Output.Verbose = verbose

	outputs := make(map[model.Category]string, len(parseOutputs))
	for category, target := range parseOutputs {
		outputs[model.Category(category)] = target
	}
	if len(outputs) == 0 {
		return fmt.Errorf("at least one --out category=path mapping is required")
	}

	p := pipeline.NewPipeline(cfg)

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsing: %s\n", path)
	}

	result, err := p.ProcessDocument(context.Background(), path)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Samples() == 0 {
		fmt.Fprintf(os.Stderr, "No sample IDs found in %s\n", path)
		return nil
	}

	written, err := p.WriteOutputs(result, outputs)
	if err != nil {
		return fmt.Errorf("write outputs: %w", err)
	}

	for _, target := range written {
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", target)
	}
	return nil
}
