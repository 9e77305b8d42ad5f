// Package pipeline orchestrates one document's journey from decoded report
// text to per-category seed-data files.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fleetlab/ocmr/internal/cache"
	"github.com/fleetlab/ocmr/internal/model"
	"github.com/fleetlab/ocmr/internal/report"
	"github.com/fleetlab/ocmr/internal/seed"
)

// Pipeline processes report documents. Safe for concurrent use: each
// document is independent and no state crosses document boundaries.
type Pipeline struct {
	cache  cache.Cache // nil when caching is disabled
	config *model.Config
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return &Pipeline{
		cache:  c,
		config: cfg,
	}
}

// DocumentResult is the outcome of parsing one document
type DocumentResult struct {
	Path       string
	Categories map[model.Category][]model.Record
	CacheHit   bool
}

// Samples returns the total record count across categories
func (r *DocumentResult) Samples() int {
	n := 0
	for _, records := range r.Categories {
		n += len(records)
	}
	return n
}

// ProcessDocument reads, flattens, and parses one report file. HTML input
// (by extension) is reduced to visible text first. Results are cached by
// content hash when caching is enabled.
func (p *Pipeline) ProcessDocument(ctx context.Context, path string) (*DocumentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	key := cache.ContentKey(raw)
	if p.cache != nil {
		if data, found := p.cache.Get(key); found {
			var categories map[model.Category][]model.Record
			if err := json.Unmarshal(data, &categories); err == nil {
				return &DocumentResult{Path: path, Categories: categories, CacheHit: true}, nil
			}
			// Corrupt entry: drop it and fall through to a fresh parse
			_ = p.cache.Delete(key)
		}
	}

	text := string(raw)
	if isHTMLPath(path) {
		text, err = report.FlattenHTML(text)
		if err != nil {
			return nil, fmt.Errorf("flatten html: %w", err)
		}
	}

	categories := report.Parse(text)

	if p.cache != nil && len(categories) > 0 {
		if data, err := json.Marshal(categories); err == nil {
			_ = p.cache.Set(key, data, 0)
		}
	}

	return &DocumentResult{Path: path, Categories: categories}, nil
}

// WriteOutputs routes each category's records to its mapped output file,
// finalizing (dedupe, sort, re-id) before writing. A category without a
// mapping falls back to the Default mapping when present; otherwise its
// records are dropped with a warning. Returns the written file paths.
func (p *Pipeline) WriteOutputs(result *DocumentResult, outputs map[model.Category]string) ([]string, error) {
	// Fixed iteration order keeps runs deterministic even when two
	// categories fall back to the same Default target
	order := []model.Category{
		model.CategoryPort, model.CategoryStbd,
		model.CategoryNo1, model.CategoryNo2, model.CategoryDefault,
	}

	var written []string
	for _, category := range order {
		records, present := result.Categories[category]
		if !present {
			continue
		}
		target, ok := outputs[category]
		if !ok {
			target, ok = outputs[model.CategoryDefault]
		}
		if !ok || target == "" {
			fmt.Fprintf(os.Stderr, "Warning: no output file mapped for category %q (%d records dropped)\n",
				category, len(records))
			continue
		}

		final := seed.Finalize(records)
		if err := seed.Save(target, final); err != nil {
			return written, fmt.Errorf("category %s: %w", category, err)
		}
		if p.config.Output.Verbose {
			fmt.Fprintf(os.Stderr, "  -> %d records for category %q to %s\n", len(final), category, target)
		}
		written = append(written, target)
	}
	return written, nil
}

func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
