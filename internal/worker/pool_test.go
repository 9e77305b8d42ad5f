package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fleetlab/ocmr/internal/model"
	"github.com/fleetlab/ocmr/internal/pipeline"
	"github.com/fleetlab/ocmr/internal/seed"
)

func testPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return pipeline.NewPipeline(cfg)
}

func writeDoc(t *testing.T, dir string, name, sampleID string) string {
	t.Helper()
	content := fmt.Sprintf("PORT ENGINE\n%s\nOil Running Hrs 1200\n", sampleID)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	return path
}

func TestPoolRunPreservesJobOrder(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	var jobs []DocumentJob
	for i := 0; i < 8; i++ {
		path := writeDoc(t, dir, fmt.Sprintf("doc%d.txt", i), fmt.Sprintf("S/I-M%d", 100+i))
		jobs = append(jobs, DocumentJob{
			Path: path,
			Outputs: map[model.Category]string{
				model.CategoryDefault: filepath.Join(outDir, fmt.Sprintf("out%d.json", i)),
			},
		})
	}

	results := NewPool(testPipeline(t), 4).Run(context.Background(), jobs)

	if len(results) != len(jobs) {
		t.Fatalf("results = %d, want %d", len(results), len(jobs))
	}
	for i, result := range results {
		if result.Job.Path != jobs[i].Path {
			t.Errorf("result %d is for %s, want %s", i, result.Job.Path, jobs[i].Path)
		}
		if result.Err != nil {
			t.Errorf("job %d failed: %v", i, result.Err)
			continue
		}
		if len(result.Written) != 1 {
			t.Errorf("job %d wrote %v, want one file", i, result.Written)
		}
	}

	// Each document's record landed in its own output
	for i := range jobs {
		records, err := seed.Load(filepath.Join(outDir, fmt.Sprintf("out%d.json", i)))
		if err != nil {
			t.Fatalf("load output %d: %v", i, err)
		}
		want := fmt.Sprintf("S/I-M%d", 100+i)
		if len(records) != 1 || records[0].SampleID != want {
			t.Errorf("output %d = %+v, want single record %s", i, records, want)
		}
	}
}

func TestPoolRunContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	good := writeDoc(t, dir, "good.txt", "S/I-M1")
	jobs := []DocumentJob{
		{Path: filepath.Join(dir, "missing.txt"), Outputs: map[model.Category]string{
			model.CategoryDefault: filepath.Join(outDir, "missing.json"),
		}},
		{Path: good, Outputs: map[model.Category]string{
			model.CategoryDefault: filepath.Join(outDir, "good.json"),
		}},
	}

	results := NewPool(testPipeline(t), 2).Run(context.Background(), jobs)

	if results[0].Err == nil {
		t.Errorf("missing input should fail its job")
	}
	if results[1].Err != nil {
		t.Errorf("good input failed: %v", results[1].Err)
	}
}

func TestPoolRunEmptyDocumentWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outDir := t.TempDir()

	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, []byte("no identifiers here"), 0644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	out := filepath.Join(outDir, "empty.json")
	results := NewPool(testPipeline(t), 1).Run(context.Background(), []DocumentJob{
		{Path: path, Outputs: map[model.Category]string{model.CategoryDefault: out}},
	})

	if results[0].Err != nil {
		t.Fatalf("empty document is not an error: %v", results[0].Err)
	}
	if len(results[0].Written) != 0 {
		t.Errorf("written = %v, want none", results[0].Written)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("no output file should exist for an empty document")
	}
}

func TestPoolClampsWorkerCount(t *testing.T) {
	p := NewPool(testPipeline(t), 0)
	if p.workers != 1 {
		t.Errorf("workers = %d, want clamp to 1", p.workers)
	}
}
