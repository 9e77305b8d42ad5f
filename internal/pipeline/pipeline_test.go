package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fleetlab/ocmr/internal/model"
	"github.com/fleetlab/ocmr/internal/seed"
)

const twoSideReport = `OIL CHANGE MONITORING REPORT
Date of Sampling: 11 Jul 25
MAIN ENGINE PORT SIDE
S/I-M101 S/I-M102
Oil Running Hrs 1200 1350
T/R/H of Machinery 93,400 92,100
MAIN ENGINE STBD SIDE
S/I-M201
Oil Running Hrs 1500
T/R/H of Machinery 95,250
`

func testConfig(t *testing.T, cacheEnabled bool) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = cacheEnabled
	cfg.Cache.Dir = filepath.Join(t.TempDir(), "cache")
	return cfg
}

func writeReport(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write report: %v", err)
	}
	return path
}

func TestProcessDocument(t *testing.T) {
	p := NewPipeline(testConfig(t, false))
	path := writeReport(t, "me.txt", twoSideReport)

	result, err := p.ProcessDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	if result.Samples() != 3 {
		t.Errorf("samples = %d, want 3", result.Samples())
	}
	if len(result.Categories[model.CategoryPort]) != 2 {
		t.Errorf("Port records = %d, want 2", len(result.Categories[model.CategoryPort]))
	}
	if len(result.Categories[model.CategoryStbd]) != 1 {
		t.Errorf("Stbd records = %d, want 1", len(result.Categories[model.CategoryStbd]))
	}
}

func TestProcessDocumentMissingFile(t *testing.T) {
	p := NewPipeline(testConfig(t, false))
	if _, err := p.ProcessDocument(context.Background(), filepath.Join(t.TempDir(), "gone.txt")); err == nil {
		t.Errorf("expected an error for a missing document")
	}
}

func TestProcessDocumentCacheHit(t *testing.T) {
	p := NewPipeline(testConfig(t, true))
	path := writeReport(t, "me.txt", twoSideReport)

	first, err := p.ProcessDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("first parse: %v", err)
	}
	if first.CacheHit {
		t.Fatalf("first parse must not be a cache hit")
	}

	second, err := p.ProcessDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("second parse: %v", err)
	}
	if !second.CacheHit {
		t.Errorf("second parse of identical content should hit the cache")
	}
	if second.Samples() != first.Samples() {
		t.Errorf("cached samples = %d, want %d", second.Samples(), first.Samples())
	}

	port := second.Categories[model.CategoryPort]
	if len(port) != 2 || port[0].OilHrs != model.Number(1200) {
		t.Errorf("cached records lost values: %+v", port)
	}
}

func TestProcessDocumentHTML(t *testing.T) {
	p := NewPipeline(testConfig(t, false))
	html := `<html><body><p>MAIN ENGINE PORT SIDE</p>
<p>S/I-M101</p><p>Oil Running Hrs</p><p>1200</p></body></html>`
	path := writeReport(t, "me.html", html)

	result, err := p.ProcessDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}
	port := result.Categories[model.CategoryPort]
	if len(port) != 1 {
		t.Fatalf("Port records = %d, want 1: %v", len(port), result.Categories)
	}
	if port[0].OilHrs != model.Number(1200) {
		t.Errorf("oil hrs = %v, want 1200", port[0].OilHrs)
	}
}

func TestWriteOutputsRouting(t *testing.T) {
	p := NewPipeline(testConfig(t, false))
	path := writeReport(t, "me.txt", twoSideReport)
	dir := t.TempDir()

	result, err := p.ProcessDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}

	portOut := filepath.Join(dir, "port.json")
	stbdOut := filepath.Join(dir, "stbd.json")
	written, err := p.WriteOutputs(result, map[model.Category]string{
		model.CategoryPort: portOut,
		model.CategoryStbd: stbdOut,
	})
	if err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("written = %v, want 2 files", written)
	}

	port, err := seed.Load(portOut)
	if err != nil {
		t.Fatalf("load port output: %v", err)
	}
	if len(port) != 2 {
		t.Fatalf("port records = %d, want 2", len(port))
	}
	// Finalized: sorted by total hours and renumbered from 1
	if port[0].SampleID != "S/I-M102" || port[1].SampleID != "S/I-M101" {
		t.Errorf("port order = %s, %s, want sorted by total_hrs", port[0].SampleID, port[1].SampleID)
	}
	if port[0].ID != 1 || port[1].ID != 2 {
		t.Errorf("port ids = %d, %d, want 1, 2", port[0].ID, port[1].ID)
	}
}

func TestWriteOutputsDefaultFallback(t *testing.T) {
	p := NewPipeline(testConfig(t, false))
	path := writeReport(t, "me.txt", twoSideReport)
	dir := t.TempDir()

	result, err := p.ProcessDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}

	// Only a Default mapping: both categories route to it, later categories
	// overwrite earlier ones in the fixed order
	defaultOut := filepath.Join(dir, "default.json")
	written, err := p.WriteOutputs(result, map[model.Category]string{
		model.CategoryDefault: defaultOut,
	})
	if err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}
	if len(written) != 2 {
		t.Errorf("written = %v, want both categories routed", written)
	}

	records, err := seed.Load(defaultOut)
	if err != nil {
		t.Fatalf("load default output: %v", err)
	}
	// Stbd is written after Port in the fixed order, so its single record
	// is what survives
	if len(records) != 1 || records[0].SampleID != "S/I-M201" {
		t.Errorf("default output = %+v, want the Stbd record", records)
	}
}

func TestWriteOutputsUnmappedCategoryDropped(t *testing.T) {
	p := NewPipeline(testConfig(t, false))
	path := writeReport(t, "me.txt", twoSideReport)
	dir := t.TempDir()

	result, err := p.ProcessDocument(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessDocument: %v", err)
	}

	portOut := filepath.Join(dir, "port.json")
	written, err := p.WriteOutputs(result, map[model.Category]string{
		model.CategoryPort: portOut,
	})
	if err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}
	if len(written) != 1 || written[0] != portOut {
		t.Errorf("written = %v, want only the Port file", written)
	}
}
