// Package worker fans a batch of report documents out over a fixed number
// of goroutines. Documents share no state, so no coordination beyond the
// job queue is needed.
package worker

import (
	"context"
	"sync"

	"github.com/fleetlab/ocmr/internal/model"
	"github.com/fleetlab/ocmr/internal/pipeline"
)

// DocumentJob is one report file plus its category routing table
type DocumentJob struct {
	Path    string
	Outputs map[model.Category]string
}

// DocumentResult is the outcome of one job
type DocumentResult struct {
	Job     DocumentJob
	Parsed  *pipeline.DocumentResult
	Written []string
	Err     error
}

// Pool processes document jobs concurrently through a shared pipeline
type Pool struct {
	pipeline *pipeline.Pipeline
	workers  int
}

// NewPool creates a pool; worker counts below 1 are clamped to 1
func NewPool(p *pipeline.Pipeline, workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{pipeline: p, workers: workers}
}

// Run processes all jobs and returns results in job order, regardless of
// completion order. Cancelling the context abandons unstarted jobs; their
// results carry the context error.
func (p *Pool) Run(ctx context.Context, jobs []DocumentJob) []DocumentResult {
	results := make([]DocumentResult, len(jobs))
	queue := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				results[idx] = p.process(ctx, jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)
	wg.Wait()

	return results
}

func (p *Pool) process(ctx context.Context, job DocumentJob) DocumentResult {
	result := DocumentResult{Job: job}

	parsed, err := p.pipeline.ProcessDocument(ctx, job.Path)
	if err != nil {
		result.Err = err
		return result
	}
	result.Parsed = parsed

	if parsed.Samples() == 0 {
		// No sample identifiers found: not an error, but nothing to write
		return result
	}

	result.Written, result.Err = p.pipeline.WriteOutputs(parsed, job.Outputs)
	return result
}
