package admitdoc

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Worker sizing constants.
const (
	// MinWorkers ensures at least one render runs.
	MinWorkers = 1

	// MaxWorkers caps concurrent renders; each holds a whole PDF in memory.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for the caller.
	cpuDivisor = 2
)

// BatchJob is one document to render.
type BatchJob struct {
	// Name identifies the job in results, typically the context file path.
	Name     string
	Template TemplateID
	Context  RenderContext
	Options  RenderOptions
}

// BatchResult is the outcome of one BatchJob.
type BatchResult struct {
	Job      BatchJob
	Document *RenderedDocument
	Err      error
	Duration time.Duration
}

// ResolveWorkers determines the number of concurrent renders.
// Priority: explicit workers > GOMAXPROCS-based calculation, clamped to
// MinWorkers..MaxWorkers.
func ResolveWorkers(workers int) int {
	n := workers
	if n <= 0 {
		// GOMAXPROCS is adjusted by automaxprocs in containers
		n = runtime.GOMAXPROCS(0) / cpuDivisor
	}
	return min(max(n, MinWorkers), MaxWorkers)
}

// RenderBatch renders jobs concurrently and returns one result per job, in
// job order. A failing job never stops the others. Jobs not started when
// ctx is canceled report ctx.Err().
func (r *Renderer) RenderBatch(ctx context.Context, jobs []BatchJob, workers int) []BatchResult {
	results := make([]BatchResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(ResolveWorkers(workers))

	for i, job := range jobs {
		g.Go(func() error {
			results[i].Job = job
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			start := time.Now()
			doc, err := r.Render(ctx, job.Template, job.Context, job.Options)
			results[i].Document = doc
			results[i].Err = err
			results[i].Duration = time.Since(start)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
