package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-admitdoc"
)

// batchOutcome is the result of one context file in a batch.
type batchOutcome struct {
	InputPath string
	Outputs   []string
	Err       error
	Duration  time.Duration
}

// runBatch renders one template against many context files.
func runBatch(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBatchFlags(args)
	if err != nil {
		return err
	}
	if len(positional) < 2 {
		return fmt.Errorf("%w: batch needs a template id and at least one context file or directory", ErrUsage)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	// Reject malformed --set values once instead of once per file.
	if err := applySets(map[string]any{}, flags.sets, env.Now()); err != nil {
		return err
	}

	id, err := admitdoc.ParseTemplateID(positional[0])
	if err != nil {
		return err
	}

	s, err := loadSettings(flags.common, flags.format, flags.out, env)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	outputDir := flags.out.output
	if outputDir == "" {
		outputDir = s.cfg.Output.DefaultDir
	}
	files, err := discoverContexts(positional[1:], outputDir)
	if err != nil {
		return err
	}

	workers := flags.workers
	if workers == 0 {
		workers = s.cfg.Workers
	}
	s.logger.Debug("batch starting",
		zap.String("template", string(id)),
		zap.Int("files", len(files)),
		zap.Int("workers", admitdoc.ResolveWorkers(workers)),
	)

	outcomes := renderContexts(ctx, s, id, files, flags.sets, workers, env)
	failed := printResults(outcomes, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(outcomes))
	}
	return nil
}

// renderContexts loads every context, renders the readable ones
// concurrently and writes their outputs. Outcomes follow the order of files.
func renderContexts(ctx context.Context, s *settings, id admitdoc.TemplateID, files []contextFile, sets []string, workers int, env *Environment) []batchOutcome {
	outcomes := make([]batchOutcome, len(files))
	jobIndex := make([]int, 0, len(files))
	jobs := make([]admitdoc.BatchJob, 0, len(files))
	taken := map[string]bool{}

	for i, f := range files {
		outcomes[i].InputPath = f.InputPath

		data, err := readContext(f.InputPath, env.Stdin, s.logger)
		if err != nil {
			outcomes[i].Err = err
			continue
		}
		rc, err := buildContext(data, sets, s.cfg.Staff, env.Now())
		if err != nil {
			outcomes[i].Err = err
			continue
		}

		fileName := uniqueFileName(taken, f.OutputDir, admitdoc.ComputeDefaultFileName(id, rc))
		jobs = append(jobs, admitdoc.BatchJob{
			Name:     f.InputPath,
			Template: id,
			Context:  rc,
			Options:  admitdoc.RenderOptions{FileName: fileName},
		})
		jobIndex = append(jobIndex, i)
	}

	results := s.renderer.RenderBatch(ctx, jobs, workers)
	for j, r := range results {
		i := jobIndex[j]
		outcomes[i].Duration = r.Duration
		if r.Err != nil {
			outcomes[i].Err = r.Err
			continue
		}
		pdfPath := filepath.Join(files[i].OutputDir, r.Document.PDF.FileName)
		outcomes[i].Outputs, outcomes[i].Err = writeDocument(r.Document, pdfPath, s.cfg.Output, s.css)
	}
	return outcomes
}

// uniqueFileName suffixes name with -2, -3, ... until it is unused in dir.
// Two applicants with the same name would otherwise overwrite each other.
func uniqueFileName(taken map[string]bool, dir, name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	candidate := name
	for n := 2; taken[filepath.Join(dir, candidate)]; n++ {
		candidate = fmt.Sprintf("%s-%d%s", stem, n, ext)
	}
	taken[filepath.Join(dir, candidate)] = true
	return candidate
}

// printResults prints batch outcomes and returns the failure count.
func printResults(outcomes []batchOutcome, quiet, verbose bool, env *Environment) int {
	var succeeded, failed int
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", o.InputPath, o.Err, hintFor(o.Err))
			continue
		}
		succeeded++
		if quiet {
			continue
		}
		for _, out := range o.Outputs {
			if verbose {
				fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", o.InputPath, out, o.Duration.Round(time.Millisecond))
			} else {
				fmt.Fprintf(env.Stdout, "Created %s\n", out)
			}
		}
	}

	if !quiet && len(outcomes) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}
	return failed
}

// validateWorkers checks the --workers value.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > admitdoc.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, admitdoc.MaxWorkers)
	}
	return nil
}
