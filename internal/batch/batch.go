// Package batch runs the analysis pipeline over multiple files with a
// bounded concurrency window and aggregates per-file outcomes.
package batch

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// MaxFiles bounds one batch submission.
	MaxFiles = 10
	// maxInFlight bounds simultaneous outbound generation calls, not CPU use.
	maxInFlight = 3
)

// Run processes every file against the shared criteria. A file's terminal
// failure is captured in its result entry and never aborts siblings; the
// report always covers all submitted files. Results are ordered successes
// first by descending overall score, then failures, ties keeping submission
// order.
func Run(ctx context.Context, analyzer *pipeline.Analyzer, files []pipeline.Input, criteria *types.JobCriteria) (*types.BatchReport, error) {
	if len(files) == 0 {
		return nil, &EmptyBatchError{}
	}
	if len(files) > MaxFiles {
		return nil, &TooManyFilesError{Count: len(files), Max: MaxFiles}
	}

	results := make([]types.FileResult, len(files))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)

	for i, file := range files {
		g.Go(func() error {
			result, err := analyzer.Analyze(gCtx, file, criteria)
			if err != nil {
				results[i] = types.FileResult{
					FileName: file.Name,
					Success:  false,
					Error:    err.Error(),
				}
				return nil
			}
			results[i] = types.FileResult{
				FileName: file.Name,
				Success:  true,
				Resume:   result.Resume,
				Analysis: result.Analysis,
			}
			return nil
		})
	}

	// Workers never return errors; Wait only observes context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortResults(results)

	report := &types.BatchReport{
		TotalProcessed: len(results),
		Results:        results,
	}
	for _, r := range results {
		if r.Success {
			report.Successful++
		} else {
			report.Failed++
		}
	}
	return report, nil
}

// sortResults orders successes first by descending overall score, then
// failures, preserving original submission order within ties.
func sortResults(results []types.FileResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Success != results[j].Success {
			return results[i].Success
		}
		if results[i].Success && results[j].Success {
			return results[i].Analysis.OverallScore > results[j].Analysis.OverallScore
		}
		return false
	})
}
