package scanner

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/fatih/semgroup"

	"github.com/deepbrainspace/guardy/internal/config"
	"github.com/deepbrainspace/guardy/internal/filter"
	"github.com/deepbrainspace/guardy/internal/patterns"
	"github.com/deepbrainspace/guardy/pkg/types"
)

// sequentialThreshold is the candidate count below which the scan runs on
// the calling goroutine; spawning workers for a handful of files costs more
// than it saves.
const sequentialThreshold = 8

// Scanner owns the shared static data for a scan: the pattern library, the
// prefilter automaton, the filters and their lookup tables, all constructed
// once before any worker starts and referenced read-only afterwards.
type Scanner struct {
	cfg      *config.Config
	logger   *slog.Logger
	lib      *patterns.Library
	walker   *Walker
	pipeline *FilePipeline
	warnings []string
}

// New builds a scanner from configuration. Invalid custom patterns and
// invalid ignore globs are demoted to warnings carried on the result.
func New(cfg *config.Config, logger *slog.Logger) (*Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lib, warnings := patterns.Load(cfg.Scan.CustomPatterns)
	for _, w := range warnings {
		logger.Warn("pattern library", "warning", w)
	}

	pathFilter, globWarnings := filter.NewPathFilter(cfg.Scan.IgnorePaths)
	for _, w := range globWarnings {
		logger.Warn("path filter", "warning", w)
	}
	warnings = append(warnings, globWarnings...)

	sizeFilter := filter.NewSizeFilter(cfg.Scan.MaxFileSizeBytes())
	binaryFilter := filter.NewBinaryFilter()
	commentFilter := filter.NewCommentFilter(cfg.Scan.IgnoreComments)
	entropyFilter := filter.NewEntropyFilter(cfg.Scan.MinEntropyThreshold)
	prefilter := NewPrefilter(lib)

	return &Scanner{
		cfg:      cfg,
		logger:   logger,
		lib:      lib,
		walker:   NewWalker(pathFilter, sizeFilter, binaryFilter, cfg.Scan.RespectGitignore, logger),
		pipeline: NewFilePipeline(lib, prefilter, commentFilter, entropyFilter, cfg.Scan.MaxFileSizeBytes(), logger),
		warnings: warnings,
	}, nil
}

// Scan is the sole synchronous entry point: it walks the given roots,
// distributes candidate files to workers, and aggregates all matches and
// statistics. Per-file errors never fail the scan; only an inaccessible
// root does.
func (s *Scanner) Scan(ctx context.Context, roots []string) (types.ScanResult, error) {
	start := time.Now()

	result := types.ScanResult{Warnings: s.warnings}

	candidates, err := s.walker.Walk(roots, &result.Stats)
	if err != nil {
		return result, err
	}

	s.logger.Info("directory walk completed",
		"discovered", result.Stats.FilesDiscovered,
		"candidates", len(candidates))

	workers := s.workerCount(len(candidates))
	if workers <= 1 {
		s.scanSequential(candidates, &result)
	} else {
		s.scanParallel(ctx, candidates, workers, &result)
	}

	result.Stats.Duration = time.Since(start)

	s.logger.Info("scan completed",
		"files_processed", result.Stats.FilesProcessed,
		"matches", result.Stats.MatchesFound,
		"duration", result.Stats.Duration)

	return result, nil
}

// workerCount derives the worker pool size from available CPU cores and the
// configured utilization percentage. Below the sequential threshold a single
// worker (the calling goroutine) is used.
func (s *Scanner) workerCount(candidates int) int {
	if candidates < sequentialThreshold {
		return 1
	}
	workers := runtime.NumCPU() * s.cfg.Scan.ThreadPercentage / 100
	if workers < 1 {
		workers = 1
	}
	return workers
}

// scanSequential runs every file on the calling goroutine.
func (s *Scanner) scanSequential(candidates []types.FileCandidate, result *types.ScanResult) {
	for _, cand := range candidates {
		result.Matches = append(result.Matches, s.pipeline.ScanFile(cand, &result.Stats)...)
	}
}

// scanParallel distributes files across a fixed-size worker pool. Files are
// the unit of distribution, never patterns. Each worker owns a private stats
// accumulator and match slice, so the hot loop touches no shared mutable
// state; everything is summed once after Wait.
func (s *Scanner) scanParallel(ctx context.Context, candidates []types.FileCandidate, workers int, result *types.ScanResult) {
	group := semgroup.NewGroup(ctx, int64(workers))

	workerStats := make([]types.ScanStats, workers)
	workerMatches := make([][]types.SecretMatch, workers)

	for i := 0; i < workers; i++ {
		i := i
		group.Go(func() error {
			// Strided assignment: worker i owns candidates i, i+n, ...
			for j := i; j < len(candidates); j += workers {
				matches := s.pipeline.ScanFile(candidates[j], &workerStats[i])
				workerMatches[i] = append(workerMatches[i], matches...)
			}
			return nil
		})
	}

	// Workers only report per-file problems through stats, never errors.
	if err := group.Wait(); err != nil {
		s.logger.Error("worker group reported errors", "error", err)
	}

	for i := 0; i < workers; i++ {
		result.Stats.Add(workerStats[i])
		result.Matches = append(result.Matches, workerMatches[i]...)
	}
}
