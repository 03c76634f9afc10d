package scanner

import (
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/deepbrainspace/guardy/internal/filter"
	"github.com/deepbrainspace/guardy/internal/patterns"
	"github.com/deepbrainspace/guardy/pkg/types"
)

// FilePipeline orchestrates the content stages for a single file: load,
// prefilter, regex execution, comment filter, entropy filter. Each worker
// runs one pipeline per file start to finish; the pipeline itself is
// stateless between files and safe for concurrent use because all shared
// data is read-only.
type FilePipeline struct {
	lib           *patterns.Library
	prefilter     *Prefilter
	executor      *Executor
	commentFilter *filter.CommentFilter
	entropyFilter *filter.EntropyFilter
	maxSize       int64
	logger        *slog.Logger
}

// NewFilePipeline creates a file pipeline over the shared static data.
func NewFilePipeline(lib *patterns.Library, prefilter *Prefilter, commentFilter *filter.CommentFilter, entropyFilter *filter.EntropyFilter, maxSize int64, logger *slog.Logger) *FilePipeline {
	return &FilePipeline{
		lib:           lib,
		prefilter:     prefilter,
		executor:      NewExecutor(lib),
		commentFilter: commentFilter,
		entropyFilter: entropyFilter,
		maxSize:       maxSize,
		logger:        logger,
	}
}

// ScanFile runs the full content pipeline for one candidate and returns its
// surviving matches. I/O and encoding problems are non-fatal: they are
// recorded in stats and the file is skipped.
func (p *FilePipeline) ScanFile(cand types.FileCandidate, stats *types.ScanStats) []types.SecretMatch {
	data, err := os.ReadFile(cand.Path)
	if err != nil {
		p.logger.Warn("skipping unreadable file", "path", cand.Path, "error", err)
		stats.FilesErrored++
		return nil
	}

	// The size filter ran on stat metadata; re-check in case the file grew
	// between the walk and the read.
	if int64(len(data)) > p.maxSize {
		p.logger.Warn("skipping file that grew past the size ceiling", "path", cand.Path, "size", len(data))
		stats.FilesErrored++
		return nil
	}

	if !utf8.Valid(data) {
		p.logger.Debug("skipping non-UTF-8 file", "path", cand.Path)
		stats.FilesErrored++
		return nil
	}

	stats.FilesProcessed++
	content := string(data)

	// A file with zero active patterns short-circuits without ever
	// invoking the regex engine.
	active := p.prefilter.ActivePatterns(content)
	if len(active) == 0 {
		return nil
	}

	potential := p.executor.Run(cand.Path, content, active)
	stats.PotentialMatches += len(potential)

	var matches []types.SecretMatch
	for _, pm := range potential {
		if p.commentFilter.Suppressed(pm.LineText, pm.PrevLine) {
			stats.FilteredByComment++
			continue
		}

		pat := p.lib.Pattern(pm.PatternIdx)
		if !p.entropyFilter.Keep(pm.Secret, pat.SkipEntropy) {
			stats.FilteredByEntropy++
			continue
		}

		matches = append(matches, types.SecretMatch{
			Path:        pm.Path,
			Line:        pm.Line,
			StartColumn: pm.StartColumn,
			EndColumn:   pm.EndColumn,
			Secret:      pm.Text,
			LineText:    pm.LineText,
			PatternName: pat.Name,
			Severity:    pat.Severity,
		})
	}

	stats.MatchesFound += len(matches)
	return matches
}
