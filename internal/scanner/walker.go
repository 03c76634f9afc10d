package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/deepbrainspace/guardy/internal/filter"
	"github.com/deepbrainspace/guardy/pkg/types"
)

// Walker is the directory pipeline: it walks the input paths, applies the
// directory filters to every discovered file in fixed order (path, size,
// binary: cheapest first, short-circuit), and yields the candidate list.
type Walker struct {
	pathFilter       *filter.PathFilter
	sizeFilter       *filter.SizeFilter
	binaryFilter     *filter.BinaryFilter
	respectGitignore bool
	logger           *slog.Logger
}

// NewWalker creates a directory pipeline with the given filters.
func NewWalker(pathFilter *filter.PathFilter, sizeFilter *filter.SizeFilter, binaryFilter *filter.BinaryFilter, respectGitignore bool, logger *slog.Logger) *Walker {
	return &Walker{
		pathFilter:       pathFilter,
		sizeFilter:       sizeFilter,
		binaryFilter:     binaryFilter,
		respectGitignore: respectGitignore,
		logger:           logger,
	}
}

// Walk enumerates candidate files under the given roots, accumulating filter
// counters into stats. A nonexistent or unreadable root is the only hard
// error; everything discovered below a valid root is handled non-fatally.
func (w *Walker) Walk(roots []string, stats *types.ScanStats) ([]types.FileCandidate, error) {
	var candidates []types.FileCandidate

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("failed to access scan root %q; %w", root, err)
		}

		// Gitignore rules apply only to the root that carries them; clear
		// before each root so one root's rules never leak into the next
		// root or a later scan.
		w.pathFilter.SetGitignore(nil)

		if !info.IsDir() {
			cand, keep := w.examine(root, filepath.Base(root), info, stats)
			if keep {
				candidates = append(candidates, cand)
			}
			continue
		}

		if w.respectGitignore {
			if rules, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
				w.pathFilter.SetGitignore(rules)
			}
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable subtree: record and continue with the rest.
				w.logger.Warn("skipping unreadable path", "path", path, "error", err)
				stats.FilesErrored++
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}

			if d.IsDir() {
				if path != root && w.skipDir(d.Name(), rel) {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}

			info, infoErr := d.Info()
			if infoErr != nil {
				w.logger.Warn("skipping file with unreadable metadata", "path", path, "error", infoErr)
				stats.FilesErrored++
				return nil
			}

			cand, keep := w.examine(path, rel, info, stats)
			if keep {
				candidates = append(candidates, cand)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk scan root %q; %w", root, err)
		}
	}

	return candidates, nil
}

// examine applies the three directory filters to one file. Order is fixed
// for cost reasons and later filters are not evaluated once one rejects.
func (w *Walker) examine(path, rel string, info fs.FileInfo, stats *types.ScanStats) (types.FileCandidate, bool) {
	stats.FilesDiscovered++

	cand := types.FileCandidate{
		Path: path,
		Size: info.Size(),
		Ext:  strings.ToLower(filepath.Ext(path)),
	}

	if d := w.pathFilter.Check(rel); d.Exclude {
		stats.FilesFilteredByPath++
		w.logger.Debug("file excluded", "path", path, "reason", d.Reason)
		return cand, false
	}
	if d := w.sizeFilter.Check(cand); d.Exclude {
		stats.FilesFilteredBySize++
		w.logger.Debug("file excluded", "path", path, "reason", d.Reason)
		return cand, false
	}
	if d := w.binaryFilter.Check(cand); d.Exclude {
		stats.FilesFilteredByBinary++
		w.logger.Debug("file excluded", "path", path, "reason", d.Reason)
		return cand, false
	}

	return cand, true
}

// skipDir prunes whole directories the path filter would reject, so their
// contents are never enumerated.
func (w *Walker) skipDir(name, rel string) bool {
	if name == ".git" {
		return true
	}
	// Probe with a synthetic child path so directory-style globs
	// ("node_modules/**") apply.
	probe := filepath.ToSlash(rel) + "/guardy.probe"
	return w.pathFilter.Check(probe).Exclude
}
