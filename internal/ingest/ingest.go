// Package ingest handles export bundle ingestion from pre-extracted text files.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jackzampolin/clipper/internal/config"
	"github.com/jackzampolin/clipper/internal/pipeline"
	"github.com/jackzampolin/clipper/internal/types"
)

// Request contains the parameters for ingesting an export bundle.
type Request struct {
	Paths     []string        // Text export paths (will be sorted by numeric suffix)
	Title     string          // Bundle title (optional, derived from filename if empty)
	PageCount int             // Advisory page count from the extraction step (optional)
	Config    config.Pipeline // Pipeline tuning values
	Logger    *slog.Logger    // Optional logger for progress updates
}

// Result contains the result of a successful ingest operation.
type Result struct {
	BundleID     string `json:"bundle_id" yaml:"bundle_id"`
	Title        string `json:"title" yaml:"title"`
	types.Result `yaml:",inline"`
}

// Ingest reads one or more pre-extracted text export parts and runs the
// reconstruction pipeline over their concatenation.
//
// Only reading the input can fail; the pipeline itself always returns a
// result, however degraded.
func Ingest(ctx context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if len(req.Paths) == 0 {
		return nil, fmt.Errorf("no export paths provided")
	}

	// Validate all export paths exist
	for _, p := range req.Paths {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("export not found: %s", p)
		}
	}

	// Sort parts by numeric suffix (e.g., bundle-1.txt, bundle-2.txt)
	sortedPaths := sortPartsByNumber(req.Paths)
	log.Info("starting ingest", "parts", len(sortedPaths), "title", req.Title)

	// Derive title from first part filename if not provided
	title := req.Title
	if title == "" {
		title = deriveTitle(sortedPaths[0])
	}

	var sb strings.Builder
	for _, path := range sortedPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read export part %s: %w", path, err)
		}
		sb.Write(data)
	}

	bundleID := uuid.New().String()
	log.Debug("running pipeline", "bundle_id", bundleID, "bytes", sb.Len())

	res := pipeline.New(req.Config, log.With("bundle_id", bundleID)).
		Process(ctx, sb.String(), req.PageCount)

	log.Info("ingest complete",
		"bundle_id", bundleID,
		"articles", len(res.Articles),
		"discarded", res.Discarded())

	return &Result{
		BundleID: bundleID,
		Title:    title,
		Result:   *res,
	}, nil
}

// sortPartsByNumber sorts export paths by their numeric suffix.
// e.g., ["b-2.txt", "b-1.txt", "b-10.txt"] -> ["b-1.txt", "b-2.txt", "b-10.txt"]
func sortPartsByNumber(paths []string) []string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)

	re := regexp.MustCompile(`-(\d+)\.[^.]+$`)

	sort.Slice(sorted, func(i, j int) bool {
		mi := re.FindStringSubmatch(sorted[i])
		mj := re.FindStringSubmatch(sorted[j])

		// If both have numbers, sort numerically
		if len(mi) > 1 && len(mj) > 1 {
			ni, _ := strconv.Atoi(mi[1])
			nj, _ := strconv.Atoi(mj[1])
			return ni < nj
		}

		// Files without numbers come first
		if len(mi) > 1 {
			return false
		}
		if len(mj) > 1 {
			return true
		}

		// Both without numbers: alphabetical
		return sorted[i] < sorted[j]
	})

	return sorted
}

// deriveTitle extracts a bundle title from an export filename.
// e.g., "harbor-digest.txt" -> "harbor-digest"
// e.g., "harbor-digest-1.txt" -> "harbor-digest"
func deriveTitle(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	// Remove numeric suffix like "-1", "-2", etc.
	re := regexp.MustCompile(`-\d+$`)
	name = re.ReplaceAllString(name, "")

	return name
}
