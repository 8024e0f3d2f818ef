// Package pipeline wires the reconstruction stages together.
//
// The stages run strictly in order: segmentation, index parsing, span
// extraction, then per-article metadata extraction, normalization and
// filtering. The per-article tail is fanned out across a bounded worker
// pool; articles never alias each other's text, so the only coordination
// needed is indexed result slots.
//
// Every condition inside the pipeline degrades the result instead of
// failing it: Process always returns a (possibly empty) result, never an
// error.
package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/jackzampolin/clipper/internal/config"
	"github.com/jackzampolin/clipper/internal/metadata"
	"github.com/jackzampolin/clipper/internal/normalize"
	"github.com/jackzampolin/clipper/internal/segment"
	"github.com/jackzampolin/clipper/internal/span"
	"github.com/jackzampolin/clipper/internal/toc"
	"github.com/jackzampolin/clipper/internal/types"
)

// Pipeline reconstructs articles from a raw export stream.
type Pipeline struct {
	cfg    config.Pipeline
	logger *slog.Logger
}

// New creates a pipeline with the given tuning values.
func New(cfg config.Pipeline, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Process runs the full pipeline over one export bundle.
//
// pageCount is advisory only: it came from the upstream extraction step
// and is logged when it disagrees with what segmentation finds, but it is
// never trusted for correctness.
func (p *Pipeline) Process(ctx context.Context, fullText string, pageCount int) *types.Result {
	result := &types.Result{Articles: []types.Article{}}

	pages := segment.Pages(fullText)
	result.PagesSegmented = len(pages)
	if pageCount > 0 && pageCount != len(pages) {
		p.logger.Debug("segmented page count differs from advisory count",
			"segmented", len(pages), "advisory", pageCount)
	}
	if len(pages) == 0 {
		return result
	}

	entries := toc.Parse(pages, p.cfg)
	result.IndexEntries = len(entries)
	if len(entries) == 0 {
		p.logger.Info("no index entries found", "pages", len(pages))
		return result
	}

	articles := span.Build(entries, pages)

	processed := make([]types.Article, len(articles))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for i, article := range articles {
		g.Go(func() error {
			md := metadata.Extract(article.Text, article.Title, p.cfg)
			article.Source = md.Source
			article.Author = md.Author
			article.PublishDate = md.PublishDate
			article.WordCount = md.WordCount
			article.Text = normalize.Clean(article.Text)
			processed[i] = article
			return nil
		})
	}
	// Workers never return errors; Wait is only a barrier.
	_ = g.Wait()

	for _, article := range processed {
		switch {
		case article.Text == "":
			result.DiscardedEmpty++
			p.logger.Debug("discarding article with empty text",
				"title", article.Title, "page", article.PageNumber)
		case utf8.RuneCountInString(article.Text) > p.cfg.MaxArticleChars:
			result.DiscardedOversize++
			p.logger.Debug("discarding oversized article",
				"title", article.Title, "page", article.PageNumber,
				"chars", utf8.RuneCountInString(article.Text), "ceiling", p.cfg.MaxArticleChars)
		default:
			result.Articles = append(result.Articles, article)
		}
	}

	p.logger.Info("bundle processed",
		"pages", len(pages),
		"index_entries", len(entries),
		"articles", len(result.Articles),
		"discarded", result.Discarded())

	return result
}

func (p *Pipeline) workers() int {
	if p.cfg.Workers > 0 {
		return p.cfg.Workers
	}
	return runtime.NumCPU()
}
