package scan

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/deltagida/offerscan/internal/extract"
	"github.com/deltagida/offerscan/internal/model"
	"github.com/deltagida/offerscan/internal/pdftext"
	"github.com/deltagida/offerscan/internal/store"
)

// Runner processes batches of documents. Extraction is pure per document, so
// documents run concurrently with no shared state beyond the store.
type Runner struct {
	Extractor   pdftext.Extractor
	Parser      *extract.Parser
	Store       store.Store
	Concurrency int
}

// Run extracts, classifies and persists every document in paths. A failure
// on one document never aborts the batch: it is recorded in the report and
// processing continues. Cancellation is honored between documents.
func (r *Runner) Run(ctx context.Context, paths []string) (*model.ScanReport, error) {
	if len(paths) == 0 {
		zap.L().Info("no documents to scan")
		return &model.ScanReport{}, nil
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	zap.L().Info("scanning batch",
		zap.Int("documents", len(paths)),
		zap.Int("concurrency", concurrency),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var processed, skipped atomic.Int64
	var mu sync.Mutex
	var docErrors []model.DocError

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log := zap.L().With(zap.String("document", path))

			rec, err := r.processOne(gctx, path)
			if err != nil {
				log.Error("document failed", zap.Error(err))
				mu.Lock()
				docErrors = append(docErrors, model.DocError{
					Path:    path,
					Message: extract.Sanitize(err.Error()),
				})
				mu.Unlock()
				return nil // isolate the failure, keep the batch going
			}
			if rec == nil {
				skipped.Add(1)
				log.Debug("not an offer, skipped")
				return nil
			}

			processed.Add(1)
			log.Info("offer stored",
				zap.String("firm", rec.Firm),
				zap.Bool("has_amount", rec.HasAmount()),
			)
			return nil
		})
	}

	err := g.Wait()

	report := &model.ScanReport{
		Processed: int(processed.Load()),
		Skipped:   int(skipped.Load()),
		Errored:   len(docErrors),
		Errors:    docErrors,
	}

	zap.L().Info("batch complete",
		zap.Int("processed", report.Processed),
		zap.Int("skipped", report.Skipped),
		zap.Int("errored", report.Errored),
	)
	return report, err
}

// processOne runs the per-document pipeline: page text, parse, persist.
// A nil record with nil error means the classifier rejected the document.
func (r *Runner) processOne(ctx context.Context, path string) (*model.OfferRecord, error) {
	pages, err := r.Extractor.ExtractPages(ctx, path)
	if err != nil {
		return nil, err
	}

	rec := r.Parser.Parse(path, pages)
	if rec == nil {
		return nil, nil
	}

	stored, err := r.Store.UpsertOffer(ctx, rec)
	if err != nil {
		return nil, err
	}
	return stored, nil
}
