package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"textlens/internal/adapter/fs"
	"textlens/internal/domain"
)

// BatchItem is the outcome for one file. Exactly one of Report and Error is set.
type BatchItem struct {
	Path   string                 `json:"path"`
	Report *domain.AnalysisReport `json:"report,omitempty"`
	Error  string                 `json:"error,omitempty"`
	Code   domain.ValidationKind  `json:"code,omitempty"`
}

// BatchUseCase analyzes every matching file under a directory.
type BatchUseCase struct {
	analyze *AnalyzeUseCase
	walker  *fs.Walker
	workers int
	log     logrus.FieldLogger
}

// NewBatchUseCase creates a batch use case running up to workers analyses at once.
func NewBatchUseCase(analyze *AnalyzeUseCase, walker *fs.Walker, workers int, log logrus.FieldLogger) *BatchUseCase {
	if workers < 1 {
		workers = 1
	}
	return &BatchUseCase{
		analyze: analyze,
		walker:  walker,
		workers: workers,
		log:     log,
	}
}

// Files lists the files Run would analyze.
func (u *BatchUseCase) Files(root string) ([]fs.FileInfo, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}
	return files, nil
}

// Run analyzes each file as one text. Per-file failures are recorded in the
// item and never stop the batch; only cancellation of ctx does. Items keep
// the walk order. progress, if set, is called once per finished file and
// may be called from several goroutines.
func (u *BatchUseCase) Run(ctx context.Context, root string, progress func(path string)) ([]BatchItem, error) {
	files, err := u.Files(root)
	if err != nil {
		return nil, err
	}

	items := make([]BatchItem, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for i, f := range files {
		if gctx.Err() != nil {
			break
		}
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = u.analyzeFile(gctx, f)
			if progress != nil {
				progress(f.RelPath)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (u *BatchUseCase) analyzeFile(ctx context.Context, f fs.FileInfo) BatchItem {
	item := BatchItem{Path: f.RelPath}

	text, err := fs.ReadText(f.Path)
	if err != nil {
		u.log.WithError(err).WithField("path", f.RelPath).Warn("Skipping unreadable file")
		item.Error = err.Error()
		return item
	}

	report, err := u.analyze.Analyze(ctx, text)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			item.Code = verr.Kind
		}
		item.Error = err.Error()
		return item
	}
	item.Report = report
	return item
}
