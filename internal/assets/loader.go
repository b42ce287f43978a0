package assets

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ziadkadry99/showcase/internal/catalog"
	"github.com/ziadkadry99/showcase/internal/notifications"
	"github.com/ziadkadry99/showcase/internal/workflow"
)

// Loader turns asset paths into catalog content. It never fails: every
// error is folded into placeholder content.
type Loader struct {
	src    Source
	logger *zap.Logger
}

// NewLoader creates a loader over src. A nil logger discards output.
func NewLoader(src Source, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{src: src, logger: logger}
}

// Load fetches and decodes the asset behind e. Non-success responses yield
// PlaceholderUnavailable; transport, decode and validation failures yield
// PlaceholderError. Placeholders always have zero size.
func (l *Loader) Load(ctx context.Context, e catalog.Entry) catalog.Content {
	path := e.Path()
	if path == "" {
		return catalog.Placeholder(catalog.PlaceholderUnavailable, "entry has no asset path")
	}

	raw, err := l.src.Fetch(ctx, path)
	if err != nil {
		l.logger.Warn("asset load failed", zap.String("id", e.ID), zap.String("path", path), zap.Error(err))
		if errors.Is(err, ErrNotOK) {
			return catalog.Placeholder(catalog.PlaceholderUnavailable, err.Error())
		}
		return catalog.Placeholder(catalog.PlaceholderError, err.Error())
	}
	if len(raw) == 0 {
		l.logger.Warn("asset is empty", zap.String("id", e.ID), zap.String("path", path))
		return catalog.Placeholder(catalog.PlaceholderUnavailable, "empty response")
	}

	if e.Format == catalog.FormatWorkflow {
		def, err := workflow.Parse(raw)
		if err != nil {
			l.logger.Warn("workflow rejected", zap.String("id", e.ID), zap.String("path", path), zap.Error(err))
			return catalog.Placeholder(catalog.PlaceholderError, err.Error())
		}
		return catalog.Loaded(raw, def)
	}

	l.logger.Debug("asset loaded", zap.String("id", e.ID), zap.Int("bytes", len(raw)))
	return catalog.Loaded(raw, nil)
}

// Populate loads every pending asset-backed entry of store concurrently and
// attaches each result as it arrives. Failures are published to n (which may
// be nil) and never abort the other loads.
func (l *Loader) Populate(ctx context.Context, store *catalog.Store, n *notifications.Hub) {
	g, gctx := errgroup.WithContext(ctx)
	for _, e := range store.Entries() {
		if e.Static() || e.Content.Status != catalog.StatusPending {
			continue
		}
		e := e
		g.Go(func() error {
			c := l.Load(gctx, e)
			if err := store.Attach(e.ID, c); err != nil {
				l.logger.Debug("dropping late load", zap.String("id", e.ID), zap.Error(err))
				return nil
			}
			if !c.Available() && n != nil {
				n.Publish(notifications.Notification{
					Severity: notifications.SeverityError,
					Message:  fmt.Sprintf("Failed to load %s", e.Title),
				})
			}
			return nil
		})
	}
	_ = g.Wait()
}
