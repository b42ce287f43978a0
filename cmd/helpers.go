package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/ziadkadry99/showcase/internal/assets"
	"github.com/ziadkadry99/showcase/internal/config"
	"github.com/ziadkadry99/showcase/internal/notifications"
	"github.com/ziadkadry99/showcase/internal/pages"
)

// loadConfig loads the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `showcase init` to create a config file", err)
	}
	return c, nil
}

// validConfig validates the loaded config for commands that read content.
func validConfig() error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return nil
}

// contentFS returns the local content tree, or nil when content is served
// from a URL.
func contentFS(c *config.Config) fs.FS {
	if c.ContentURL != "" {
		return nil
	}
	return os.DirFS(c.ContentDir)
}

// newLoader creates an asset loader for the configured content source.
func newLoader(c *config.Config, logger *zap.Logger) *assets.Loader {
	if c.ContentURL != "" {
		return assets.NewLoader(assets.NewHTTPSource(c.ContentURL), logger)
	}
	return assets.NewLoader(assets.DirSource{FS: contentFS(c)}, logger)
}

// buildSet loads every startup catalog and logs what could not be loaded.
func buildSet(ctx context.Context, loader *assets.Loader, hub *notifications.Hub) (*pages.Set, error) {
	set, err := pages.Build(ctx, loader, hub)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	for _, c := range set.Catalogs() {
		for _, e := range c.Store.Unavailable() {
			logger.Debug("entry unavailable",
				zap.String("catalog", c.Name),
				zap.String("id", e.ID),
				zap.String("reason", e.Content.Reason),
			)
		}
	}
	return set, nil
}
