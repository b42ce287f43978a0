package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/showcase/internal/db"
	"github.com/ziadkadry99/showcase/internal/notifications"
	"github.com/ziadkadry99/showcase/internal/server"
	"github.com/ziadkadry99/showcase/internal/session"
	"github.com/ziadkadry99/showcase/internal/site"
	"github.com/ziadkadry99/showcase/internal/watch"
)

var (
	servePort  int
	serveWatch bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the showcase site",
	Long: `Starts the showcase web site. Pages answer with a loading state until the
content has been fetched; missing assets show a placeholder instead of
failing the page. With --watch, edits under content_dir are picked up
without a restart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("watch") {
			cfg.Watch = serveWatch
		}
		if err := validConfig(); err != nil {
			return err
		}
		policy, _ := cfg.Policy()

		// Session ledger.
		database, err := db.OpenMemory()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		hub := notifications.NewHub(notifications.DefaultCapacity)
		s, err := site.New(site.Options{
			Loader:   newLoader(cfg, logger),
			Hub:      hub,
			Sessions: session.NewStore(database),
			Policy:   policy,
			DataFS:   contentFS(cfg),
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Host:     cfg.Host,
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, logger)
		srv.SetReady(func() bool { return s.Set() != nil })
		s.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			if err := s.Reload(ctx); err != nil {
				logger.Error("initial content load failed", zap.Error(err))
			}
		}()

		if cfg.Watch {
			go func() {
				err := watch.Dir(ctx, cfg.ContentDir, watch.DefaultDebounce, logger, func() {
					if err := s.Reload(ctx); err != nil {
						logger.Error("content reload failed", zap.Error(err))
					}
				})
				if err != nil {
					logger.Error("watching content", zap.String("dir", cfg.ContentDir), zap.Error(err))
				}
			}()
		}

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := fmt.Sprintf("http://localhost:%d", cfg.Port)
		logger.Info("showcase starting",
			zap.String("version", Version),
			zap.String("url", url),
			zap.String("content_dir", cfg.ContentDir),
			zap.String("content_url", cfg.ContentURL),
			zap.String("selection_policy", string(policy)),
			zap.Bool("watch", cfg.Watch),
		)
		if serveOpen {
			site.OpenBrowser(url)
		}

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload content when files under content_dir change")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in the default browser")
	rootCmd.AddCommand(serveCmd)
}
