package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/showcase/internal/catalog"
	"github.com/ziadkadry99/showcase/internal/export"
	"github.com/ziadkadry99/showcase/internal/pages"
	"github.com/ziadkadry99/showcase/internal/progress"
)

var (
	exportCatalogs []string
	exportOut      string
	exportRaw      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export catalog entries to a directory",
	Long: `Writes every available entry of the selected catalogs into --out, one
subdirectory per catalog. Documents are written as markdown and workflows as
re-serialized JSON; --raw keeps the bytes exactly as fetched. Download center
items are fetched on demand. Unavailable entries are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validConfig(); err != nil {
			return err
		}
		out := exportOut
		if out == "" {
			out = cfg.ExportDir
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		loader := newLoader(cfg, logger)
		set, err := buildSet(ctx, loader, nil)
		if err != nil {
			return err
		}

		var catalogs []*pages.Catalog
		for _, name := range exportCatalogs {
			c, ok := set.Catalog(name)
			if !ok {
				return fmt.Errorf("unknown catalog %q", name)
			}
			if c.Store.Len() > 0 && c.Store.Entries()[0].Static() {
				return fmt.Errorf("catalog %q has no files to export", name)
			}
			catalogs = append(catalogs, c)
		}

		var total int
		for _, c := range catalogs {
			total += c.Store.Len()
		}

		reporter := progress.NewReporter("Exporting")
		reporter.Start(total)

		var done, exported, skipped int
		var failed error
		for _, c := range catalogs {
			saver := export.DirSaver{Dir: filepath.Join(out, c.Name)}
			for _, e := range c.Store.Entries() {
				if err := ctx.Err(); err != nil {
					reporter.Finish()
					return err
				}
				done++
				reporter.Update(done, e.Filename)

				if c.OnDemand {
					e.Content = loader.Load(ctx, e)
				}
				f, err := exportFile(c, e)
				if errors.Is(err, export.ErrUnavailable) {
					skipped++
					logger.Warn("skipping unavailable entry", zap.String("catalog", c.Name), zap.String("id", e.ID))
					continue
				}
				if err == nil {
					err = saver.Save(ctx, f)
				}
				if err != nil {
					failed = errors.Join(failed, err)
					logger.Error("export failed", zap.String("catalog", c.Name), zap.String("id", e.ID), zap.Error(err))
					continue
				}
				exported++
			}
		}
		reporter.Finish()

		logger.Info("export complete",
			zap.String("dir", out),
			zap.Int("exported", exported),
			zap.Int("skipped", skipped),
		)
		return failed
	},
}

// exportFile picks the re-serialized or the raw form of an entry.
func exportFile(c *pages.Catalog, e catalog.Entry) (export.File, error) {
	if exportRaw || c.OnDemand {
		return export.Raw(e)
	}
	return export.Entry(e)
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportCatalogs, "catalog", []string{pages.Documentation, pages.Workflows}, "catalogs to export (documentation, workflows, downloads)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output directory (default export_dir from config)")
	exportCmd.Flags().BoolVar(&exportRaw, "raw", false, "write files exactly as fetched")
	rootCmd.AddCommand(exportCmd)
}
