package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/showcase/internal/pages"
	"github.com/ziadkadry99/showcase/internal/walker"
)

var checkPatterns []string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check content_dir against the assets the catalogs reference",
	Long: `Compares the files under content_dir with every asset path the catalogs
reference. Missing or empty assets make the command fail; files that match
the content patterns but belong to no entry are listed as orphans.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ContentURL != "" {
			return fmt.Errorf("check needs a local content_dir, not content_url")
		}

		set, err := pages.New()
		if err != nil {
			return err
		}

		report, err := walker.Check(cfg.ContentDir, set.Manifest(), checkPatterns)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Content: %s\n", cfg.ContentDir)
		fmt.Fprintf(out, "  Found:   %d\n", len(report.Found))
		printList(out, "Missing", report.Missing)
		printList(out, "Empty", report.Empty)
		printList(out, "Orphans", report.Orphans)

		if !report.OK() {
			return fmt.Errorf("%d missing and %d empty assets", len(report.Missing), len(report.Empty))
		}
		return nil
	},
}

func printList(out io.Writer, label string, items []string) {
	fmt.Fprintf(out, "  %-8s %d\n", label+":", len(items))
	for _, it := range items {
		fmt.Fprintf(out, "    %s\n", it)
	}
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkPatterns, "pattern", nil,
		"content patterns for orphan detection (default "+strings.Join(walker.DefaultPatterns, ", ")+")")
	rootCmd.AddCommand(checkCmd)
}
