package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teicheck/teicheck/internal/adapters/outbound/config"
	"github.com/teicheck/teicheck/internal/adapters/outbound/gitinfo"
	"github.com/teicheck/teicheck/internal/adapters/outbound/history"
	"github.com/teicheck/teicheck/internal/adapters/outbound/scanner"
	"github.com/teicheck/teicheck/internal/adapters/outbound/tester"
	"github.com/teicheck/teicheck/internal/adapters/outbound/tui"
	"github.com/teicheck/teicheck/internal/application"
	"github.com/teicheck/teicheck/internal/domain"
)

func newTestCmd() *cobra.Command {
	var (
		verbosity       string
		includeMetadata bool
		catalog         bool
	)

	cmd := &cobra.Command{
		Use:   "test <path1> [path2] ...",
		Short: "Validate TEI and catalog files and print a report",
		Long:  "Run validation checks over catalog and TEI files (directories are walked for .xml files) and print color-coded report tables filtered by verbosity.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config and run history live next to the corpus under test.
			projectPath, err := filepath.Abs(projectDir(args[0]))
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(projectPath)
			if err != nil {
				return err
			}

			// Flags win over the config file; file values fill in unset flags.
			if !cmd.Flags().Changed("verbosity") && cfg.Verbosity != "" {
				verbosity = cfg.Verbosity
			}
			if !cmd.Flags().Changed("include-metadata-report") && cfg.IncludeMetadataReport {
				includeMetadata = true
			}
			if !cmd.Flags().Changed("catalog") && cfg.Catalog != nil {
				catalog = *cfg.Catalog
			}

			// Rejected here, before any rendering.
			level, err := domain.ParseVerbosity(verbosity)
			if err != nil {
				return err
			}

			files, err := scanner.New().Expand(args)
			if err != nil {
				return err
			}

			svc := application.NewTestService(tester.New(), history.New(), gitinfo.New())
			run, err := svc.Run(projectPath, files, catalog)
			if err != nil {
				return fmt.Errorf("test run failed: %w", err)
			}

			logger := tui.NewLogger(level, cmd.OutOrStdout())
			tui.WriteRun(logger, run, tui.ReportOptions{
				Catalog:         catalog,
				IncludeMetadata: includeMetadata,
			})

			if !run.Ok() {
				return fmt.Errorf("%d file(s) failed validation", run.Failed())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&verbosity, "verbosity", "v", "minimal", "Report verbosity: minimal, details or verbose")
	cmd.Flags().BoolVarP(&includeMetadata, "include-metadata-report", "m", false, "Append the catalog metadata table")
	cmd.Flags().BoolVar(&catalog, "catalog", true, "Treat __cts__.xml files as catalog metadata (use --catalog=false to test single files)")

	return cmd
}

// projectDir maps the first path argument to the directory holding it.
func projectDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}
