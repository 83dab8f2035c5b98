package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/Veraticus/pennywise/internal/cli"
	"github.com/Veraticus/pennywise/internal/common"
	"github.com/Veraticus/pennywise/internal/model"
	"github.com/Veraticus/pennywise/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var errNoImportFiles = errors.New("no files found to import")

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import records from OFX/QFX files",
		Long: `Import records from OFX or QFX (Quicken) files exported from your bank.

Each transaction becomes one record. Debits are negative, credits positive,
and amounts are rounded to whole dollars.

Examples:
  # Import a single file as uncategorized records
  pennywise import-ofx ~/Downloads/checking_jan.qfx

  # Import every statement in a directory under the food category
  pennywise import-ofx --category food ~/Downloads/*.qfx

  # Preview without saving
  pennywise import-ofx --dry-run ~/Downloads/card_*.ofx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().StringP("category", "c", "", "Category for every imported record")
	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	categoryName, _ := cmd.Flags().GetString("category")

	a, err := setup(ctx)
	if err != nil {
		return err
	}

	if categoryName != "" && !a.categories.IsValid(categoryName) {
		return fmt.Errorf("category %q is not in the category list", categoryName)
	}

	files, err := collectFiles(appFs, args)
	if err != nil {
		return err
	}

	slog.Info("Importing OFX files",
		"file_count", len(files),
		"category", categoryName,
		"dry_run", dryRun)

	parser := ofx.NewParser(categoryName)
	var records []model.Record
	// Keyed by full path so same-named files in different directories stay apart
	fileResults := make(map[string]int)

	for _, path := range files {
		parsed, err := parseOFXFile(cmd, parser, path)
		if err != nil {
			common.LogError(err, "Failed to parse OFX file", common.Fields{"file": path})
			continue
		}

		if len(parsed) == 0 {
			slog.Warn("No transactions found in file", "file", filepath.Base(path))
			continue
		}

		fileResults[path] += len(parsed)
		records = append(records, parsed...)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("No transactions found in any file"))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle("File import summary"))
	for _, path := range files {
		if count, ok := fileResults[path]; ok {
			fmt.Fprintf(out, "  - %s: %d records\n", filepath.Base(path), count)
		}
	}

	if dryRun {
		cli.RenderRecords(out, records, a.ledger.Balance()+sumAmounts(records))
		fmt.Fprintln(out, cli.FormatInfo("Dry run complete - no records saved"))
		return nil
	}

	bar := newImportBar(out, len(records))
	added := 0
	for _, rec := range records {
		if err := a.ledger.AddRecord(a.categories, rec); err != nil {
			slog.Warn("Skipping record", "description", rec.Description, "error", err)
		} else {
			added++
		}
		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}

	if err := a.store.Save(ctx, a.ledger); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d record(s). Now you have %d dollars.", added, a.ledger.Balance())))
	return nil
}

// collectFiles expands glob patterns, keeping plain paths that exist.
func collectFiles(fs afero.Fs, patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := afero.Glob(fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) > 0 {
			files = append(files, matches...)
			continue
		}

		// If no glob matches, check if it's a direct file
		if _, err := fs.Stat(pattern); err == nil {
			files = append(files, pattern)
		} else {
			slog.Warn("No files found matching pattern", "pattern", pattern)
		}
	}

	if len(files) == 0 {
		return nil, errNoImportFiles
	}
	return files, nil
}

func parseOFXFile(cmd *cobra.Command, parser *ofx.Parser, path string) ([]model.Record, error) {
	f, err := appFs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return parser.ParseFile(cmd.Context(), f)
}

func newImportBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Adding records...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

func sumAmounts(records []model.Record) int {
	total := 0
	for _, rec := range records {
		total += rec.Amount
	}
	return total
}
