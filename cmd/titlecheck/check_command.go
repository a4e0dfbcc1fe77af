package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"titlecheck/internal/history"
	"titlecheck/internal/ingest"
	"titlecheck/internal/records"
	"titlecheck/internal/report"
	"titlecheck/internal/richtext"
	"titlecheck/internal/textutil"
	"titlecheck/internal/xlsx"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var recordsPath string
	var outPath string
	var openAfter bool

	cmd := &cobra.Command{
		Use:   "check <register.csv>",
		Short: "Check observed drawing titles against the register and write a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}
			logger := ctx.ensureLogger()

			registerPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve register path: %w", err)
			}

			lock := flock.New(cfg.LockPath())
			ok, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !ok {
				return errors.New("another titlecheck run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			register, err := ingest.LoadRegister(registerPath)
			if err != nil {
				return err
			}
			if len(register) == 0 {
				return fmt.Errorf("%w: %s", ingest.ErrEmptyRegister, registerPath)
			}
			logger.Debug("register loaded", "path", registerPath, "entries", len(register))

			source := records.NewFileSource(recordsPath)
			recs, err := source.ListTargetRecords()
			if err != nil {
				return err
			}

			result := report.Assemble(recs, register, report.Options{
				Style: richtext.Style{
					Size:         cfg.Report.EmphasisSize,
					CurrentColor: cfg.Report.CurrentColor,
					CorrectColor: cfg.Report.CorrectColor,
				},
			})

			target := strings.TrimSpace(outPath)
			if target == "" {
				target = filepath.Join(cfg.Paths.ReportDir, defaultReportName(registerPath))
			} else if target, err = filepath.Abs(target); err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}

			writer := xlsx.NewWriter(cfg.Report.SheetName)
			if err := writer.Write(target, result.Rows); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			logger.Info("report written", "path", target, "rows", len(result.Rows))

			recordHistory(cmd, ctx, registerPath, target, result.Counts)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Matched", "Mismatched", "Not in register", "Missing number"},
				[][]string{{
					strconv.Itoa(result.Counts.Matched),
					strconv.Itoa(result.Counts.Mismatched),
					strconv.Itoa(result.Counts.KeyNotFound),
					strconv.Itoa(result.Counts.MissingNumber),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
				out,
			))
			fmt.Fprintf(out, "Report: %s\n", target)

			if openAfter || cfg.Report.OpenAfterWrite {
				records.OpenForViewing(target)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&recordsPath, "records", "r", "", "JSON export of observed title records")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Report output path (defaults into paths.report_dir)")
	cmd.Flags().BoolVar(&openAfter, "open", false, "Open the report after writing")
	_ = cmd.MarkFlagRequired("records")
	return cmd
}

func defaultReportName(registerPath string) string {
	base := strings.TrimSuffix(filepath.Base(registerPath), filepath.Ext(registerPath))
	name := textutil.SanitizeFileName(base)
	if name == "" {
		name = "register"
	}
	return name + "-titlecheck.xlsx"
}

// recordHistory logs the run in the history store. Failures are reported
// but never fail a run that already produced its report.
func recordHistory(cmd *cobra.Command, ctx *commandContext, registerPath, outputPath string, counts report.Counts) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return
	}
	logger := ctx.ensureLogger()

	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()

	_, err = store.RecordRun(cmd.Context(), history.Run{
		CreatedAt:     time.Now().UTC(),
		RegisterPath:  registerPath,
		OutputPath:    outputPath,
		Matched:       counts.Matched,
		Mismatched:    counts.Mismatched,
		KeyNotFound:   counts.KeyNotFound,
		MissingNumber: counts.MissingNumber,
	})
	if err != nil {
		logger.Warn("record run history", "error", err)
	}
}
