package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"dreaming-migrate/internal/domain"
	"dreaming-migrate/internal/ports"
)

const (
	previewLimit  = 5
	progressEvery = 10
)

// Report summarizes one migration run.
type Report struct {
	Total        int
	Succeeded    int
	Failed       int
	TotalSeconds int64
}

// MigrateUseCase coordinates fetching entries from a source account and
// submitting them to a target account. The mode is fixed for the whole
// invocation: dry run previews without any mutating call, execute submits
// every entry sequentially.
type MigrateUseCase struct {
	Log    *slog.Logger
	Source ports.ExternalTimeSource
	Sink   ports.ExternalTimeSink
	Out    io.Writer

	SourceLanguage domain.Language
	TargetLanguage domain.Language
	Execute        bool
}

// Run performs one migration. Submit failures on individual entries are
// reported and skipped; the run only fails on fetch errors or on an
// auth/network failure that makes further submissions pointless.
func (uc *MigrateUseCase) Run(ctx context.Context) (Report, error) {
	if uc.Source == nil || uc.Sink == nil || uc.Out == nil {
		return Report{}, errors.New("usecase not initialized: missing dependencies")
	}

	fmt.Fprintf(uc.Out, "Fetching %s progress from source account...\n", uc.SourceLanguage.Name())
	start := time.Now()
	entries, err := uc.Source.ListTimeEntries(ctx, uc.SourceLanguage)
	if err != nil {
		return Report{}, fmt.Errorf("fetching source entries: %w", err)
	}
	uc.Log.Info("fetched time entries",
		slog.Int("count", len(entries)),
		slog.String("language", string(uc.SourceLanguage)),
		slog.Duration("dur", time.Since(start)))

	summary := domain.Summarize(entries)
	report := Report{Total: summary.Count, TotalSeconds: summary.TotalSeconds}

	fmt.Fprintf(uc.Out, "Found %d time entries\n", summary.Count)
	if summary.Count == 0 {
		fmt.Fprintln(uc.Out, "No entries to migrate")
		return report, nil
	}
	fmt.Fprintf(uc.Out, "Total time: %s\n\n", summary)

	if !uc.Execute {
		uc.preview(entries)
		return report, nil
	}

	return uc.migrate(ctx, entries, report)
}

// preview prints the first few entries as they would be submitted.
func (uc *MigrateUseCase) preview(entries []domain.TimeEntry) {
	fmt.Fprintf(uc.Out, "DRY RUN - showing first %d entries that would be migrated:\n", previewLimit)
	for i, e := range entries {
		if i == previewLimit {
			break
		}
		sub := domain.NewSubmission(e)
		fmt.Fprintf(uc.Out, "\n%d. %s\n", i+1, entryLabel(sub))
		fmt.Fprintf(uc.Out, "   Date: %s\n", orNA(sub.Date))
		fmt.Fprintf(uc.Out, "   Duration: %d seconds\n", sub.DurationSeconds)
		fmt.Fprintf(uc.Out, "   Type: %s\n", orNA(sub.Type))
		fmt.Fprintf(uc.Out, "   URL: %s\n", orNA(sub.URL))
	}
	if len(entries) > previewLimit {
		fmt.Fprintf(uc.Out, "\n... and %d more entries\n", len(entries)-previewLimit)
	}
	fmt.Fprintln(uc.Out, "\nTo actually migrate, run with --execute flag")
}

func (uc *MigrateUseCase) migrate(ctx context.Context, entries []domain.TimeEntry, report Report) (Report, error) {
	fmt.Fprintf(uc.Out, "Migrating entries to %s in target account...\n", uc.TargetLanguage.Name())
	start := time.Now()

	for i, e := range entries {
		sub := domain.NewSubmission(e)
		if err := uc.Sink.CreateTimeEntry(ctx, uc.TargetLanguage, sub); err != nil {
			if fatal(err) {
				report.Failed = report.Total - report.Succeeded
				return report, fmt.Errorf("submitting entry %d/%d: %w", i+1, report.Total, err)
			}
			report.Failed++
			uc.Log.Error("entry submission failed",
				slog.Int("entry", i+1),
				slog.String("title", e.Title),
				slog.String("date", e.Date),
				slog.String("error", err.Error()))
			fmt.Fprintf(uc.Out, "Error migrating entry %d: %v\n", i+1, err)
		} else {
			report.Succeeded++
		}
		// Progress counts attempts so the cadence survives failed entries.
		if (i+1)%progressEvery == 0 {
			fmt.Fprintf(uc.Out, "Progress: %d/%d entries migrated\n", i+1, report.Total)
		}
	}

	uc.Log.Info("migration finished",
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
		slog.Duration("dur", time.Since(start)))

	fmt.Fprintln(uc.Out, "\nMigration complete!")
	fmt.Fprintf(uc.Out, "Successfully migrated: %d\n", report.Succeeded)
	fmt.Fprintf(uc.Out, "Errors: %d\n", report.Failed)
	return report, nil
}

// fatal reports whether a submit error should abort the remaining entries.
// A rejected token or lost connectivity will fail every subsequent request,
// so continuing would only spray errors.
func fatal(err error) bool {
	var authErr *domain.AuthError
	var netErr *domain.NetworkError
	return errors.As(err, &authErr) || errors.As(err, &netErr)
}

func entryLabel(s domain.Submission) string {
	if s.Title != "" {
		return s.Title
	}
	if s.Description != "" {
		return s.Description
	}
	return "No description"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
