package ports

import (
	"context"

	"dreaming-migrate/internal/domain"
)

// ExternalTimeSource fetches the complete entry set for an account/language,
// following the service's pagination transparently.
type ExternalTimeSource interface {
	ListTimeEntries(ctx context.Context, language domain.Language) ([]domain.TimeEntry, error)
}

// ExternalTimeSink receives transformed entries and creates them on a target
// account. In this project the sink is another Dreaming account, but the
// interface is intentionally generic to support other targets.
type ExternalTimeSink interface {
	CreateTimeEntry(ctx context.Context, language domain.Language, sub domain.Submission) error
}
