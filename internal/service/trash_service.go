package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tooldeck/tooldeck-api/internal/repository"
)

// DefaultTrashRetention is how long soft-deleted products stay recoverable
// before the sweeper purges them.
const DefaultTrashRetention = 90 * 24 * time.Hour

// TrashService permanently removes soft-deleted products whose retention
// window has elapsed.
type TrashService struct {
	products  repository.ProductRepository
	retention time.Duration
	logger    *slog.Logger
}

// NewTrashService creates a new trash service. A non-positive retention
// falls back to the default 90 days.
func NewTrashService(products repository.ProductRepository, retention time.Duration, logger *slog.Logger) *TrashService {
	if retention <= 0 {
		retention = DefaultTrashRetention
	}
	return &TrashService{
		products:  products,
		retention: retention,
		logger:    logger.With("component", "trash"),
	}
}

// PurgedProduct describes one permanently removed product.
type PurgedProduct struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	DeletedAt   time.Time `json:"deletedAt"`
	DaysInTrash int       `json:"daysInTrash"`
}

// SweepReport is the result of one sweep run.
type SweepReport struct {
	DeletedCount    int             `json:"deletedCount"`
	DeletedProducts []PurgedProduct `json:"deletedProducts"`
	CutoffDate      time.Time       `json:"cutoffDate"`
}

// SweepExpiredTrash purges every soft-deleted product whose deleted_at is
// older than the retention window. An empty result is success with a zero
// count, not an error.
//
// Known limitation: the fetch and the delete are separate statements. A
// product restored between the two can still be purged; the window is
// accepted rather than guarded with a lock, matching the rest of the
// design (no lock token, overlapping sweeps are tolerated).
func (s *TrashService) SweepExpiredTrash(ctx context.Context) (*SweepReport, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-s.retention)

	expired, err := s.products.ListExpiredTrash(ctx, cutoff)
	if err != nil {
		s.logger.Error("failed to list expired trash", "error", err)
		return nil, err
	}

	report := &SweepReport{
		DeletedProducts: []PurgedProduct{},
		CutoffDate:      cutoff,
	}
	if len(expired) == 0 {
		s.logger.Info("trash sweep found nothing to purge", "cutoff", cutoff.Format(time.RFC3339))
		return report, nil
	}

	ids := make([]string, len(expired))
	for i, p := range expired {
		ids[i] = p.ID
	}

	if err := s.products.DeleteByIDs(ctx, ids); err != nil {
		s.logger.Error("failed to purge expired trash", "error", err, "count", len(ids))
		return nil, err
	}

	report.DeletedCount = len(expired)
	for _, p := range expired {
		purged := PurgedProduct{ID: p.ID, Name: p.Name}
		if p.DeletedAt != nil {
			purged.DeletedAt = *p.DeletedAt
			purged.DaysInTrash = int(now.Sub(*p.DeletedAt).Hours() / 24)
		}
		report.DeletedProducts = append(report.DeletedProducts, purged)
	}

	s.logger.Info("trash sweep completed",
		"deleted", report.DeletedCount,
		"cutoff", cutoff.Format(time.RFC3339),
	)
	return report, nil
}

// RunScheduledSweep runs the sweep as a background loop. It runs once
// immediately and then at the given interval until the context is done.
func (s *TrashService) RunScheduledSweep(ctx context.Context, interval time.Duration) {
	s.logger.Info("starting scheduled trash sweep",
		"retention", s.retention.String(),
		"interval", interval.String(),
	)

	if _, err := s.SweepExpiredTrash(ctx); err != nil {
		s.logger.Error("initial trash sweep failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduled trash sweep stopped")
			return
		case <-ticker.C:
			if _, err := s.SweepExpiredTrash(ctx); err != nil {
				s.logger.Error("scheduled trash sweep failed", "error", err)
			}
		}
	}
}
