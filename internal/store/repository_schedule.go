package store

import (
	"context"
	"fmt"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/models"
)

// scheduleRepository is the PostgreSQL-backed implementation of
// [ScheduleRepository].
type scheduleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewScheduleRepository constructs a [ScheduleRepository] backed by the
// provided database connection and logger.
func NewScheduleRepository(db *DB, logger *logger.Logger) ScheduleRepository {
	logger.Debug().Msg("creating schedule repository")
	return &scheduleRepository{
		db:     db,
		logger: logger,
	}
}

// ListSchedules returns every schedule of the tenant branch ordered by
// schedule identifier. The stable order matters: the schedule version digest
// is computed over this exact sequence.
func (r *scheduleRepository) ListSchedules(ctx context.Context, tenant models.TenantContext) ([]models.ScheduleRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSchedules, tenant.ProjectID, tenant.BranchID)
	if err != nil {
		log.Err(err).Str("func", "*scheduleRepository.ListSchedules").Msg("error querying schedules")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var schedules []models.ScheduleRecord
	for rows.Next() {
		var s models.ScheduleRecord
		if err := rows.Scan(&s.ScheduleID, &s.Name, &s.StartTime, &s.EndTime); err != nil {
			log.Err(err).Str("func", "*scheduleRepository.ListSchedules").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return schedules, nil
}
