package store

import (
	"context"
	"fmt"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/models"
)

// visitRepository is the PostgreSQL-backed implementation of
// [VisitRepository].
type visitRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVisitRepository constructs a [VisitRepository] backed by the provided
// database connection and logger.
func NewVisitRepository(db *DB, logger *logger.Logger) VisitRepository {
	logger.Debug().Msg("creating visit repository")
	return &visitRepository{
		db:     db,
		logger: logger,
	}
}

// ListRecent returns up to limit most recent visits of the branch, newest
// first. The query joins the member roster for the member code, which makes
// it the most expensive read of the protocol; the visit sync stage therefore
// gates calls to it by wall-clock bucket.
func (r *visitRepository) ListRecent(ctx context.Context, tenant models.TenantContext, limit int64) ([]models.VisitRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentVisitsQuery(tenant, limit)
	if err != nil {
		log.Err(err).Str("func", "*visitRepository.ListRecent").Msg("error building recent visits query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*visitRepository.ListRecent").Msg("error querying recent visits")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var visits []models.VisitRecord
	for rows.Next() {
		var v models.VisitRecord
		if err := rows.Scan(&v.VisitID, &v.MemberCode, &v.VisitedAt); err != nil {
			log.Err(err).Str("func", "*visitRepository.ListRecent").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		visits = append(visits, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return visits, nil
}
