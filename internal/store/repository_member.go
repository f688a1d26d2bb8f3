package store

import (
	"context"
	"fmt"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/models"
)

// memberRepository is the PostgreSQL-backed implementation of
// [MemberRepository].
type memberRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemberRepository constructs a [MemberRepository] backed by the provided
// database connection and logger.
func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	logger.Debug().Msg("creating member repository")
	return &memberRepository{
		db:     db,
		logger: logger,
	}
}

// ListActivePage returns one page of the active-member roster, ordered by
// member identifier ascending. An offset past the end of the roster yields
// an empty page, which the roster sync stage turns into the completion
// sentinel.
func (r *memberRepository) ListActivePage(ctx context.Context, tenant models.TenantContext, offset, limit int64) ([]models.MemberRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRosterPageQuery(tenant, offset, limit)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.ListActivePage").Msg("error building roster page query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.ListActivePage").Msg("error querying roster page")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var members []models.MemberRecord
	for rows.Next() {
		var m models.MemberRecord
		if err := rows.Scan(&m.MemberID, &m.Code, &m.Name, &m.ExpiresAt, &m.PhotoRef); err != nil {
			log.Err(err).Str("func", "*memberRepository.ListActivePage").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}
