package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/vkarpenko/clocksync/models"
)

const (
	findDeviceBySerial = `SELECT serial_number, project_id, branch_id, created_at
    FROM devices
    WHERE serial_number = $1;`

	loadCursor = `SELECT serial_number, schedule_version, roster_offset, roster_complete, last_visit_bucket, updated_at
    FROM sync_cursors
    WHERE serial_number = $1;`

	// The upsert's UPDATE arm carries a progress guard: a concurrent
	// duplicate poll that already recorded equal or further progress makes
	// the statement affect zero rows, which the repository treats as
	// success. A changed schedule version always wins because it is a
	// deliberate roster reset.
	saveCursor = `INSERT INTO sync_cursors (serial_number, schedule_version, roster_offset, roster_complete, last_visit_bucket, updated_at)
    VALUES ($1, $2, $3, $4, $5, NOW())
    ON CONFLICT (serial_number) DO UPDATE SET
        schedule_version  = EXCLUDED.schedule_version,
        roster_offset     = EXCLUDED.roster_offset,
        roster_complete   = EXCLUDED.roster_complete,
        last_visit_bucket = EXCLUDED.last_visit_bucket,
        updated_at        = NOW()
    WHERE sync_cursors.schedule_version IS DISTINCT FROM EXCLUDED.schedule_version
       OR EXCLUDED.roster_offset > sync_cursors.roster_offset
       OR (EXCLUDED.roster_complete AND NOT sync_cursors.roster_complete)
       OR EXCLUDED.last_visit_bucket > sync_cursors.last_visit_bucket;`

	listSchedules = `SELECT schedule_id, name, start_time, end_time
    FROM schedules
    WHERE project_id = $1 AND branch_id = $2
    ORDER BY schedule_id;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildRosterPageQuery builds the paginated active-member query. The ORDER BY
// member_id is the stability guarantee of roster pagination.
func buildRosterPageQuery(tenant models.TenantContext, offset, limit int64) (string, []any, error) {
	return psql.
		Select("member_id", "code", "name", "expires_at", "photo_ref").
		From("members").
		Where(sq.Eq{"project_id": tenant.ProjectID, "branch_id": tenant.BranchID, "active": true}).
		OrderBy("member_id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
}

// buildRecentVisitsQuery builds the bounded newest-first visit query. The
// join against members carries the member code the terminal displays; this
// join is the reason visit pushes are bucket-throttled.
func buildRecentVisitsQuery(tenant models.TenantContext, limit int64) (string, []any, error) {
	return psql.
		Select("v.visit_id", "m.code", "v.visited_at").
		From("visits v").
		Join("members m ON m.member_id = v.member_id").
		Where(sq.Eq{"v.project_id": tenant.ProjectID, "v.branch_id": tenant.BranchID}).
		OrderBy("v.visited_at DESC").
		Limit(uint64(limit)).
		ToSql()
}
