package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/models"
)

// cursorRepository is the PostgreSQL-backed implementation of
// [CursorRepository]. It owns the "sync_cursors" table, the only state the
// polling protocol mutates.
type cursorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCursorRepository constructs a [CursorRepository] backed by the provided
// database connection and logger.
func NewCursorRepository(db *DB, logger *logger.Logger) CursorRepository {
	logger.Debug().Msg("creating cursor repository")
	return &cursorRepository{
		db:     db,
		logger: logger,
	}
}

// Load retrieves the cursor for serialNumber. A device that has never polled
// before gets a zero-valued cursor: no schedule acknowledged, roster at the
// start, no visit bucket sent. The zero cursor is not persisted here; it
// reaches the table only after the first successful poll produces a write.
func (r *cursorRepository) Load(ctx context.Context, serialNumber string) (models.SyncCursor, error) {
	log := logger.FromContext(ctx)

	if serialNumber == "" {
		return models.SyncCursor{}, ErrEmptySerialNumber
	}

	var cursor models.SyncCursor
	row := r.db.QueryRowContext(ctx, loadCursor, serialNumber)

	err := row.Scan(
		&cursor.SerialNumber,
		&cursor.ScheduleVersion,
		&cursor.RosterOffset,
		&cursor.RosterComplete,
		&cursor.LastVisitBucket,
		&cursor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncCursor{SerialNumber: serialNumber}, nil
		}

		log.Err(err).Str("func", "*cursorRepository.Load").Msg("error: scanning error")
		return models.SyncCursor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cursor, nil
}

// Save upserts the cursor with the progress-guarded [saveCursor] statement.
//
// Zero affected rows is success: it means a concurrent duplicate poll from
// the same terminal already recorded equal or further progress, and the
// guard prevented a regression. Arrival order therefore never decides which
// cursor survives; progress does.
//
// Error handling:
//   - empty serial number → [ErrEmptySerialNumber];
//   - PostgreSQL foreign_key_violation (23503) → [ErrDeviceNotFound]
//     (the terminal was deprovisioned mid-poll);
//   - any other driver-level error → wrapped as [ErrExecutingStatement],
//     with log severity chosen by the error classificator.
func (r *cursorRepository) Save(ctx context.Context, cursor models.SyncCursor) error {
	log := logger.FromContext(ctx)

	if cursor.SerialNumber == "" {
		return ErrEmptySerialNumber
	}

	_, err := r.db.ExecContext(ctx, saveCursor,
		cursor.SerialNumber,
		cursor.ScheduleVersion,
		cursor.RosterOffset,
		cursor.RosterComplete,
		cursor.LastVisitBucket,
	)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrDeviceNotFound
		}

		event := log.Error()
		if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
			// transient fault: the terminal's next poll is the retry
			event = log.Warn()
		}
		event.Err(err).Str("func", "*cursorRepository.Save").Msg("error saving sync cursor")

		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
