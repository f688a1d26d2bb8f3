package service

import (
	"context"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/protocol"
	"github.com/vkarpenko/clocksync/internal/store"
	"github.com/vkarpenko/clocksync/models"
)

// rosterSyncStage pushes the active-member roster page by page. Page size is
// fixed per server instance and bounded by the terminal's response buffer.
//
// When pagination runs past the end of the roster the stage emits the
// completion sentinel ("OK") exactly once and flags the cursor complete;
// from then on it defers to the visit stage until a schedule change resets
// the cursor.
type rosterSyncStage struct {
	members  store.MemberRepository
	pageSize int64

	logger *logger.Logger
}

// NewRosterSyncStage constructs the roster synchronization stage.
func NewRosterSyncStage(members store.MemberRepository, pageSize int64, logger *logger.Logger) SyncStage {
	return &rosterSyncStage{
		members:  members,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Evaluate produces the next roster page, the completion sentinel, or Skip
// when the roster is already fully pushed.
//
// The offset advances by the number of records actually sent, not by the
// page size, so a final short page keeps the partition exact. Members added
// behind the cursor surface on the next full cycle after a schedule-version
// reset; that eventual inclusion is the documented trade-off for never
// skipping or repeating a record mid-cycle.
func (s *rosterSyncStage) Evaluate(ctx context.Context, tenant models.TenantContext, cursor models.SyncCursor) (StageResult, error) {
	log := logger.FromContext(ctx)

	if cursor.RosterComplete {
		return Skip, nil
	}

	page, err := s.members.ListActivePage(ctx, tenant, cursor.RosterOffset, s.pageSize)
	if err != nil {
		return Skip, err
	}

	next := cursor

	if len(page) == 0 {
		next.RosterComplete = true

		log.Info().
			Str("serial_number", cursor.SerialNumber).
			Int64("roster_size", cursor.RosterOffset).
			Msg("roster sync complete, sending completion sentinel")

		return StageResult{
			Produced: true,
			Body:     protocol.RosterCompleteBody,
			Cursor:   next,
		}, nil
	}

	next.RosterOffset += int64(len(page))

	return StageResult{
		Produced: true,
		Body:     protocol.EncodeRoster(page),
		Cursor:   next,
	}, nil
}
