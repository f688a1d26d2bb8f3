package service

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/protocol"
	"github.com/vkarpenko/clocksync/internal/store"
	"github.com/vkarpenko/clocksync/models"
)

// scheduleSyncStage pushes the full schedule set whenever its digest differs
// from the version the device last acknowledged. It runs first on every poll
// and is the only stage allowed to interrupt mid-roster pagination: the
// firmware must re-learn access windows before roster data is meaningful, so
// producing output here also resets roster progress on the cursor.
type scheduleSyncStage struct {
	schedules store.ScheduleRepository

	logger *logger.Logger
}

// NewScheduleSyncStage constructs the schedule synchronization stage.
func NewScheduleSyncStage(schedules store.ScheduleRepository, logger *logger.Logger) SyncStage {
	return &scheduleSyncStage{
		schedules: schedules,
		logger:    logger,
	}
}

// Evaluate compares the current schedule digest with the acknowledged one.
//
// A branch with no schedules yields Skip rather than an empty payload:
// there is nothing for the firmware to learn, and acknowledging a digest of
// an empty set would needlessly reset roster progress the moment the first
// schedule appears anyway.
func (s *scheduleSyncStage) Evaluate(ctx context.Context, tenant models.TenantContext, cursor models.SyncCursor) (StageResult, error) {
	log := logger.FromContext(ctx)

	schedules, err := s.schedules.ListSchedules(ctx, tenant)
	if err != nil {
		return Skip, err
	}

	if len(schedules) == 0 {
		return Skip, nil
	}

	version := scheduleVersion(schedules)
	if version == cursor.ScheduleVersion {
		return Skip, nil
	}

	log.Info().
		Str("serial_number", cursor.SerialNumber).
		Str("old_version", cursor.ScheduleVersion).
		Str("new_version", version).
		Msg("schedule set changed, pushing schedules and resetting roster progress")

	next := cursor
	next.ResetRoster(version)

	return StageResult{
		Produced: true,
		Body:     protocol.EncodeSchedules(schedules),
		Cursor:   next,
	}, nil
}

// scheduleVersion computes the FNV-64a digest over the ordered schedule rows.
// The repository returns rows ordered by schedule_id, so the digest is stable
// for an unchanged set and shifts on any insert, delete, or edit.
func scheduleVersion(schedules []models.ScheduleRecord) string {
	h := fnv.New64a()
	for _, s := range schedules {
		fmt.Fprintf(h, "%d|%s|%s|%s\n", s.ScheduleID, s.Name, s.StartTime, s.EndTime)
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
