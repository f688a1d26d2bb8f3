package service

import (
	"context"
	"time"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/protocol"
	"github.com/vkarpenko/clocksync/internal/store"
	"github.com/vkarpenko/clocksync/models"
)

// visitSyncStage pushes the recent visit log at most once per wall-clock
// bucket. The visit query joins the member roster and is the most expensive
// read of the protocol; the bucket gate keeps its cost proportional to the
// interval, not to the fleet's poll frequency.
//
// The dispatcher places this stage last, so it is only reached once roster
// sync is complete.
type visitSyncStage struct {
	visits     store.VisitRepository
	clock      Clock
	interval   time.Duration
	fetchLimit int64

	logger *logger.Logger
}

// NewVisitSyncStage constructs the visit synchronization stage. interval is
// the bucket width (10 minutes in production) and fetchLimit bounds how many
// visits one push may carry.
func NewVisitSyncStage(visits store.VisitRepository, clock Clock, interval time.Duration, fetchLimit int64, logger *logger.Logger) SyncStage {
	return &visitSyncStage{
		visits:     visits,
		clock:      clock,
		interval:   interval,
		fetchLimit: fetchLimit,
		logger:     logger,
	}
}

// Evaluate pushes recent visits when the poll lands in a bucket the cursor
// has not seen yet, and Skips inside an already-served bucket.
//
// The bucket advances even when the branch logged no visits: the point of
// the gate is to not re-run the visit query within the interval, and an
// empty body is still a produced output for the cursor write. The Skip case
// is the protocol's heartbeat — the dispatcher turns it into an empty
// response with no cursor write.
func (s *visitSyncStage) Evaluate(ctx context.Context, tenant models.TenantContext, cursor models.SyncCursor) (StageResult, error) {
	log := logger.FromContext(ctx)

	bucket := s.clock.Now().UTC().Truncate(s.interval)
	if !cursor.LastVisitBucket.IsZero() && !bucket.After(cursor.LastVisitBucket) {
		return Skip, nil
	}

	visits, err := s.visits.ListRecent(ctx, tenant, s.fetchLimit)
	if err != nil {
		return Skip, err
	}

	log.Debug().
		Str("serial_number", cursor.SerialNumber).
		Time("bucket", bucket).
		Int("visit_count", len(visits)).
		Msg("pushing recent visits for new bucket")

	next := cursor
	next.LastVisitBucket = bucket

	return StageResult{
		Produced: true,
		Body:     protocol.EncodeVisits(visits),
		Cursor:   next,
	}, nil
}
