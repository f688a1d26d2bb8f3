package service

import (
	"context"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/store"
)

// pollService is the concrete implementation of [PollService]. It drives one
// poll through the fixed stage pipeline:
//
//	schedules → roster pages → roster completion → visits/heartbeat
//
// The first stage that produces output determines the response and the
// cursor write; later stages are not evaluated. This single-output rule
// bounds the terminal's per-response buffer and guarantees a schedule change
// preempts roster and visit traffic on the very next poll.
type pollService struct {
	resolver TenantResolver
	cursors  store.CursorRepository
	stages   []SyncStage

	logger *logger.Logger
}

// NewPollService constructs a [PollService] over the resolver, the cursor
// store, and the stages in evaluation priority order.
func NewPollService(resolver TenantResolver, cursors store.CursorRepository, stages []SyncStage, logger *logger.Logger) PollService {
	logger.Debug().Int("stages", len(stages)).Msg("creating poll service")
	return &pollService{
		resolver: resolver,
		cursors:  cursors,
		stages:   stages,
		logger:   logger,
	}
}

// Poll implements [PollService].
//
// The cursor is written only after a stage has successfully computed the
// response body, never speculatively: a failed poll leaves the cursor
// untouched and the terminal's own re-poll is the retry. When every stage
// skips, the empty body is the no-op heartbeat and nothing is persisted.
func (p *pollService) Poll(ctx context.Context, serialNumber string) (string, error) {
	log := logger.FromContext(ctx)

	if serialNumber == "" {
		return "", ErrValidationNoSerialNumber
	}

	tenant, err := p.resolver.Resolve(ctx, serialNumber)
	if err != nil {
		return "", err
	}

	cursor, err := p.cursors.Load(ctx, serialNumber)
	if err != nil {
		return "", err
	}

	for _, stage := range p.stages {
		result, err := stage.Evaluate(ctx, tenant, cursor)
		if err != nil {
			return "", err
		}

		if !result.Produced {
			continue
		}

		if err := p.cursors.Save(ctx, result.Cursor); err != nil {
			return "", err
		}

		return result.Body, nil
	}

	log.Debug().Str("serial_number", serialNumber).Msg("all stages skipped, heartbeat response")

	return "", nil
}
