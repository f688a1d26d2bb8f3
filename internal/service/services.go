package service

import (
	"github.com/vkarpenko/clocksync/internal/config"
	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/store"
)

// Services bundles every service consumed by the transport layer.
type Services struct {
	PollService    PollService
	AppInfoService AppInfoService
}

// NewServices wires the full poll pipeline: tenant resolver, the three sync
// stages in protocol priority order, and the dispatcher on top.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	resolver := NewTenantResolver(storages.DeviceRepository, logger)

	// Stage order is protocol-mandated: schedules preempt roster, roster
	// completion gates visits.
	stages := []SyncStage{
		NewScheduleSyncStage(storages.ScheduleRepository, logger),
		NewRosterSyncStage(storages.MemberRepository, cfg.Sync.RosterPageSize, logger),
		NewVisitSyncStage(storages.VisitRepository, NewSystemClock(), cfg.Sync.VisitInterval, cfg.Sync.VisitFetchLimit, logger),
	}

	return &Services{
		PollService:    NewPollService(resolver, storages.CursorRepository, stages, logger),
		AppInfoService: appInfo,
	}, nil
}
