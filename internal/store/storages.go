package store

import (
	"github.com/vkarpenko/clocksync/internal/logger"
)

// Storages bundles all repositories backed by the shared database handle.
type Storages struct {
	DeviceRepository   DeviceRepository
	CursorRepository   CursorRepository
	ScheduleRepository ScheduleRepository
	MemberRepository   MemberRepository
	VisitRepository    VisitRepository
}

// NewStorages constructs every repository on top of the shared [DB].
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DeviceRepository:   NewDeviceRepository(db, logger),
		CursorRepository:   NewCursorRepository(db, logger),
		ScheduleRepository: NewScheduleRepository(db, logger),
		MemberRepository:   NewMemberRepository(db, logger),
		VisitRepository:    NewVisitRepository(db, logger),
	}
}
