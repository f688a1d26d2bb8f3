package store

import (
	"context"

	"github.com/vkarpenko/clocksync/models"
)

// DeviceRepository resolves terminal serial numbers against the device
// registry. The registry is owned by the administration subsystem; this
// repository only reads it.
type DeviceRepository interface {
	// FindBySerial returns the device provisioned under serialNumber, or
	// [ErrDeviceNotFound] when no such device exists.
	FindBySerial(ctx context.Context, serialNumber string) (models.Device, error)
}

// CursorRepository persists per-device synchronization progress.
type CursorRepository interface {
	// Load returns the cursor for serialNumber, or a zero-valued cursor
	// (no schedule acknowledged, roster at start, no visit bucket) when
	// the device has never polled before.
	Load(ctx context.Context, serialNumber string) (models.SyncCursor, error)

	// Save upserts the cursor. The write is guarded against regressions:
	// when a concurrent duplicate poll has already recorded equal or
	// further progress, the save is a no-op and still reports success.
	Save(ctx context.Context, cursor models.SyncCursor) error
}

// ScheduleRepository reads the schedule definitions of a tenant branch.
type ScheduleRepository interface {
	// ListSchedules returns all schedules of the tenant branch ordered by
	// schedule identifier.
	ListSchedules(ctx context.Context, tenant models.TenantContext) ([]models.ScheduleRecord, error)
}

// MemberRepository reads the active-member roster of a tenant branch.
type MemberRepository interface {
	// ListActivePage returns up to limit active members starting at offset,
	// ordered by member identifier ascending. The ordering must be stable
	// across polls so pagination never skips or repeats a record.
	ListActivePage(ctx context.Context, tenant models.TenantContext, offset, limit int64) ([]models.MemberRecord, error)
}

// VisitRepository reads recent access events of a tenant branch.
type VisitRepository interface {
	// ListRecent returns up to limit most recent visits, newest first,
	// joined with the member roster to carry the member code the terminal
	// displays.
	ListRecent(ctx context.Context, tenant models.TenantContext, limit int64) ([]models.VisitRecord, error)
}

// ErrorClassificator decides whether a failed database operation is transient
// (may succeed when the terminal re-polls) or permanent.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
