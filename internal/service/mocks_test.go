package service

import (
	"context"
	"time"

	"github.com/vkarpenko/clocksync/models"
)

// Function-field fakes for the store interfaces, used across the stage and
// dispatcher tests.

type mockDeviceRepository struct {
	findBySerialFn func(ctx context.Context, serialNumber string) (models.Device, error)
}

func (m *mockDeviceRepository) FindBySerial(ctx context.Context, serialNumber string) (models.Device, error) {
	return m.findBySerialFn(ctx, serialNumber)
}

type mockCursorRepository struct {
	loadFn func(ctx context.Context, serialNumber string) (models.SyncCursor, error)
	saveFn func(ctx context.Context, cursor models.SyncCursor) error
}

func (m *mockCursorRepository) Load(ctx context.Context, serialNumber string) (models.SyncCursor, error) {
	return m.loadFn(ctx, serialNumber)
}

func (m *mockCursorRepository) Save(ctx context.Context, cursor models.SyncCursor) error {
	return m.saveFn(ctx, cursor)
}

type mockScheduleRepository struct {
	listSchedulesFn func(ctx context.Context, tenant models.TenantContext) ([]models.ScheduleRecord, error)
}

func (m *mockScheduleRepository) ListSchedules(ctx context.Context, tenant models.TenantContext) ([]models.ScheduleRecord, error) {
	return m.listSchedulesFn(ctx, tenant)
}

type mockMemberRepository struct {
	listActivePageFn func(ctx context.Context, tenant models.TenantContext, offset, limit int64) ([]models.MemberRecord, error)
}

func (m *mockMemberRepository) ListActivePage(ctx context.Context, tenant models.TenantContext, offset, limit int64) ([]models.MemberRecord, error) {
	return m.listActivePageFn(ctx, tenant, offset, limit)
}

type mockVisitRepository struct {
	listRecentFn func(ctx context.Context, tenant models.TenantContext, limit int64) ([]models.VisitRecord, error)
}

func (m *mockVisitRepository) ListRecent(ctx context.Context, tenant models.TenantContext, limit int64) ([]models.VisitRecord, error) {
	return m.listRecentFn(ctx, tenant, limit)
}

// fixedClock is a Clock pinned to a settable instant.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}
