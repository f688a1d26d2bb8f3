package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/store"
	"github.com/vkarpenko/clocksync/models"
)

func TestTenantResolver_KnownSerial(t *testing.T) {
	resolver := NewTenantResolver(&mockDeviceRepository{
		findBySerialFn: func(ctx context.Context, serialNumber string) (models.Device, error) {
			assert.Equal(t, "ABC123", serialNumber)
			return models.Device{SerialNumber: serialNumber, ProjectID: 7, BranchID: 2}, nil
		},
	}, logger.Nop())

	tenant, err := resolver.Resolve(context.Background(), "ABC123")

	require.NoError(t, err)
	assert.Equal(t, models.TenantContext{ProjectID: 7, BranchID: 2}, tenant)
}

func TestTenantResolver_UnknownSerial(t *testing.T) {
	resolver := NewTenantResolver(&mockDeviceRepository{
		findBySerialFn: func(ctx context.Context, serialNumber string) (models.Device, error) {
			return models.Device{}, store.ErrDeviceNotFound
		},
	}, logger.Nop())

	_, err := resolver.Resolve(context.Background(), "NOPE")

	require.ErrorIs(t, err, store.ErrDeviceNotFound)
}

func TestTenantResolver_EmptySerial(t *testing.T) {
	resolver := NewTenantResolver(&mockDeviceRepository{
		findBySerialFn: func(ctx context.Context, serialNumber string) (models.Device, error) {
			t.Fatal("registry must not be queried for an empty serial")
			return models.Device{}, nil
		},
	}, logger.Nop())

	_, err := resolver.Resolve(context.Background(), "")

	require.ErrorIs(t, err, ErrValidationNoSerialNumber)
}
