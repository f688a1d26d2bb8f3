package service

import (
	"context"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/store"
	"github.com/vkarpenko/clocksync/models"
)

// tenantResolver is the concrete implementation of [TenantResolver] backed by
// the device registry.
type tenantResolver struct {
	devices store.DeviceRepository

	logger *logger.Logger
}

// NewTenantResolver constructs a [TenantResolver] over the device repository.
func NewTenantResolver(devices store.DeviceRepository, logger *logger.Logger) TenantResolver {
	return &tenantResolver{
		devices: devices,
		logger:  logger,
	}
}

// Resolve looks the serial number up in the device registry and returns the
// owning tenant/branch pair. The lookup is read-only; registry mutations
// happen out-of-band in the administration subsystem.
func (r *tenantResolver) Resolve(ctx context.Context, serialNumber string) (models.TenantContext, error) {
	log := logger.FromContext(ctx)

	if serialNumber == "" {
		return models.TenantContext{}, ErrValidationNoSerialNumber
	}

	device, err := r.devices.FindBySerial(ctx, serialNumber)
	if err != nil {
		log.Warn().Err(err).Str("serial_number", serialNumber).Msg("serial number resolution failed")
		return models.TenantContext{}, err
	}

	return models.TenantContext{
		ProjectID: device.ProjectID,
		BranchID:  device.BranchID,
	}, nil
}
