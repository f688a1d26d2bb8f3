package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/models"
)

// deviceRepository is the PostgreSQL-backed implementation of
// [DeviceRepository]. It resolves serial numbers against the "devices" table
// maintained by the administration subsystem.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// FindBySerial retrieves the device record provisioned under serialNumber.
//
// Error handling:
//   - empty serial number → [ErrEmptySerialNumber];
//   - no matching row → [ErrDeviceNotFound];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *deviceRepository) FindBySerial(ctx context.Context, serialNumber string) (models.Device, error) {
	log := logger.FromContext(ctx)

	if serialNumber == "" {
		return models.Device{}, ErrEmptySerialNumber
	}

	var device models.Device
	row := r.db.QueryRowContext(ctx, findDeviceBySerial, serialNumber)

	if err := row.Scan(&device.SerialNumber, &device.ProjectID, &device.BranchID, &device.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrDeviceNotFound
		}

		log.Err(err).Str("func", "*deviceRepository.FindBySerial").Msg("error: scanning error")
		return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return device, nil
}
