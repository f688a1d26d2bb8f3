package models

import "time"

// Device represents a provisioned attendance terminal identified by its
// serial number. Device records are created out-of-band by the administration
// subsystem and are read-only for the synchronization core.
type Device struct {
	// SerialNumber is the opaque identifier the terminal sends with every
	// poll. It is the primary key of the device registry.
	SerialNumber string `json:"serial_number"`

	// ProjectID is the identifier of the tenant (gym project) that owns
	// this terminal.
	ProjectID int64 `json:"project_id"`

	// BranchID is the identifier of the branch the terminal is installed at.
	BranchID int64 `json:"branch_id"`

	// CreatedAt is the timestamp when the terminal was provisioned.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Device model.
func (d Device) TableName() string {
	return "devices"
}

// TenantContext is the tenant/branch pair a device serial number resolves to.
// Every read the synchronization core performs is scoped by it.
type TenantContext struct {
	ProjectID int64 `json:"project_id"`
	BranchID  int64 `json:"branch_id"`
}
