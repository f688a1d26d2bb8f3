package models

import "time"

// SyncCursor is the per-device synchronization progress marker. It is the
// only state the polling protocol owns; everything else the core touches is
// read-only tenant data.
//
// A schedule version bump resets roster progress (RosterOffset back to zero,
// RosterComplete false) because the terminal firmware re-learns access
// windows before roster data is meaningful again. See ResetRoster.
type SyncCursor struct {
	// SerialNumber of the device this cursor belongs to.
	SerialNumber string `json:"serial_number"`

	// ScheduleVersion is the digest of the schedule set last acknowledged
	// by the device. Empty for a freshly provisioned device.
	ScheduleVersion string `json:"schedule_version"`

	// RosterOffset is the pagination position within the ordered active
	// member list: the number of roster records already pushed.
	RosterOffset int64 `json:"roster_offset"`

	// RosterComplete is true once every roster record has been sent at
	// least once since the cursor was last reset.
	RosterComplete bool `json:"roster_complete"`

	// LastVisitBucket is the wall-clock bucket (poll time truncated to the
	// visit sync interval, UTC) for which visits were last pushed. The zero
	// time means no visit push has happened yet.
	LastVisitBucket time.Time `json:"last_visit_bucket"`

	// UpdatedAt is maintained by the storage layer on every upsert.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the SyncCursor model.
func (c SyncCursor) TableName() string {
	return "sync_cursors"
}

// ResetRoster clears roster progress after a schedule version change and
// records the newly acknowledged version.
func (c *SyncCursor) ResetRoster(scheduleVersion string) {
	c.ScheduleVersion = scheduleVersion
	c.RosterOffset = 0
	c.RosterComplete = false
}
