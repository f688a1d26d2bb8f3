package models

// ScheduleRecord is a named access-window definition belonging to a
// tenant/branch. Schedules are owned by the administration subsystem; the
// synchronization core only reads them and tracks their digest.
type ScheduleRecord struct {
	ScheduleID int64  `json:"schedule_id"`
	Name       string `json:"name"`

	// StartTime and EndTime are wall-clock bounds in "HH:MM" form, the
	// granularity the terminal firmware understands.
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TableName returns the name of the database table
// associated with the ScheduleRecord model.
func (s ScheduleRecord) TableName() string {
	return "schedules"
}
