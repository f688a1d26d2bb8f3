package models

import "time"

// VisitRecord is one access event logged at a branch.
type VisitRecord struct {
	VisitID    int64     `json:"visit_id"`
	MemberCode string    `json:"member_code"`
	VisitedAt  time.Time `json:"visited_at"`
}

// TableName returns the name of the database table
// associated with the VisitRecord model.
func (v VisitRecord) TableName() string {
	return "visits"
}
