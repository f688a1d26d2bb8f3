package models

import "time"

// MemberRecord is one active member entitled to access at a branch. Members
// are ordered by MemberID ascending for stable roster pagination.
type MemberRecord struct {
	// MemberID is the internal identifier and the roster sort key.
	MemberID int64 `json:"member_id"`

	// Code is the member identifier the terminal matches against a
	// presented credential (card number or enrollment PIN).
	Code string `json:"code"`

	// Name is the display name shown on the terminal screen.
	Name string `json:"name"`

	// ExpiresAt is the membership expiration date pushed to the terminal.
	ExpiresAt time.Time `json:"expires_at"`

	// PhotoRef is an opaque reference to the member's photo, if any.
	PhotoRef string `json:"photo_ref"`
}

// TableName returns the name of the database table
// associated with the MemberRecord model.
func (m MemberRecord) TableName() string {
	return "members"
}
