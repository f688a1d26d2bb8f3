// Package protocol serializes domain records into the attendance terminal's
// line-oriented plain-text wire format.
//
// The format is fixed by the terminal firmware and cannot change: one record
// per line, fields joined by tabs, lines joined by "\n" with no trailing
// newline. Every encoder is a pure function, total over its input: an empty
// record list encodes to an empty string, never an error.
package protocol

import (
	"fmt"
	"strings"

	"github.com/vkarpenko/clocksync/models"
)

// Sentinel bodies with fixed meaning in the terminal protocol.
const (
	// RosterCompleteBody tells the firmware its enrollment data is current.
	RosterCompleteBody = "OK"

	// DateLayout is the calendar form the firmware parses for member
	// expiration dates.
	DateLayout = "2006-01-02"

	// TimestampLayout is the form the firmware parses for visit times.
	TimestampLayout = "2006-01-02 15:04:05"
)

// EncodeSchedules renders the full schedule set of a branch.
//
// Line form: "DATA SCHEDULE Id=<id>\tName=<name>\tStart=<HH:MM>\tEnd=<HH:MM>".
func EncodeSchedules(schedules []models.ScheduleRecord) string {
	lines := make([]string, 0, len(schedules))
	for _, s := range schedules {
		lines = append(lines, fmt.Sprintf("DATA SCHEDULE Id=%d\tName=%s\tStart=%s\tEnd=%s",
			s.ScheduleID, sanitize(s.Name), s.StartTime, s.EndTime))
	}

	return strings.Join(lines, "\n")
}

// EncodeRoster renders one page of the active-member roster.
//
// Line form: "DATA USER PIN=<code>\tName=<name>\tEndDate=<date>\tPhoto=<ref>".
func EncodeRoster(members []models.MemberRecord) string {
	lines := make([]string, 0, len(members))
	for _, m := range members {
		lines = append(lines, fmt.Sprintf("DATA USER PIN=%s\tName=%s\tEndDate=%s\tPhoto=%s",
			sanitize(m.Code), sanitize(m.Name), m.ExpiresAt.UTC().Format(DateLayout), sanitize(m.PhotoRef)))
	}

	return strings.Join(lines, "\n")
}

// EncodeVisits renders the recent visit log, newest first.
//
// Line form: "DATA VISIT PIN=<code>\tTime=<timestamp>".
func EncodeVisits(visits []models.VisitRecord) string {
	lines := make([]string, 0, len(visits))
	for _, v := range visits {
		lines = append(lines, fmt.Sprintf("DATA VISIT PIN=%s\tTime=%s",
			sanitize(v.MemberCode), v.VisitedAt.UTC().Format(TimestampLayout)))
	}

	return strings.Join(lines, "\n")
}

// sanitize strips the characters that would corrupt the line/field framing.
// The firmware has no escaping mechanism, so tabs and line breaks inside
// free-text fields become single spaces.
func sanitize(field string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		default:
			return r
		}
	}, field)
}
