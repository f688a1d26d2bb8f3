package service

import (
	"context"

	"github.com/vkarpenko/clocksync/models"
)

// TenantResolver maps an anonymous device serial number to its tenant/branch
// context. Resolution happens on every poll; the protocol keeps no
// connection state between requests.
type TenantResolver interface {
	// Resolve returns the tenant context the serial number belongs to, or
	// an error wrapping [store.ErrDeviceNotFound] when the serial is not
	// registered.
	Resolve(ctx context.Context, serialNumber string) (models.TenantContext, error)
}

// StageResult is the tagged outcome of one synchronization stage.
//
// Produced distinguishes "this stage has something to say" from "defer to
// the next stage". The distinction must never be inferred from Body being
// empty: the visit stage legitimately produces an empty body when a new
// bucket opens with no new visits, and that output still advances the
// cursor.
type StageResult struct {
	// Produced is true when the stage claims this poll.
	Produced bool

	// Body is the plain-text response for the terminal. Meaningful only
	// when Produced is true; may be empty.
	Body string

	// Cursor is the cursor state to persist when Produced is true.
	Cursor models.SyncCursor
}

// Skip is the StageResult of a stage that defers to the next one.
var Skip = StageResult{}

// SyncStage is one step of the terminal synchronization protocol. Stages are
// evaluated by the dispatcher in strict priority order; the first stage that
// produces output ends the poll.
type SyncStage interface {
	Evaluate(ctx context.Context, tenant models.TenantContext, cursor models.SyncCursor) (StageResult, error)
}

// PollService orchestrates one terminal poll end to end.
type PollService interface {
	// Poll resolves the device, runs the sync stages in priority order,
	// persists cursor progress, and returns the plain-text response body.
	// An empty body is the no-op heartbeat acknowledgement.
	Poll(ctx context.Context, serialNumber string) (string, error)
}

// AppInfoService exposes build/version information about the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
