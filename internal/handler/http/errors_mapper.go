package http

import (
	"errors"
	"net/http"

	"github.com/vkarpenko/clocksync/internal/service"
	"github.com/vkarpenko/clocksync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoSerialNumber: http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:    http.StatusBadRequest,

	// An unknown serial is a provisioning fault, not a client mistake: the
	// terminal cannot correct its own serial number, so the fleet dashboard
	// surfaces these as server-side errors.
	store.ErrDeviceNotFound:     http.StatusInternalServerError,
	store.ErrEmptySerialNumber:  http.StatusBadRequest,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError keeps the terminal-visible error text stable: known
// conditions get their sentinel text, anything else collapses to a generic
// message so driver-level detail never reaches the device log.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, store.ErrDeviceNotFound):
		return "device not registered"
	case errors.Is(err, service.ErrValidationNoSerialNumber), errors.Is(err, store.ErrEmptySerialNumber):
		return "Serial Number (SN) missing"
	default:
		return "internal server error"
	}
}
