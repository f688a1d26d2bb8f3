package http

import (
	"net/http"

	"github.com/vkarpenko/clocksync/internal/logger"
)

const serialNumberParam = "SN"

// getRequest serves the terminal polling endpoint. The firmware parses the
// response body byte-for-byte, so bodies are written verbatim: no JSON
// envelope and no trailing newline (http.Error would append one).
func (h *Handler) getRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	serialNumber := r.URL.Query().Get(serialNumberParam)
	if serialNumber == "" {
		log.Warn().Str("func", "*Handler.getRequest").Msg("poll without serial number")
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Error: Serial Number (SN) missing"))
		return
	}

	body, err := h.services.PollService.Poll(ctx, serialNumber)
	if err != nil {
		log.Error().Err(err).Str("func", "*Handler.getRequest").Str("serial_number", serialNumber).Msg("poll failed")
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(statusFromError(err))
		w.Write([]byte("Error: " + messageFromError(err)))
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(body))
}
