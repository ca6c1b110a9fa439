package handler

import (
	"errors"
	"net/http"

	"salon-scheduler/internal/repository"
	"salon-scheduler/pkg/response"
)

// respondUpstreamError maps a backend failure onto the response. The
// backend's own message is passed through so the caller sees what the salon
// API rejected; anything else becomes a plain 500.
func respondUpstreamError(w http.ResponseWriter, err error, fallback string) {
	var upstream *repository.UpstreamError
	if errors.As(err, &upstream) {
		message := upstream.Message
		if message == "" {
			message = fallback
		}
		response.Error(w, http.StatusBadGateway, message, nil)
		return
	}
	response.InternalServerError(w, fallback)
}
