package handler

import (
	"net/http"

	"salon-scheduler/internal/usecase"
	"salon-scheduler/pkg/response"
)

type WaitlistHandler struct {
	waitlistUsecase usecase.WaitlistUsecase
}

func NewWaitlistHandler(waitlistUsecase usecase.WaitlistUsecase) *WaitlistHandler {
	return &WaitlistHandler{
		waitlistUsecase: waitlistUsecase,
	}
}

func (h *WaitlistHandler) GetWaitlist(w http.ResponseWriter, r *http.Request) {
	waitlist, err := h.waitlistUsecase.GetWaitlist(r.Context())
	if err != nil {
		respondUpstreamError(w, err, "Failed to get waitlist")
		return
	}

	response.Success(w, http.StatusOK, "Waitlist retrieved successfully", waitlist)
}
