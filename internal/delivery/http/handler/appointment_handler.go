package handler

import (
	"net/http"

	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/usecase"
	"salon-scheduler/pkg/response"
	"salon-scheduler/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentListUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentListUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := dto.AppointmentListRequest{
		Search:     query.Get("search"),
		Status:     query.Get("status"),
		TeamMember: query.Get("team_member"),
		SortBy:     query.Get("sort_by"),
		SortDir:    query.Get("sort_dir"),
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.appointmentUsecase.GetAppointments(r.Context(), &req)
	if err != nil {
		respondUpstreamError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
