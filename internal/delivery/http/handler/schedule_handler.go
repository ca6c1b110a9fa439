package handler

import (
	"encoding/json"
	"net/http"

	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/usecase"
	"salon-scheduler/pkg/response"
	"salon-scheduler/pkg/validator"

	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleGridUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleGridUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

func (h *ScheduleHandler) GetGrid(w http.ResponseWriter, r *http.Request) {
	grid, err := h.scheduleUsecase.Grid(r.Context())
	if err != nil {
		respondUpstreamError(w, err, "Failed to load schedule grid")
		return
	}

	response.Success(w, http.StatusOK, "Schedule grid retrieved successfully", grid)
}

func (h *ScheduleHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.scheduleUsecase.Staff(r.Context())
	if err != nil {
		respondUpstreamError(w, err, "Failed to load staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

func (h *ScheduleHandler) ReloadStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.scheduleUsecase.LoadStaff(r.Context())
	if err != nil {
		respondUpstreamError(w, err, "Failed to reload staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff reloaded successfully", staff)
}

func (h *ScheduleHandler) ToggleStaff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staff, err := h.scheduleUsecase.ToggleStaff(r.Context(), vars["id"])
	if err != nil {
		switch err {
		case usecase.ErrUnknownStaff:
			response.NotFound(w, "Staff member not found")
		default:
			respondUpstreamError(w, err, "Failed to toggle staff")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff selection updated", staff)
}

func (h *ScheduleHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	date, err := h.scheduleUsecase.SelectDate(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date", nil)
		default:
			respondUpstreamError(w, err, "Failed to change date")
		}
		return
	}

	response.Success(w, http.StatusOK, "Date selected successfully", date)
}

func (h *ScheduleHandler) StepDate(w http.ResponseWriter, r *http.Request) {
	var req dto.StepDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	date, err := h.scheduleUsecase.StepDate(r.Context(), &req)
	if err != nil {
		respondUpstreamError(w, err, "Failed to change date")
		return
	}

	response.Success(w, http.StatusOK, "Date changed successfully", date)
}

func (h *ScheduleHandler) Today(w http.ResponseWriter, r *http.Request) {
	date, err := h.scheduleUsecase.Today(r.Context())
	if err != nil {
		respondUpstreamError(w, err, "Failed to change date")
		return
	}

	response.Success(w, http.StatusOK, "Date reset to today", date)
}
