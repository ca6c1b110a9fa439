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

type WizardHandler struct {
	wizardUsecase usecase.BookingWizardUsecase
	validator     *validator.CustomValidator
}

func NewWizardHandler(wizardUsecase usecase.BookingWizardUsecase, validator *validator.CustomValidator) *WizardHandler {
	return &WizardHandler{
		wizardUsecase: wizardUsecase,
		validator:     validator,
	}
}

func (h *WizardHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenWizardRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := h.wizardUsecase.Open(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date", nil)
		default:
			respondUpstreamError(w, err, "Failed to open booking wizard")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking wizard opened", state)
}

func (h *WizardHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWizardError(w, err, "Failed to get wizard state")
		return
	}

	response.Success(w, http.StatusOK, "Wizard state retrieved", state)
}

func (h *WizardHandler) SelectService(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectServiceRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.wizardUsecase.SelectService(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondWizardError(w, err, "Failed to select service")
		return
	}

	response.Success(w, http.StatusOK, "Service selected", state)
}

func (h *WizardHandler) SelectProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectProfessionalRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.wizardUsecase.SelectProfessional(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondWizardError(w, err, "Failed to select professional")
		return
	}

	response.Success(w, http.StatusOK, "Professional selected", state)
}

func (h *WizardHandler) SelectTimeSlot(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectTimeSlotRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.wizardUsecase.SelectTimeSlot(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondWizardError(w, err, "Failed to select time slot")
		return
	}

	response.Success(w, http.StatusOK, "Time slot selected", state)
}

func (h *WizardHandler) SearchClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.wizardUsecase.SearchClients(r.Context(), mux.Vars(r)["id"], r.URL.Query().Get("q"))
	if err != nil {
		h.respondWizardError(w, err, "Failed to search clients")
		return
	}

	response.Success(w, http.StatusOK, "Clients retrieved successfully", clients)
}

func (h *WizardHandler) SelectClient(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectClientRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.wizardUsecase.SelectClient(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondWizardError(w, err, "Failed to select client")
		return
	}

	response.Success(w, http.StatusOK, "Client selected", state)
}

func (h *WizardHandler) StartNewClient(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.StartNewClient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWizardError(w, err, "Failed to start new client")
		return
	}

	response.Success(w, http.StatusOK, "New client mode started", state)
}

func (h *WizardHandler) EnterNewClient(w http.ResponseWriter, r *http.Request) {
	var req dto.NewClientRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.wizardUsecase.EnterNewClient(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondWizardError(w, err, "Failed to save client details")
		return
	}

	response.Success(w, http.StatusOK, "Client details saved", state)
}

func (h *WizardHandler) ClearClient(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.ClearClient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWizardError(w, err, "Failed to clear client")
		return
	}

	response.Success(w, http.StatusOK, "Client selection cleared", state)
}

func (h *WizardHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentMethodRequest
	if !h.decode(w, r, &req) {
		return
	}

	state, err := h.wizardUsecase.SetPaymentMethod(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		h.respondWizardError(w, err, "Failed to set payment method")
		return
	}

	response.Success(w, http.StatusOK, "Payment method set", state)
}

func (h *WizardHandler) Proceed(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Proceed(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWizardError(w, err, "Failed to proceed")
		return
	}

	response.Success(w, http.StatusOK, "Proceeded to confirmation", state)
}

func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	state, err := h.wizardUsecase.Back(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWizardError(w, err, "Failed to go back")
		return
	}

	response.Success(w, http.StatusOK, "Moved back one step", state)
}

func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.wizardUsecase.Submit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.respondWizardError(w, err, "Failed to submit booking")
		return
	}

	response.Success(w, http.StatusCreated, result.Message, result)
}

func (h *WizardHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.wizardUsecase.Close(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.respondWizardError(w, err, "Failed to close wizard")
		return
	}

	response.Success(w, http.StatusOK, "Wizard closed", nil)
}

func (h *WizardHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func (h *WizardHandler) respondWizardError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrWizardNotFound:
		response.NotFound(w, "Wizard session not found")
	case usecase.ErrUnknownService:
		response.NotFound(w, "Service not found")
	case usecase.ErrUnknownProfessional:
		response.NotFound(w, "Professional not found")
	case usecase.ErrClientNotFound:
		response.NotFound(w, "Client not found")
	case usecase.ErrInvalidTimeLabel:
		response.Error(w, http.StatusBadRequest, "Invalid time label", nil)
	case usecase.ErrSlotUnavailable:
		response.Error(w, http.StatusConflict, "Time slot is not available", nil)
	case usecase.ErrClientIncomplete:
		response.Error(w, http.StatusBadRequest, "Client details are incomplete", nil)
	case usecase.ErrInvalidStep:
		response.Error(w, http.StatusConflict, "Operation not valid in current step", nil)
	case usecase.ErrInvalidPaymentMethod:
		response.Error(w, http.StatusBadRequest, "Invalid payment method", nil)
	default:
		respondUpstreamError(w, err, fallback)
	}
}
