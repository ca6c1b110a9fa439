package http

import (
	"net/http"

	"salon-scheduler/internal/delivery/http/handler"
	"salon-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	scheduleHandler    *handler.ScheduleHandler
	waitlistHandler    *handler.WaitlistHandler
	appointmentHandler *handler.AppointmentHandler
	wizardHandler      *handler.WizardHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	scheduleHandler *handler.ScheduleHandler,
	waitlistHandler *handler.WaitlistHandler,
	appointmentHandler *handler.AppointmentHandler,
	wizardHandler *handler.WizardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		scheduleHandler:    scheduleHandler,
		waitlistHandler:    waitlistHandler,
		appointmentHandler: appointmentHandler,
		wizardHandler:      wizardHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Everything else forwards the caller's token upstream, so it all
	// sits behind the auth middleware.
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Schedule grid
	protected.HandleFunc("/schedule/grid", r.scheduleHandler.GetGrid).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/staff", r.scheduleHandler.GetStaff).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/staff/reload", r.scheduleHandler.ReloadStaff).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/staff/{id}/toggle", r.scheduleHandler.ToggleStaff).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/date", r.scheduleHandler.SelectDate).Methods(http.MethodPut)
	protected.HandleFunc("/schedule/date/step", r.scheduleHandler.StepDate).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/date/today", r.scheduleHandler.Today).Methods(http.MethodPost)

	// Waitlist and appointment table
	protected.HandleFunc("/waitlist", r.waitlistHandler.GetWaitlist).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.GetAppointments).Methods(http.MethodGet)

	// Booking wizard
	protected.HandleFunc("/wizard", r.wizardHandler.Open).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}", r.wizardHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/{id}", r.wizardHandler.Close).Methods(http.MethodDelete)
	protected.HandleFunc("/wizard/{id}/service", r.wizardHandler.SelectService).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/professional", r.wizardHandler.SelectProfessional).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/slot", r.wizardHandler.SelectTimeSlot).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/clients", r.wizardHandler.SearchClients).Methods(http.MethodGet)
	protected.HandleFunc("/wizard/{id}/client", r.wizardHandler.SelectClient).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/client/new", r.wizardHandler.StartNewClient).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/client/new", r.wizardHandler.EnterNewClient).Methods(http.MethodPut)
	protected.HandleFunc("/wizard/{id}/client/clear", r.wizardHandler.ClearClient).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/payment", r.wizardHandler.SetPaymentMethod).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/proceed", r.wizardHandler.Proceed).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/back", r.wizardHandler.Back).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/{id}/submit", r.wizardHandler.Submit).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
