package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"salon-scheduler/internal/converter"
	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/domain/entity"
	"salon-scheduler/internal/domain/repository"
	"salon-scheduler/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrWizardNotFound       = errors.New("wizard session not found")
	ErrUnknownService       = errors.New("service not found")
	ErrUnknownProfessional  = errors.New("professional not found")
	ErrInvalidTimeLabel     = errors.New("invalid time label")
	ErrSlotUnavailable      = errors.New("time slot is not available")
	ErrClientNotFound       = errors.New("client not found")
	ErrClientIncomplete     = errors.New("client details are incomplete")
	ErrInvalidStep          = errors.New("operation not valid in current step")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// searchResultLimit caps the client list shown for an empty search box.
const searchResultLimit = 10

// GridRefresher lets the wizard push fresh bookings onto the day grid after
// a successful submission.
type GridRefresher interface {
	RefreshBookings(ctx context.Context) error
}

type BookingWizardUsecase interface {
	Open(ctx context.Context, req *dto.OpenWizardRequest) (*dto.WizardStateResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	SelectService(ctx context.Context, sessionID string, req *dto.SelectServiceRequest) (*dto.WizardStateResponse, error)
	SelectProfessional(ctx context.Context, sessionID string, req *dto.SelectProfessionalRequest) (*dto.WizardStateResponse, error)
	SelectTimeSlot(ctx context.Context, sessionID string, req *dto.SelectTimeSlotRequest) (*dto.WizardStateResponse, error)
	SearchClients(ctx context.Context, sessionID, query string) (*dto.ClientListResponse, error)
	SelectClient(ctx context.Context, sessionID string, req *dto.SelectClientRequest) (*dto.WizardStateResponse, error)
	StartNewClient(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	EnterNewClient(ctx context.Context, sessionID string, req *dto.NewClientRequest) (*dto.WizardStateResponse, error)
	ClearClient(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	SetPaymentMethod(ctx context.Context, sessionID string, req *dto.PaymentMethodRequest) (*dto.WizardStateResponse, error)
	Proceed(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	Back(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error)
	Submit(ctx context.Context, sessionID string) (*dto.WizardSubmitResponse, error)
	Close(ctx context.Context, sessionID string) error
}

// wizardSession is one open booking wizard. The per-session mutex is held
// across upstream fetches: selections commit, and steps advance, only after
// the fetch they depend on has succeeded, so a failed fetch leaves the
// session exactly where it was.
type wizardSession struct {
	mu sync.Mutex

	id       uuid.UUID
	date     time.Time
	draft    entity.BookingDraft
	defaults *entity.WizardDefaults

	services      []entity.Service
	professionals []entity.StaffMember
	slots         []entity.AvailabilitySlot
}

type bookingWizardUsecase struct {
	log         *logrus.Logger
	catalogRepo repository.CatalogRepository
	bookingRepo repository.BookingRepository
	clientCache *service.ClientCacheService
	grid        GridRefresher

	mu       sync.Mutex
	sessions map[string]*wizardSession

	clock func() time.Time
}

func NewBookingWizardUsecase(
	log *logrus.Logger,
	catalogRepo repository.CatalogRepository,
	bookingRepo repository.BookingRepository,
	clientCache *service.ClientCacheService,
	grid GridRefresher,
) BookingWizardUsecase {
	return &bookingWizardUsecase{
		log:         log,
		catalogRepo: catalogRepo,
		bookingRepo: bookingRepo,
		clientCache: clientCache,
		grid:        grid,
		sessions:    make(map[string]*wizardSession),
		clock:       time.Now,
	}
}

// Open starts a wizard session on the service step. Grid cell clicks pass a
// (time, staff) pre-seed; the matching selections are applied automatically
// as soon as the data to validate them against has been fetched.
func (u *bookingWizardUsecase) Open(ctx context.Context, req *dto.OpenWizardRequest) (*dto.WizardStateResponse, error) {
	services, err := u.catalogRepo.Services(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch services for wizard: %+v", err)
		return nil, err
	}

	date := u.clock().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	sess := &wizardSession{
		id:       uuid.New(),
		date:     date,
		draft:    entity.NewBookingDraft(),
		services: services,
	}
	if req.Defaults != nil && (req.Defaults.Time != "" || req.Defaults.StaffID != "") {
		sess.defaults = &entity.WizardDefaults{
			SlotLabel: req.Defaults.Time,
			StaffID:   req.Defaults.StaffID,
		}
	}

	u.mu.Lock()
	u.sessions[sess.id.String()] = sess
	u.mu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return u.stateLocked(sess), nil
}

func (u *bookingWizardUsecase) Get(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return u.stateLocked(sess), nil
}

// SelectService commits a service and advances to the professional step once
// the professional list has been fetched. A staff pre-seed that matches one
// of the fetched professionals auto-advances further.
func (u *bookingWizardUsecase) SelectService(ctx context.Context, sessionID string, req *dto.SelectServiceRequest) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	svc := findService(sess.services, req.ServiceID)
	if svc == nil {
		return nil, ErrUnknownService
	}

	professionals, err := u.catalogRepo.Professionals(ctx, svc.ID, sess.date)
	if err != nil {
		u.log.Warnf("Failed to fetch professionals for service %s: %+v", svc.ID, err)
		return nil, err
	}

	sess.draft.Service = svc
	sess.draft.Professional = nil
	sess.draft.TimeSlot = nil
	sess.professionals = professionals
	sess.slots = nil
	sess.draft.Step = entity.StepSelectProfessional

	if sess.defaults != nil && sess.defaults.StaffID != "" {
		seeded := findProfessional(professionals, sess.defaults.StaffID)
		sess.defaults.StaffID = ""
		if seeded != nil {
			if err := u.commitProfessionalLocked(ctx, sess, seeded); err != nil {
				u.log.Warnf("Failed to auto-apply staff pre-seed: %+v", err)
			}
		}
	}
	return u.stateLocked(sess), nil
}

func (u *bookingWizardUsecase) SelectProfessional(ctx context.Context, sessionID string, req *dto.SelectProfessionalRequest) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.draft.Step < entity.StepSelectProfessional || sess.draft.Service == nil {
		return nil, ErrInvalidStep
	}
	pro := findProfessional(sess.professionals, req.ProfessionalID)
	if pro == nil {
		return nil, ErrUnknownProfessional
	}

	if err := u.commitProfessionalLocked(ctx, sess, pro); err != nil {
		return nil, err
	}
	return u.stateLocked(sess), nil
}

// commitProfessionalLocked fetches the availability for one professional and,
// on success, commits the selection and advances to the time step. A one-shot
// time pre-seed that matches an available slot advances straight to the
// client step.
func (u *bookingWizardUsecase) commitProfessionalLocked(ctx context.Context, sess *wizardSession, pro *entity.StaffMember) error {
	slots, err := u.catalogRepo.TimeSlots(ctx, pro.ID, sess.draft.Service.ID, sess.date)
	if err != nil {
		u.log.Warnf("Failed to fetch time slots for professional %s: %+v", pro.ID, err)
		return err
	}

	available := make([]entity.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Available {
			available = append(available, slot)
		}
	}

	sess.draft.Professional = pro
	sess.draft.TimeSlot = nil
	sess.slots = available
	sess.draft.Step = entity.StepSelectTimeSlot

	if sess.defaults != nil && sess.defaults.SlotLabel != "" {
		seed := entity.WizardDefaults{SlotLabel: sess.defaults.SlotLabel}
		sess.defaults.SlotLabel = ""
		for i := range available {
			if seed.MatchesSlot(available[i]) {
				slot := available[i]
				sess.draft.TimeSlot = &slot
				sess.draft.Step = entity.StepClientInfo
				break
			}
		}
	}
	return nil
}

func (u *bookingWizardUsecase) SelectTimeSlot(ctx context.Context, sessionID string, req *dto.SelectTimeSlotRequest) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.draft.Step < entity.StepSelectTimeSlot || sess.draft.Professional == nil {
		return nil, ErrInvalidStep
	}
	index, ok := entity.SlotIndexForLabel(req.Label)
	if !ok {
		return nil, ErrInvalidTimeLabel
	}

	for i := range sess.slots {
		if entity.SlotIndexForTime(sess.slots[i].StartTime) == index {
			slot := sess.slots[i]
			sess.draft.TimeSlot = &slot
			sess.draft.Step = entity.StepClientInfo
			return u.stateLocked(sess), nil
		}
	}
	return nil, ErrSlotUnavailable
}

// SearchClients matches the query against name, email and phone. An empty
// query returns the head of the directory so the picker is never blank.
func (u *bookingWizardUsecase) SearchClients(ctx context.Context, sessionID, query string) (*dto.ClientListResponse, error) {
	if _, err := u.session(sessionID); err != nil {
		return nil, err
	}

	clients, err := u.clientCache.GetClients(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch clients for search: %+v", err)
		return nil, err
	}

	query = strings.TrimSpace(query)
	matched := make([]entity.Client, 0, searchResultLimit)
	for i := range clients {
		if query != "" && !clients[i].Matches(query) {
			continue
		}
		matched = append(matched, clients[i])
		if query == "" && len(matched) == searchResultLimit {
			break
		}
	}

	responses := converter.ClientsToResponses(matched)
	return &dto.ClientListResponse{
		Clients: responses,
		Total:   len(responses),
	}, nil
}

func (u *bookingWizardUsecase) SelectClient(ctx context.Context, sessionID string, req *dto.SelectClientRequest) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	clients, err := u.clientCache.GetClients(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch clients for selection: %+v", err)
		return nil, err
	}

	var selected *entity.Client
	for i := range clients {
		if clients[i].ID == req.ClientID {
			selected = &clients[i]
			break
		}
	}
	if selected == nil {
		return nil, ErrClientNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.draft.Step < entity.StepClientInfo {
		return nil, ErrInvalidStep
	}
	sess.draft.ClientMode = entity.ClientModeSelected
	sess.draft.ExistingClient = selected
	sess.draft.NewClient = nil
	return u.stateLocked(sess), nil
}

func (u *bookingWizardUsecase) StartNewClient(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.draft.Step < entity.StepClientInfo {
		return nil, ErrInvalidStep
	}
	sess.draft.ClientMode = entity.ClientModeNew
	sess.draft.ExistingClient = nil
	sess.draft.NewClient = &entity.ClientRecord{}
	return u.stateLocked(sess), nil
}

// EnterNewClient stores the new-client form. The free-form name is split on
// the first whitespace run; a single-word name yields an empty last name.
func (u *bookingWizardUsecase) EnterNewClient(ctx context.Context, sessionID string, req *dto.NewClientRequest) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.draft.Step < entity.StepClientInfo {
		return nil, ErrInvalidStep
	}
	firstName, lastName := entity.SplitClientName(req.Name)
	sess.draft.ClientMode = entity.ClientModeNew
	sess.draft.ExistingClient = nil
	sess.draft.NewClient = &entity.ClientRecord{
		FirstName: firstName,
		LastName:  lastName,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
	}
	return u.stateLocked(sess), nil
}

// ClearClient resets the client step back to search mode, discarding both a
// selected record and a part-filled new client form.
func (u *bookingWizardUsecase) ClearClient(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.draft.ClientMode = entity.ClientModeSearch
	sess.draft.ExistingClient = nil
	sess.draft.NewClient = nil
	return u.stateLocked(sess), nil
}

func (u *bookingWizardUsecase) SetPaymentMethod(ctx context.Context, sessionID string, req *dto.PaymentMethodRequest) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	method, ok := entity.ParsePaymentMethod(req.Method)
	if !ok {
		return nil, ErrInvalidPaymentMethod
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.draft.PaymentMethod = method
	return u.stateLocked(sess), nil
}

// Proceed is the explicit step-4 confirmation: it requires a resolved client
// and moves to the payment step.
func (u *bookingWizardUsecase) Proceed(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.draft.Step != entity.StepClientInfo {
		return nil, ErrInvalidStep
	}
	if !sess.draft.ClientResolved() {
		return nil, ErrClientIncomplete
	}
	sess.draft.Step = entity.StepPaymentConfirm
	return u.stateLocked(sess), nil
}

// Back moves one step toward the service step, keeping prior selections so
// moving forward again does not refetch. At the first step it is a no-op.
func (u *bookingWizardUsecase) Back(ctx context.Context, sessionID string) (*dto.WizardStateResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.draft.Step > entity.StepSelectService {
		sess.draft.Step--
	}
	return u.stateLocked(sess), nil
}

// Submit composes the booking payload and posts it. On success the session is
// discarded, the client cache invalidated and the day grid refreshed. On
// failure the session stays on the payment step with the draft intact.
func (u *bookingWizardUsecase) Submit(ctx context.Context, sessionID string) (*dto.WizardSubmitResponse, error) {
	sess, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.draft.Step != entity.StepPaymentConfirm {
		return nil, ErrInvalidStep
	}
	if sess.draft.Service == nil || sess.draft.Professional == nil || sess.draft.TimeSlot == nil {
		return nil, ErrInvalidStep
	}
	record, ok := sess.draft.ClientRecord()
	if !ok {
		return nil, ErrClientIncomplete
	}

	svc := sess.draft.Service
	slot := sess.draft.TimeSlot
	submission := &entity.BookingSubmission{
		Segments: []entity.SubmissionSegment{{
			ServiceID:   svc.ID,
			EmployeeID:  sess.draft.Professional.ID,
			DurationMin: svc.DurationMin,
			Price:       svc.Price,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
		}},
		AppointmentDate:  slot.StartTime,
		FinalAmount:      svc.Price,
		TotalDurationMin: svc.DurationMin,
		PaymentMethod:    sess.draft.PaymentMethod,
		Client:           record,
	}

	bookingID, err := u.bookingRepo.Create(ctx, submission)
	if err != nil {
		u.log.Warnf("Failed to submit booking: %+v", err)
		return nil, err
	}

	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()

	u.clientCache.Invalidate(ctx)
	if err := u.grid.RefreshBookings(ctx); err != nil {
		u.log.Warnf("Failed to refresh grid after booking: %+v", err)
	}

	return &dto.WizardSubmitResponse{
		BookingID: bookingID,
		Message:   "Booking created successfully",
	}, nil
}

// Close discards the session. Closing an already-closed session is fine.
func (u *bookingWizardUsecase) Close(ctx context.Context, sessionID string) error {
	u.mu.Lock()
	delete(u.sessions, sessionID)
	u.mu.Unlock()
	return nil
}

func (u *bookingWizardUsecase) session(sessionID string) (*wizardSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	sess, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrWizardNotFound
	}
	return sess, nil
}

// stateLocked renders the session for the client. Only the list the current
// step chooses from is included.
func (u *bookingWizardUsecase) stateLocked(sess *wizardSession) *dto.WizardStateResponse {
	response := &dto.WizardStateResponse{
		SessionID:     sess.id.String(),
		Step:          int(sess.draft.Step),
		StepName:      sess.draft.Step.String(),
		ClientMode:    string(sess.draft.ClientMode),
		ClientName:    sess.draft.ClientDisplayName(),
		PaymentMethod: string(sess.draft.PaymentMethod),
		Service:       converter.ServiceToResponse(sess.draft.Service),
		TimeSlot:      converter.SlotToResponse(sess.draft.TimeSlot),
	}
	if sess.draft.Professional != nil {
		response.Professional = converter.StaffToResponse(sess.draft.Professional, true)
	}

	switch sess.draft.Step {
	case entity.StepSelectService:
		response.Services = converter.ServicesToResponses(sess.services)
	case entity.StepSelectProfessional:
		response.Professionals = converter.StaffMembersToResponses(sess.professionals)
	case entity.StepSelectTimeSlot:
		response.TimeSlots = converter.SlotsToResponses(sess.slots)
	}
	return response
}

func findService(services []entity.Service, id string) *entity.Service {
	for i := range services {
		if services[i].ID == id {
			svc := services[i]
			return &svc
		}
	}
	return nil
}

func findProfessional(professionals []entity.StaffMember, id string) *entity.StaffMember {
	for i := range professionals {
		if professionals[i].ID == id {
			pro := professionals[i]
			return &pro
		}
	}
	return nil
}
