package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"salon-scheduler/config"
	"salon-scheduler/internal/domain/entity"
	"salon-scheduler/pkg/session"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *APIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewAPIClient(config.UpstreamConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, logrus.New())
}

func sessionContext(token string) context.Context {
	return session.WithSession(context.Background(), &session.Session{Token: token})
}

func TestAPIClientForwardsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))

	err := client.get(sessionContext("tok-123"), "/employees", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestAPIClientOmitsAuthWithoutSession(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))

	err := client.get(context.Background(), "/employees", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestAPIClientPreservesRejectionMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Time slot is already booked",
		})
	}))

	err := client.get(sessionContext("tok"), "/bookings/admin/all", nil, nil)
	require.Error(t, err)

	upstream, ok := err.(*UpstreamError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, upstream.StatusCode)
	assert.Equal(t, "Time slot is already booked", upstream.Message)
}

func TestEmployeeRepositoryMapsWireRecords(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employees", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"employees": []map[string]interface{}{
					{
						"_id":      "emp-1",
						"position": "Stylist",
						"isActive": true,
						"user":     map[string]interface{}{"firstName": "Ana", "lastName": "Silva"},
					},
					{"_id": "emp-2"},
				},
			},
		})
	}))

	repo := NewEmployeeRepository(client)
	members, err := repo.FindAll(sessionContext("tok"))
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, "Ana Silva", members[0].DisplayName)
	assert.Equal(t, "AS", members[0].AvatarInitials)
	assert.Equal(t, "Stylist", members[0].Position)

	// A record with no user block still maps, with a default position.
	assert.Equal(t, "emp-2", members[1].ID)
	assert.Equal(t, "Staff", members[1].Position)
	assert.Empty(t, members[1].DisplayName)
}

func TestCatalogRepositoryQueryParameters(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"employeeId": r.URL.Query().Get("employeeId"),
			"serviceId":  r.URL.Query().Get("serviceId"),
			"date":       r.URL.Query().Get("date"),
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"timeSlots": []map[string]interface{}{
					{"startTime": "2025-01-15T09:00:00Z", "endTime": "2025-01-15T09:15:00Z", "available": true},
				},
			},
		})
	}))

	repo := NewCatalogRepository(client)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	slots, err := repo.TimeSlots(sessionContext("tok"), "emp-1", "svc-1", date)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"employeeId": "emp-1",
		"serviceId":  "svc-1",
		"date":       "2025-01-15",
	}, gotQuery)
	require.Len(t, slots, 1)
	assert.True(t, slots[0].Available)
	assert.Equal(t, 36, entity.SlotIndexForTime(slots[0].StartTime))
}

func TestBookingRepositoryCreatePayload(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Booking created",
			"data":    map[string]interface{}{"booking": map[string]interface{}{"_id": "bk-1"}},
		})
	}))

	start := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	submission := &entity.BookingSubmission{
		Segments: []entity.SubmissionSegment{{
			ServiceID:   "svc-1",
			EmployeeID:  "emp-1",
			DurationMin: 30,
			Price:       40,
			StartTime:   start,
			EndTime:     start.Add(30 * time.Minute),
		}},
		AppointmentDate:  start,
		FinalAmount:      40,
		TotalDurationMin: 30,
		PaymentMethod:    entity.PaymentCard,
		Client:           entity.ClientRecord{FirstName: "Mia", LastName: "Wong", Email: "mia@example.com", Phone: "555"},
	}

	repo := NewBookingRepository(client)
	bookingID, err := repo.Create(sessionContext("tok"), submission)
	require.NoError(t, err)
	assert.Equal(t, "bk-1", bookingID)

	assert.Equal(t, "2025-01-15T09:00:00Z", gotBody["appointmentDate"])
	assert.Equal(t, "card", gotBody["paymentMethod"])
	services := gotBody["services"].([]interface{})
	require.Len(t, services, 1)
	segment := services[0].(map[string]interface{})
	assert.Equal(t, "svc-1", segment["service"])
	assert.Equal(t, "emp-1", segment["employee"])
	client0 := gotBody["client"].(map[string]interface{})
	assert.Equal(t, "Mia", client0["firstName"])
}

func TestBookingRepositoryFindAllMapsSegments(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"bookings": []map[string]interface{}{{
					"_id":             "bk-1",
					"appointmentDate": "2025-01-15T09:00:00Z",
					"status":          "Confirmed",
					"finalAmount":     40,
					"totalDuration":   30,
					"client":          map[string]interface{}{"_id": "c-1", "firstName": "Mia", "lastName": "Wong"},
					"services": []map[string]interface{}{{
						"startTime": "2025-01-15T09:00:00Z",
						"endTime":   "2025-01-15T09:30:00Z",
						"price":     40,
						"duration":  30,
						"service":   map[string]interface{}{"_id": "svc-1", "name": "Haircut"},
						"employee": map[string]interface{}{
							"_id":  "emp-1",
							"user": map[string]interface{}{"firstName": "Ana", "lastName": "Silva"},
						},
					}},
				}},
			},
		})
	}))

	repo := NewBookingRepository(client)
	bookings, err := repo.FindAll(sessionContext("tok"))
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	booking := bookings[0]
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status, "status is normalized to lower case")
	assert.Equal(t, "bk-1", booking.Ref, "missing booking number falls back to id")
	assert.Equal(t, "Mia Wong", booking.ClientName())
	require.Len(t, booking.Segments, 1)
	assert.Equal(t, "Ana Silva", booking.Segments[0].EmployeeName)
	require.NotNil(t, booking.Segments[0].ServiceID)
	assert.Equal(t, "svc-1", *booking.Segments[0].ServiceID)
}
