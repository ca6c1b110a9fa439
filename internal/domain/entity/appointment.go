package entity

import "time"

// PlacementKey addresses one cell of the time×staff grid.
type PlacementKey struct {
	StaffID   string
	SlotIndex int
}

// AppointmentSlotEntry is the derived summary rendered in a grid cell.
// It is rebuilt from fetched bookings on every date change, never stored.
type AppointmentSlotEntry struct {
	StaffID     string    `json:"staff_id"`
	SlotIndex   int       `json:"slot_index"`
	BookingID   string    `json:"booking_id"`
	ServiceID   string    `json:"service_id"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Price       float64   `json:"price"`
	DurationMin int       `json:"duration"`
}

// MergeStrategy resolves two segments mapping to the same grid cell. The
// backend is trusted never to double-book a (staff, time) pair; when it does
// anyway, the strategy decides which entry survives.
type MergeStrategy func(existing, incoming AppointmentSlotEntry) AppointmentSlotEntry

// LastWriteWins keeps the later-processed segment. Default policy.
func LastWriteWins(_, incoming AppointmentSlotEntry) AppointmentSlotEntry {
	return incoming
}

// FirstWriteWins keeps the earlier-processed segment.
func FirstWriteWins(existing, _ AppointmentSlotEntry) AppointmentSlotEntry {
	return existing
}

// PlacementIndex maps grid cells to at most one appointment entry each.
type PlacementIndex map[PlacementKey]AppointmentSlotEntry

// BuildPlacementIndex projects fetched bookings onto the day grid. Segments
// whose staff id is missing from the visible selection, or whose start falls
// outside the selected day, are silently dropped: that is a deliberate
// tolerance for partially populated backend records, not an error.
func BuildPlacementIndex(bookings []Booking, directory *StaffDirectory, day time.Time, merge MergeStrategy) PlacementIndex {
	if merge == nil {
		merge = LastWriteWins
	}
	index := make(PlacementIndex)
	for _, booking := range bookings {
		if !SameCalendarDay(booking.AppointmentDate, day) {
			continue
		}
		for _, seg := range booking.Segments {
			if seg.EmployeeID == nil || !directory.IsSelected(*seg.EmployeeID) {
				continue
			}
			if !SameCalendarDay(seg.StartTime, day) {
				continue
			}
			entry := AppointmentSlotEntry{
				StaffID:     *seg.EmployeeID,
				SlotIndex:   SlotIndexForTime(seg.StartTime),
				BookingID:   booking.ID,
				ClientName:  booking.ClientName(),
				ServiceName: seg.ServiceName,
				StartTime:   seg.StartTime,
				EndTime:     seg.EndTime,
				Price:       seg.Price,
				DurationMin: seg.DurationMin,
			}
			if seg.ServiceID != nil {
				entry.ServiceID = *seg.ServiceID
			}
			if entry.ServiceName == "" {
				entry.ServiceName = "Service"
			}
			key := PlacementKey{StaffID: entry.StaffID, SlotIndex: entry.SlotIndex}
			if existing, ok := index[key]; ok {
				index[key] = merge(existing, entry)
			} else {
				index[key] = entry
			}
		}
	}
	return index
}
