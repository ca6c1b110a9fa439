package converter

import (
	"sort"
	"time"

	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/domain/entity"
)

// TimeGridToResponses converts the fixed day grid to TimeSlotResponse DTOs
func TimeGridToResponses() []dto.TimeSlotResponse {
	grid := entity.TimeGrid()
	responses := make([]dto.TimeSlotResponse, len(grid))
	for i, slot := range grid {
		responses[i] = dto.TimeSlotResponse{
			Index:       slot.Index,
			Label:       slot.Label,
			IsHourStart: slot.IsHourStart,
		}
	}
	return responses
}

// PlacementToCells flattens a placement index into cell DTOs with a stable
// order so repeated renders of the same day are byte-identical.
func PlacementToCells(index entity.PlacementIndex) []dto.GridCellResponse {
	cells := make([]dto.GridCellResponse, 0, len(index))
	for _, entry := range index {
		cells = append(cells, dto.GridCellResponse{
			StaffID:     entry.StaffID,
			SlotIndex:   entry.SlotIndex,
			BookingID:   entry.BookingID,
			ServiceID:   entry.ServiceID,
			ClientName:  entry.ClientName,
			ServiceName: entry.ServiceName,
			StartTime:   entry.StartTime.Format(time.RFC3339),
			EndTime:     entry.EndTime.Format(time.RFC3339),
			Price:       entry.Price,
			Duration:    entry.DurationMin,
		})
	}

	sort.Slice(cells, func(i, j int) bool {
		if cells[i].StaffID != cells[j].StaffID {
			return cells[i].StaffID < cells[j].StaffID
		}
		return cells[i].SlotIndex < cells[j].SlotIndex
	})
	return cells
}
