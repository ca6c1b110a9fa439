package converter

import (
	"time"

	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/domain/entity"
)

// ClientToResponse converts a Client entity to ClientResponse DTO
func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	return &dto.ClientResponse{
		ID:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Name:      client.FullName(),
		Email:     client.Email,
		Phone:     client.Phone,
		Initials:  client.Initials(),
	}
}

// ClientsToResponses converts a slice of Client entities to slice of ClientResponse DTOs
func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, len(clients))
	for i, client := range clients {
		response := ClientToResponse(&client)
		if response != nil {
			responses[i] = *response
		}
	}
	return responses
}

// ServiceToResponse converts a Service entity to ServiceResponse DTO
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ServiceResponse{
		ID:       service.ID,
		Name:     service.Name,
		Duration: service.DurationMin,
		Price:    service.Price,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		response := ServiceToResponse(&service)
		if response != nil {
			responses[i] = *response
		}
	}
	return responses
}

// SlotToResponse converts an AvailabilitySlot to its DTO. The label is the
// grid-aligned wall clock of the slot start.
func SlotToResponse(slot *entity.AvailabilitySlot) *dto.AvailabilitySlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.AvailabilitySlotResponse{
		StartTime: slot.StartTime.Format(time.RFC3339),
		EndTime:   slot.EndTime.Format(time.RFC3339),
		Label:     slot.StartTime.Format("15:04"),
		Available: slot.Available,
	}
}

func SlotsToResponses(slots []entity.AvailabilitySlot) []dto.AvailabilitySlotResponse {
	responses := make([]dto.AvailabilitySlotResponse, len(slots))
	for i, slot := range slots {
		response := SlotToResponse(&slot)
		if response != nil {
			responses[i] = *response
		}
	}
	return responses
}
