package converter

import (
	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/domain/entity"
)

// StaffToResponse converts a StaffMember entity to StaffResponse DTO
func StaffToResponse(member *entity.StaffMember, selected bool) *dto.StaffResponse {
	if member == nil {
		return nil
	}

	return &dto.StaffResponse{
		ID:           member.ID,
		Name:         member.DisplayName,
		Initials:     member.AvatarInitials,
		Color:        member.ColorToken,
		Position:     member.Position,
		ProfileImage: member.ProfileImage,
		Selected:     selected,
	}
}

// DirectoryToResponses converts the full staff directory, carrying each
// member's selection flag.
func DirectoryToResponses(directory *entity.StaffDirectory) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(directory.Members))
	for i, member := range directory.Members {
		response := StaffToResponse(&member, directory.IsSelected(member.ID))
		if response != nil {
			responses[i] = *response
		}
	}
	return responses
}

// StaffMembersToResponses converts a plain staff slice, marking every member
// selected. Used for wizard professional lists where there is no directory.
func StaffMembersToResponses(members []entity.StaffMember) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(members))
	for i, member := range members {
		response := StaffToResponse(&member, true)
		if response != nil {
			responses[i] = *response
		}
	}
	return responses
}
