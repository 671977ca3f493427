package dto

import "github.com/google/uuid"

type CreateInvitationRequest struct {
	ArtistID uuid.UUID `json:"artist_id" validate:"required"`
}

type UpdateInvitationRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed declined cancelled"`
}
