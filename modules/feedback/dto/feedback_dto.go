package dto

import "github.com/google/uuid"

type CreateFeedbackRequest struct {
	ContextType string    `json:"context_type" validate:"required,oneof=event artist club"`
	ContextID   uuid.UUID `json:"context_id" validate:"required"`
	Rating      int       `json:"rating" validate:"required,min=1,max=5"`
	Comment     string    `json:"comment" validate:"max=2000"`
}

type ReplyFeedbackRequest struct {
	Reply string `json:"reply" validate:"required,min=1,max=2000"`
}
