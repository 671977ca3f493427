package dto

import "github.com/google/uuid"

type CreateEventRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=256"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Category string `json:"category" validate:"required,min=1,max=64"`
}

type AddEventArtistRequest struct {
	ArtistID uuid.UUID `json:"artist_id" validate:"required"`
	Fee      float64   `json:"fee" validate:"gte=0"`
}

// QRCodeResponse carries the rendered PNG as a data URL next to the payload it
// encodes.
type QRCodeResponse struct {
	QRCode  string `json:"qrcode"`
	Payload string `json:"payload"`
}
