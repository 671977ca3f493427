package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"bebit-api/core/authz"
	"bebit-api/core/errors"
	"bebit-api/core/logger"
	"bebit-api/core/utils"
	"bebit-api/modules/event/dto"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// QR payloads are descriptive only: no signature, no expiry. Scanners resolve the
// referenced rows server-side.
type eventQRPayload struct {
	Type     string    `json:"type"`
	EventID  uuid.UUID `json:"event_id"`
	ClubID   uuid.UUID `json:"club_id"`
	IssuedAt time.Time `json:"issued_at"`
}

type ticketQRPayload struct {
	Type     string    `json:"type"`
	EventID  uuid.UUID `json:"event_id"`
	UserID   uuid.UUID `json:"user_id"`
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}

// EventQRCode renders the door-scan code for an event. Only the owning club may
// fetch it.
func (s *EventService) EventQRCode(ctx context.Context, principal authz.Principal, eventID uuid.UUID) (*dto.QRCodeResponse, error) {
	event, err := s.ownedEvent(ctx, principal, eventID)
	if err != nil {
		return nil, err
	}

	return renderQR(eventQRPayload{
		Type:     "event",
		EventID:  event.ID,
		ClubID:   event.ClubID,
		IssuedAt: time.Now(),
	})
}

// TicketQRCode renders a per-user ticket code for an approved event.
func (s *EventService) TicketQRCode(ctx context.Context, principal authz.Principal, eventID uuid.UUID) (*dto.QRCodeResponse, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.IsApproved {
		return nil, errors.NewAppError(errors.ErrNotFound, "Événement introuvable", nil)
	}

	return renderQR(ticketQRPayload{
		Type:     "ticket",
		EventID:  event.ID,
		UserID:   principal.UserID,
		Code:     utils.GenerateTicketCode(),
		IssuedAt: time.Now(),
	})
}

func renderQR(payload any) (*dto.QRCodeResponse, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Error("EventService:RenderQR:Marshal:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}

	png, err := qrcode.Encode(string(raw), qrcode.Medium, 256)
	if err != nil {
		logger.Error("EventService:RenderQR:Encode:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}

	return &dto.QRCodeResponse{
		QRCode:  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		Payload: string(raw),
	}, nil
}
