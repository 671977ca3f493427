package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	"bebit-api/modules/event/dto"
	"bebit-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	service *service.EventService
}

func NewEventController(service *service.EventService) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *EventController) CreateEvent(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	event, err := c.service.CreateEvent(ctx.Request().Context(), principal, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, event, "Événement créé")
}

func (c *EventController) GetEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant événement invalide")
	}

	event, err := c.service.GetEvent(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, event, "Événement récupéré")
}

// ListEvents serves the public catalog: approved events with optional title
// search and category filter.
func (c *EventController) ListEvents(ctx echo.Context) error {
	q := params.ParseListQuery(ctx, constants.DefaultEventLimit)

	events, err := c.service.ListEvents(ctx.Request().Context(), q)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, events, "Événements récupérés")
}

func (c *EventController) UpcomingEvents(ctx echo.Context) error {
	q := params.ParseListQuery(ctx, constants.DefaultEventLimit)

	events, err := c.service.UpcomingEvents(ctx.Request().Context(), q.Limit)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, events, "Événements à venir récupérés")
}

func (c *EventController) AddArtist(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant événement invalide")
	}

	var req dto.AddEventArtistRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	link, err := c.service.AddArtist(ctx.Request().Context(), principal, eventID, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, link, "Artiste ajouté à l'événement")
}

func (c *EventController) Lineup(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant événement invalide")
	}

	lineup, err := c.service.Lineup(ctx.Request().Context(), eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, lineup, "Programmation récupérée")
}

func (c *EventController) EventQRCode(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant événement invalide")
	}

	resp, err := c.service.EventQRCode(ctx.Request().Context(), principal, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "QR code généré")
}

func (c *EventController) TicketQRCode(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant événement invalide")
	}

	resp, err := c.service.TicketQRCode(ctx.Request().Context(), principal, eventID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "QR code du billet généré")
}
