package controller

import (
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/modules/admin/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AdminController struct {
	controller.BaseController
	service *service.AdminService
	users   service.UserVerifier
	events  service.EventModerator
}

func NewAdminController(service *service.AdminService, users service.UserVerifier, events service.EventModerator) *AdminController {
	return &AdminController{
		BaseController: controller.NewBaseController(),
		service:        service,
		users:          users,
		events:         events,
	}
}

func (c *AdminController) Stats(ctx echo.Context) error {
	stats, err := c.service.Stats(ctx.Request().Context())
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, stats, "Statistiques récupérées")
}

func (c *AdminController) PendingEvents(ctx echo.Context) error {
	events, err := c.events.PendingEvents(ctx.Request().Context())
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, events, "Événements en attente récupérés")
}

func (c *AdminController) ApproveEvent(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant événement invalide")
	}

	event, err := c.events.ApproveEvent(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, event, "Événement approuvé")
}

func (c *AdminController) VerifyUser(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant utilisateur invalide")
	}

	user, err := c.users.VerifyUser(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, user, "Utilisateur vérifié")
}
