package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/modules/invitation/dto"
	"bebit-api/modules/invitation/entity"
	"bebit-api/modules/invitation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type InvitationController struct {
	controller.BaseController
	service *service.InvitationService
}

func NewInvitationController(service *service.InvitationService) *InvitationController {
	return &InvitationController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *InvitationController) CreateInvitation(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	var req dto.CreateInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	invitation, err := c.service.CreateInvitation(ctx.Request().Context(), principal, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, invitation, "Invitation envoyée")
}

func (c *InvitationController) ListInvitations(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	invitations, err := c.service.ListInvitations(ctx.Request().Context(), principal)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, invitations, "Invitations récupérées")
}

func (c *InvitationController) UpdateStatus(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant invitation invalide")
	}

	var req dto.UpdateInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	invitation, err := c.service.UpdateStatus(ctx.Request().Context(), principal, id, entity.InvitationStatus(req.Status))
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, invitation, "Invitation mise à jour")
}
