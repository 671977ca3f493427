package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	"bebit-api/modules/notification/dto"
	"bebit-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	service *service.NotificationService
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	queryParams := params.ParseQueryParams(ctx)
	result, err := c.service.GetMyNotifications(ctx.Request().Context(), principal.UserID, queryParams)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, result, "Notifications récupérées")
}

func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	var req dto.MarkAsReadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	if err := c.service.MarkAsRead(ctx.Request().Context(), principal.UserID, req.IDs); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Notifications marquées comme lues")
}

func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	if err := c.service.MarkAllAsRead(ctx.Request().Context(), principal.UserID); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Toutes les notifications marquées comme lues")
}

func (c *NotificationController) CountUnread(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	count, err := c.service.CountUnread(ctx.Request().Context(), principal.UserID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, map[string]int{"count": count}, "Nombre de notifications non lues")
}
