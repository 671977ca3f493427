package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/modules/user/dto"
	"bebit-api/modules/user/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	service *service.UserService
}

func NewUserController(service *service.UserService) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// GetUser returns a public user record, password stripped.
func (c *UserController) GetUser(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant utilisateur invalide")
	}

	user, err := c.service.GetUser(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, user, "Utilisateur récupéré")
}

func (c *UserController) UpdateUser(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant utilisateur invalide")
	}

	var req dto.UpdateUserRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	user, err := c.service.UpdateUser(ctx.Request().Context(), principal, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, user, "Utilisateur mis à jour")
}
