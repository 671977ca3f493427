package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	"bebit-api/modules/club/dto"
	"bebit-api/modules/club/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ClubController struct {
	controller.BaseController
	service *service.ClubService
}

func NewClubController(service *service.ClubService) *ClubController {
	return &ClubController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *ClubController) CreateProfile(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	var req dto.CreateClubRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	club, err := c.service.CreateProfile(ctx.Request().Context(), principal, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, club, "Profil club créé")
}

func (c *ClubController) GetClub(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant club invalide")
	}

	club, err := c.service.GetClub(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, club, "Club récupéré")
}

// Popular lists clubs by rating, highest first.
func (c *ClubController) Popular(ctx echo.Context) error {
	q := params.ParseListQuery(ctx, constants.DefaultPopularLimit)

	clubs, err := c.service.Popular(ctx.Request().Context(), q.Limit)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, clubs, "Clubs populaires récupérés")
}

func (c *ClubController) UpdateProfile(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant club invalide")
	}

	var req dto.UpdateClubRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	club, err := c.service.UpdateProfile(ctx.Request().Context(), principal, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, club, "Profil club mis à jour")
}

func (c *ClubController) ApprovedEvents(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant club invalide")
	}

	events, err := c.service.ApprovedEvents(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, events, "Événements du club récupérés")
}
