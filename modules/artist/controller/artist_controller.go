package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	"bebit-api/modules/artist/dto"
	"bebit-api/modules/artist/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ArtistController struct {
	controller.BaseController
	service *service.ArtistService
}

func NewArtistController(service *service.ArtistService) *ArtistController {
	return &ArtistController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *ArtistController) CreateProfile(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	var req dto.CreateArtistRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	artist, err := c.service.CreateProfile(ctx.Request().Context(), principal, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, artist, "Profil artiste créé")
}

func (c *ArtistController) GetArtist(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant artiste invalide")
	}

	artist, err := c.service.GetArtist(ctx.Request().Context(), id)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, artist, "Artiste récupéré")
}

// Trending lists artists by popularity, highest first.
func (c *ArtistController) Trending(ctx echo.Context) error {
	q := params.ParseListQuery(ctx, constants.DefaultTrendingLimit)

	artists, err := c.service.Trending(ctx.Request().Context(), q.Limit)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, artists, "Artistes tendance récupérés")
}

func (c *ArtistController) Search(ctx echo.Context) error {
	q := params.ParseListQuery(ctx, constants.DefaultTrendingLimit)
	if genre := ctx.QueryParam("genre"); genre != "" {
		q.Category = genre
	}

	artists, err := c.service.Search(ctx.Request().Context(), q)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, artists, "Artistes récupérés")
}

func (c *ArtistController) UpdateProfile(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant artiste invalide")
	}

	var req dto.UpdateArtistRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	artist, err := c.service.UpdateProfile(ctx.Request().Context(), principal, id, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, artist, "Profil artiste mis à jour")
}

func (c *ArtistController) SetUnavailableDates(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant artiste invalide")
	}

	var req dto.UnavailableDatesRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	artist, err := c.service.SetUnavailableDates(ctx.Request().Context(), principal, id, req.Dates)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, artist, "Disponibilités mises à jour")
}

// UpcomingEvents lists the session artist's approved future bookings.
func (c *ArtistController) UpcomingEvents(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	events, err := c.service.UpcomingEvents(ctx.Request().Context(), principal)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, events, "Événements à venir récupérés")
}
