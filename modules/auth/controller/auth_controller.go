package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/modules/auth/dto"
	"bebit-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	service *service.AuthService
}

func NewAuthController(service *service.AuthService) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	resp, err := c.service.Register(ctx.Request().Context(), &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, resp, "Compte créé")
}

func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	resp, err := c.service.Login(ctx.Request().Context(), &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Connexion réussie")
}

func (c *AuthController) Logout(ctx echo.Context) error {
	token, _ := ctx.Get("token_raw").(string)
	if token == "" {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	if err := c.service.Logout(ctx.Request().Context(), token); err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, nil, "Déconnexion réussie")
}

func (c *AuthController) Refresh(ctx echo.Context) error {
	var req dto.RefreshRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	resp, err := c.service.Refresh(ctx.Request().Context(), req.RefreshToken)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, resp, "Jeton renouvelé")
}

func (c *AuthController) Me(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	user, err := c.service.Me(ctx.Request().Context(), principal.UserID)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, user, "Profil récupéré")
}
