package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	"bebit-api/modules/feedback/dto"
	"bebit-api/modules/feedback/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type FeedbackController struct {
	controller.BaseController
	service *service.FeedbackService
}

func NewFeedbackController(service *service.FeedbackService) *FeedbackController {
	return &FeedbackController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *FeedbackController) CreateFeedback(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	var req dto.CreateFeedbackRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	feedback, err := c.service.CreateFeedback(ctx.Request().Context(), principal, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, feedback, "Avis publié")
}

func (c *FeedbackController) ListFeedback(ctx echo.Context) error {
	contextType := ctx.QueryParam("context_type")
	contextID, err := uuid.Parse(ctx.QueryParam("context_id"))
	if err != nil || contextType == "" {
		return c.BadRequest(errors.ErrInvalidRequestData, "Contexte invalide")
	}

	q := params.ParseListQuery(ctx, constants.DefaultFeedbackLimit)

	rows, err := c.service.ListByContext(ctx.Request().Context(), contextType, contextID, q.Limit)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, rows, "Avis récupérés")
}

func (c *FeedbackController) Reply(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Identifiant avis invalide")
	}

	var req dto.ReplyFeedbackRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	feedback, err := c.service.Reply(ctx.Request().Context(), principal, id, req.Reply)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, feedback, "Réponse publiée")
}
