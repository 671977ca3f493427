package controller

import (
	"bebit-api/core/authz"
	"bebit-api/core/constants"
	"bebit-api/core/controller"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	"bebit-api/modules/wallet/dto"
	"bebit-api/modules/wallet/service"

	"github.com/labstack/echo/v4"
)

type WalletController struct {
	controller.BaseController
	service *service.WalletService
}

func NewWalletController(service *service.WalletService) *WalletController {
	return &WalletController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

func (c *WalletController) CreateTransaction(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	var req dto.CreateTransactionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Corps de requête invalide")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Données invalides", err.Error())
	}

	transaction, err := c.service.CreateTransaction(ctx.Request().Context(), principal, &req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.CreatedResponse(ctx, transaction, "Transaction enregistrée")
}

func (c *WalletController) ListTransactions(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	q := params.ParseListQuery(ctx, constants.DefaultEventLimit)

	transactions, err := c.service.ListTransactions(ctx.Request().Context(), principal, q.Limit)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, transactions, "Transactions récupérées")
}

func (c *WalletController) Balance(ctx echo.Context) error {
	principal, err := authz.FromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Authentification requise")
	}

	balance, err := c.service.Balance(ctx.Request().Context(), principal)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}
	return c.SuccessResponse(ctx, balance, "Solde récupéré")
}
