package router

import (
	"bebit-api/core/middleware"
	"bebit-api/modules/wallet/controller"

	"github.com/labstack/echo/v4"
)

type WalletRouter struct {
	controller *controller.WalletController
}

func NewWalletRouter(controller *controller.WalletController) *WalletRouter {
	return &WalletRouter{controller: controller}
}

func (r *WalletRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	wallet := g.Group("/wallet", mw.AuthMiddleware())

	wallet.GET("/balance", r.controller.Balance)
	wallet.GET("/transactions", r.controller.ListTransactions)
	wallet.POST("/transactions", r.controller.CreateTransaction)
}
