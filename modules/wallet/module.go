package wallet

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/wallet/controller"
	"bebit-api/modules/wallet/repository"
	"bebit-api/modules/wallet/router"
	"bebit-api/modules/wallet/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.WalletService {
	repo := repository.NewTransactionRepository(db)
	svc := service.NewWalletService(repo)
	ctrl := controller.NewWalletController(svc)
	r := router.NewWalletRouter(ctrl)

	r.Register(g, mw)

	return svc
}
