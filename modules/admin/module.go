package admin

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/admin/controller"
	"bebit-api/modules/admin/repository"
	"bebit-api/modules/admin/router"
	"bebit-api/modules/admin/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, users service.UserVerifier, events service.EventModerator) *service.AdminService {
	repo := repository.NewStatsRepository(db)
	svc := service.NewAdminService(repo)
	ctrl := controller.NewAdminController(svc, users, events)
	r := router.NewAdminRouter(ctrl)

	r.Register(g, mw)

	return svc
}
