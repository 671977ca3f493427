package user

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/user/controller"
	"bebit-api/modules/user/repository"
	"bebit-api/modules/user/router"
	"bebit-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init wires the user module and returns the service for modules that need account
// lookups (auth, admin).
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.UserService {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)
	r := router.NewUserRouter(ctrl)

	r.Register(g, mw)

	return svc
}
