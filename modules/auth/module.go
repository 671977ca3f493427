package auth

import (
	"bebit-api/core/cache"
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/auth/controller"
	"bebit-api/modules/auth/router"
	"bebit-api/modules/auth/service"
	userRepo "bebit-api/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, cache *cache.Cache) *service.AuthService {
	users := userRepo.NewUserRepository(db)
	svc := service.NewAuthService(users, cache)
	ctrl := controller.NewAuthController(svc)
	r := router.NewAuthRouter(ctrl)

	r.Register(g, mw)

	return svc
}
