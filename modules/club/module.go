package club

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/club/controller"
	"bebit-api/modules/club/repository"
	"bebit-api/modules/club/router"
	"bebit-api/modules/club/service"

	"github.com/labstack/echo/v4"
)

// Init wires the club module and returns the service for modules that resolve
// clubs from session users (event, invitation).
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.ClubService {
	repo := repository.NewClubRepository(db)
	svc := service.NewClubService(repo)
	ctrl := controller.NewClubController(svc)
	r := router.NewClubRouter(ctrl)

	r.Register(g, mw)

	return svc
}
