package invitation

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/invitation/controller"
	"bebit-api/modules/invitation/repository"
	"bebit-api/modules/invitation/router"
	"bebit-api/modules/invitation/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, artists service.ArtistResolver, clubs service.ClubResolver, notifier service.Notifier) *service.InvitationService {
	repo := repository.NewInvitationRepository(db)
	svc := service.NewInvitationService(repo, artists, clubs, notifier)
	ctrl := controller.NewInvitationController(svc)
	r := router.NewInvitationRouter(ctrl)

	r.Register(g, mw)

	return svc
}
