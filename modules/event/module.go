package event

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/event/controller"
	"bebit-api/modules/event/repository"
	"bebit-api/modules/event/router"
	"bebit-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module. Club and artist services come from their modules;
// the notifier delivers approval notices.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, clubs service.ClubResolver, artists service.ArtistResolver, notifier service.Notifier) *service.EventService {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, clubs, artists, notifier)
	ctrl := controller.NewEventController(svc)
	r := router.NewEventRouter(ctrl)

	r.Register(g, mw)

	return svc
}
