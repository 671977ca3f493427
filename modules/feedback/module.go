package feedback

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/feedback/controller"
	"bebit-api/modules/feedback/repository"
	"bebit-api/modules/feedback/router"
	"bebit-api/modules/feedback/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, events service.EventResolver, clubs service.ClubResolver, artists service.ArtistResolver) *service.FeedbackService {
	repo := repository.NewFeedbackRepository(db)
	svc := service.NewFeedbackService(repo, events, clubs, artists)
	ctrl := controller.NewFeedbackController(svc)
	r := router.NewFeedbackRouter(ctrl)

	r.Register(g, mw)

	return svc
}
