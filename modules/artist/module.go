package artist

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/modules/artist/controller"
	"bebit-api/modules/artist/repository"
	"bebit-api/modules/artist/router"
	"bebit-api/modules/artist/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware) *service.ArtistService {
	repo := repository.NewArtistRepository(db)
	svc := service.NewArtistService(repo)
	ctrl := controller.NewArtistController(svc)
	r := router.NewArtistRouter(ctrl)

	r.Register(g, mw)

	return svc
}
