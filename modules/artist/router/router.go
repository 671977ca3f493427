package router

import (
	"bebit-api/core/constants"
	"bebit-api/core/middleware"
	"bebit-api/modules/artist/controller"

	"github.com/labstack/echo/v4"
)

type ArtistRouter struct {
	controller *controller.ArtistController
}

func NewArtistRouter(controller *controller.ArtistController) *ArtistRouter {
	return &ArtistRouter{controller: controller}
}

func (r *ArtistRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	artists := g.Group("/artists")

	artists.GET("/trending", r.controller.Trending)
	artists.GET("/search", r.controller.Search)

	// Registered before /:id so echo does not capture "events" as an id.
	artists.GET("/events/upcoming", r.controller.UpcomingEvents, mw.AuthMiddleware())

	artists.GET("/:id", r.controller.GetArtist)
	artists.POST("", r.controller.CreateProfile, mw.AuthMiddleware(), mw.RequireRole(constants.RoleArtist))
	artists.PATCH("/:id", r.controller.UpdateProfile, mw.AuthMiddleware())
	artists.PUT("/:id/unavailable-dates", r.controller.SetUnavailableDates, mw.AuthMiddleware())
}
