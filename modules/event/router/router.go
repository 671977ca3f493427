package router

import (
	"bebit-api/core/constants"
	"bebit-api/core/middleware"
	"bebit-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	events := g.Group("/events")

	events.GET("", r.controller.ListEvents)
	events.GET("/upcoming", r.controller.UpcomingEvents)
	events.GET("/:id", r.controller.GetEvent)
	events.GET("/:id/artists", r.controller.Lineup)
	events.POST("", r.controller.CreateEvent, mw.AuthMiddleware(), mw.RequireRole(constants.RoleClub))
	events.POST("/:id/artists", r.controller.AddArtist, mw.AuthMiddleware(), mw.RequireRole(constants.RoleClub))
	events.GET("/:id/qrcode", r.controller.EventQRCode, mw.AuthMiddleware())

	tickets := g.Group("/tickets")
	tickets.GET("/:eventId/qrcode", r.controller.TicketQRCode, mw.AuthMiddleware())
}
