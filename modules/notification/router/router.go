package router

import (
	"bebit-api/core/middleware"
	"bebit-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	controller *controller.NotificationController
}

func NewNotificationRouter(controller *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{controller: controller}
}

func (r *NotificationRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	notifications := g.Group("/notifications", mw.AuthMiddleware())

	notifications.GET("", r.controller.GetMyNotifications)
	notifications.GET("/unread-count", r.controller.CountUnread)
	notifications.PUT("/mark-read", r.controller.MarkAsRead)
	notifications.PUT("/mark-all-read", r.controller.MarkAllAsRead)
}
