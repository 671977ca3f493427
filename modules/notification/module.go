package notification

import (
	"bebit-api/core/database"
	"bebit-api/core/middleware"
	"bebit-api/core/queue"
	"bebit-api/modules/notification/controller"
	"bebit-api/modules/notification/repository"
	"bebit-api/modules/notification/router"
	"bebit-api/modules/notification/service"
	"bebit-api/modules/notification/worker"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, q queue.Client) (*service.NotificationService, *worker.Worker) {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo, q)
	ctrl := controller.NewNotificationController(svc)
	r := router.NewNotificationRouter(ctrl)

	r.Register(g, mw)

	return svc, worker.NewWorker(svc)
}
