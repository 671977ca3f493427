package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"bebit-api/core/constants"
	"bebit-api/core/logger"
	"bebit-api/modules/notification/dto"
	"bebit-api/modules/notification/service"

	"github.com/hibiken/asynq"
)

// Worker consumes notification delivery tasks off the queue.
type Worker struct {
	service *service.NotificationService
}

func NewWorker(service *service.NotificationService) *Worker {
	return &Worker{service: service}
}

func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(constants.TaskNotificationDeliver, w.HandleDeliver)
}

func (w *Worker) HandleDeliver(ctx context.Context, task *asynq.Task) error {
	var payload dto.DeliverPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("NotificationWorker:HandleDeliver:Unmarshal:Error:", err)
		return fmt.Errorf("invalid payload: %w", asynq.SkipRetry)
	}

	if err := w.service.Deliver(ctx, payload); err != nil {
		logger.Error("NotificationWorker:HandleDeliver:Deliver:Error:", err)
		return err
	}

	logger.Info("NotificationWorker:Delivered", "user_id", payload.UserID, "type", payload.Type)
	return nil
}
