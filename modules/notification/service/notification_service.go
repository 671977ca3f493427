package service

import (
	"context"
	"encoding/json"
	"time"

	"bebit-api/core/constants"
	"bebit-api/core/errors"
	"bebit-api/core/params"
	"bebit-api/core/queue"
	"bebit-api/modules/notification/dto"
	"bebit-api/modules/notification/entity"
	"bebit-api/modules/notification/repository"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type NotificationService struct {
	repo  repository.NotificationRepositoryInterface
	queue queue.Client
}

func NewNotificationService(repo repository.NotificationRepositoryInterface, queue queue.Client) *NotificationService {
	return &NotificationService{repo: repo, queue: queue}
}

// Notify enqueues a delivery task; the worker persists the notification. Other
// modules call this through their local Notifier interfaces.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, title, message, notifType string, data map[string]any) error {
	payload, err := json.Marshal(dto.DeliverPayload{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    notifType,
		Data:    data,
	})
	if err != nil {
		return err
	}
	return s.queue.Enqueue(ctx, asynq.NewTask(constants.TaskNotificationDeliver, payload))
}

// Deliver persists a notification immediately. The worker uses it once a task is
// dequeued.
func (s *NotificationService) Deliver(ctx context.Context, payload dto.DeliverPayload) error {
	notification := &entity.Notification{
		UserID:    payload.UserID,
		Title:     payload.Title,
		Message:   payload.Message,
		Type:      payload.Type,
		Data:      entity.JSONB(payload.Data),
		IsRead:    false,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	return s.repo.Create(ctx, notification)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotifications, error) {
	result, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return result, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []string) error {
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrInternalServer, "Erreur interne du serveur", err)
	}
	return count, nil
}
