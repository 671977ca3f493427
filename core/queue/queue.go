package queue

import (
	"context"

	"bebit-api/core/config"
	"bebit-api/core/logger"

	"github.com/hibiken/asynq"
)

// Client enqueues background tasks. Services depend on the interface so tests can
// swap in a fake.
type Client interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}

type client struct {
	inner *asynq.Client
}

func NewClient(cfg config.RedisConfig) Client {
	return &client{
		inner: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (c *client) Enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := c.inner.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error("Queue:Enqueue:Error", "type", task.Type(), "error", err)
		return err
	}
	logger.Info("Queue:Enqueued", "type", task.Type(), "id", info.ID, "queue", info.Queue)
	return nil
}

// NewServer builds the asynq worker that processes background tasks. Handlers are
// registered on the returned mux before Run.
func NewServer(cfg config.RedisConfig) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)
	return srv, asynq.NewServeMux()
}
