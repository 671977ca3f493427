package repository

import (
	"context"
	"database/sql"
	"time"

	"bebit-api/core/database"
	"bebit-api/core/logger"
	"bebit-api/modules/feedback/entity"

	"github.com/google/uuid"
)

const feedbackColumns = `id, reviewer_id, reviewer_type, context_id, context_type, rating, comment, reply, created_at`

type FeedbackRepositoryInterface interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	ListByContext(ctx context.Context, contextType string, contextID uuid.UUID, limit int) ([]entity.Feedback, error)
	SetReply(ctx context.Context, id uuid.UUID, reply string) (*entity.Feedback, error)
}

type FeedbackRepository struct {
	db database.Database
}

func NewFeedbackRepository(db database.Database) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (reviewer_id, reviewer_type, context_id, context_type, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	feedback.CreatedAt = time.Now()

	row := r.db.QueryRowContext(ctx, query,
		feedback.ReviewerID,
		feedback.ReviewerType,
		feedback.ContextID,
		feedback.ContextType,
		feedback.Rating,
		feedback.Comment,
		feedback.CreatedAt,
	)
	if err := row.Scan(&feedback.ID); err != nil {
		logger.Error("FeedbackRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *FeedbackRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`
	var feedback entity.Feedback
	err := r.db.GetContext(ctx, &feedback, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("FeedbackRepository:GetByID:Error:", err)
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepository) ListByContext(ctx context.Context, contextType string, contextID uuid.UUID, limit int) ([]entity.Feedback, error) {
	query := `
		SELECT ` + feedbackColumns + `
		FROM feedback
		WHERE context_type = $1 AND context_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`
	var rows []entity.Feedback
	err := r.db.SelectContext(ctx, &rows, query, contextType, contextID, limit)
	if err != nil {
		logger.Error("FeedbackRepository:ListByContext:Error:", err)
		return nil, err
	}
	return rows, nil
}

func (r *FeedbackRepository) SetReply(ctx context.Context, id uuid.UUID, reply string) (*entity.Feedback, error) {
	query := `
		UPDATE feedback SET reply = $1
		WHERE id = $2
		RETURNING ` + feedbackColumns
	var feedback entity.Feedback
	err := r.db.GetContext(ctx, &feedback, query, reply, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("FeedbackRepository:SetReply:Error:", err)
		return nil, err
	}
	return &feedback, nil
}
