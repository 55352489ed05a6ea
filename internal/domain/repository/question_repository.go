package repository

import (
	"context"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
)

// QuestionFilter selects a page of questions. SubjectID zero means all subjects.
type QuestionFilter struct {
	SubjectID int64
	Limit     int
	Offset    int
}

type QuestionRepository interface {
	List(ctx context.Context, f QuestionFilter) ([]entity.QuestionListItem, error)
	GetByID(ctx context.Context, id int64) (*entity.QuestionDetail, error)
	// CreateBatch inserts all questions or none and returns their ids in input order.
	CreateBatch(ctx context.Context, qs []entity.Question) ([]int64, error)
	// Update and Delete return ErrNotFound when no row was affected.
	Update(ctx context.Context, q *entity.Question) error
	Delete(ctx context.Context, id int64) error
}
