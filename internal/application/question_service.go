package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
	repo "github.com/oksasatya/go-question-bank/internal/domain/repository"
	"github.com/oksasatya/go-question-bank/pkg/helpers"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type QuestionService struct {
	Questions repo.QuestionRepository
	Logger    logrus.FieldLogger
}

func NewQuestionService(questions repo.QuestionRepository, logger logrus.FieldLogger) *QuestionService {
	return &QuestionService{Questions: questions, Logger: logger}
}

// ListQuestionsInput selects a page. Zero values take the defaults; a zero
// SubjectID means every subject. Limit has no upper bound.
type ListQuestionsInput struct {
	SubjectID int64
	Page      int
	Limit     int
}

// QuestionInput carries the six writable question fields.
type QuestionInput struct {
	Title      string
	Content    string
	SubjectID  int64
	Difficulty *string
	Answer     *string
	Code       *string
}

func (s *QuestionService) log(ctx context.Context) *logrus.Entry {
	return helpers.LoggerFromContext(ctx, s.Logger)
}

func (s *QuestionService) List(ctx context.Context, in ListQuestionsInput) ([]entity.QuestionListItem, error) {
	page, limit := in.Page, in.Limit
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	f := repo.QuestionFilter{SubjectID: in.SubjectID, Limit: limit, Offset: (page - 1) * limit}

	s.log(ctx).WithFields(logrus.Fields{"subject_id": in.SubjectID, "page": page, "limit": limit}).Debug("fetching questions")

	items, err := s.Questions.List(ctx, f)
	if err != nil {
		s.log(ctx).WithError(err).Error("list questions failed")
		return nil, storeErr("list questions", err)
	}
	return items, nil
}

func (s *QuestionService) Get(ctx context.Context, id int64) (*entity.QuestionDetail, error) {
	q, err := s.Questions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		s.log(ctx).WithError(err).WithField("question_id", id).Error("get question failed")
		return nil, storeErr("get question", err)
	}
	return q, nil
}

// Create bulk-inserts the questions in one statement. Empty optional
// fields are stored as NULL.
func (s *QuestionService) Create(ctx context.Context, in []QuestionInput) ([]int64, error) {
	if len(in) == 0 {
		return nil, ErrValidation
	}
	qs := make([]entity.Question, len(in))
	for i, q := range in {
		qs[i] = entity.Question{
			Title:      q.Title,
			Content:    q.Content,
			SubjectID:  q.SubjectID,
			Difficulty: nullIfEmpty(q.Difficulty),
			Answer:     nullIfEmpty(q.Answer),
			Code:       nullIfEmpty(q.Code),
		}
	}
	ids, err := s.Questions.CreateBatch(ctx, qs)
	if err != nil {
		s.log(ctx).WithError(err).WithField("count", len(qs)).Error("create questions failed")
		return nil, storeErr("create questions", err)
	}
	questionsCreatedTotal.Add(int64(len(ids)))
	return ids, nil
}

// Update replaces all six fields exactly as supplied.
func (s *QuestionService) Update(ctx context.Context, id int64, in QuestionInput) error {
	q := &entity.Question{
		ID:         id,
		Title:      in.Title,
		Content:    in.Content,
		SubjectID:  in.SubjectID,
		Difficulty: in.Difficulty,
		Answer:     in.Answer,
		Code:       in.Code,
	}
	if err := s.Questions.Update(ctx, q); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrQuestionNotFound
		}
		s.log(ctx).WithError(err).WithField("question_id", id).Error("update question failed")
		return storeErr("update question", err)
	}
	return nil
}

func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	if err := s.Questions.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrQuestionNotFound
		}
		s.log(ctx).WithError(err).WithField("question_id", id).Error("delete question failed")
		return storeErr("delete question", err)
	}
	return nil
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
