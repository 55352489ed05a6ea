package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
	repo "github.com/oksasatya/go-question-bank/internal/domain/repository"
	"github.com/oksasatya/go-question-bank/pkg/helpers"
)

type CatalogService struct {
	Subjects repo.SubjectRepository
	Logger   logrus.FieldLogger
}

func NewCatalogService(subjects repo.SubjectRepository, logger logrus.FieldLogger) *CatalogService {
	return &CatalogService{Subjects: subjects, Logger: logger}
}

// ListSubjects returns Active subjects. A search that is blank after
// trimming is ignored; otherwise the term is matched as given.
func (s *CatalogService) ListSubjects(ctx context.Context, search string) ([]entity.Subject, error) {
	if strings.TrimSpace(search) == "" {
		search = ""
	}
	subjects, err := s.Subjects.ListActive(ctx, search)
	if err != nil {
		helpers.LoggerFromContext(ctx, s.Logger).WithError(err).WithField("search", search).Error("list subjects failed")
		return nil, storeErr("list subjects", err)
	}
	return subjects, nil
}
