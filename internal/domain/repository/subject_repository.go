package repository

import (
	"context"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
)

// SubjectRepository reads the course catalog.
type SubjectRepository interface {
	// ListActive returns Active subjects; a non-empty search adds a
	// substring filter on the name.
	ListActive(ctx context.Context, search string) ([]entity.Subject, error)
}
