package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
	"github.com/oksasatya/go-question-bank/internal/domain/repository"
)

type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

// ListActive returns active subjects; search is a case-insensitive substring
// match on name. % and _ in search keep their wildcard meaning.
func (r *SubjectRepository) ListActive(ctx context.Context, search string) ([]entity.Subject, error) {
	query := `SELECT subject_id, name, status FROM subjects WHERE status = $1`
	args := []any{entity.SubjectStatusActive}
	if search != "" {
		query += ` AND name ILIKE $2`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY subject_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("SubjectRepository.ListActive: %w", err)
	}
	defer rows.Close()

	subjects := make([]entity.Subject, 0)
	for rows.Next() {
		var s entity.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Status); err != nil {
			return nil, fmt.Errorf("SubjectRepository.ListActive scan: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SubjectRepository.ListActive rows: %w", err)
	}
	return subjects, nil
}

var _ repository.SubjectRepository = (*SubjectRepository)(nil)
