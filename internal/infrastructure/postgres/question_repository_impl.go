package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
	"github.com/oksasatya/go-question-bank/internal/domain/repository"
)

type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) List(ctx context.Context, f repository.QuestionFilter) ([]entity.QuestionListItem, error) {
	var q strings.Builder
	q.WriteString(`
		SELECT q.question_id, q.title, q.content, q.difficulty, q.answer, q.code,
		       s.name AS subject, STRING_AGG(t.name, ',') AS tags
		FROM questions q
		JOIN subjects s ON q.subject_id = s.subject_id
		LEFT JOIN question_tags qt ON qt.question_id = q.question_id
		LEFT JOIN tags t ON qt.tag_id = t.tag_id`)

	args := make([]any, 0, 3)
	if f.SubjectID > 0 {
		args = append(args, f.SubjectID)
		fmt.Fprintf(&q, ` WHERE q.subject_id = $%d`, len(args))
	}
	q.WriteString(` GROUP BY q.question_id, s.name ORDER BY q.question_id`)
	args = append(args, f.Limit, f.Offset)
	fmt.Fprintf(&q, ` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("QuestionRepository.List: %w", err)
	}
	defer rows.Close()

	items := make([]entity.QuestionListItem, 0)
	for rows.Next() {
		var it entity.QuestionListItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Content, &it.Difficulty, &it.Answer, &it.Code,
			&it.Subject, &it.Tags); err != nil {
			return nil, fmt.Errorf("QuestionRepository.List scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("QuestionRepository.List rows: %w", err)
	}
	return items, nil
}

func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*entity.QuestionDetail, error) {
	d := &entity.QuestionDetail{}
	err := r.pool.QueryRow(ctx, `
		SELECT q.question_id, q.title, q.content, q.difficulty, q.answer, q.code, s.name AS subject
		FROM questions q
		JOIN subjects s ON q.subject_id = s.subject_id
		WHERE q.question_id = $1
	`, id).Scan(&d.ID, &d.Title, &d.Content, &d.Difficulty, &d.Answer, &d.Code, &d.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("QuestionRepository.GetByID: %w", err)
	}
	return d, nil
}

// CreateBatch issues a single multi-row INSERT so the batch is atomic.
func (r *QuestionRepository) CreateBatch(ctx context.Context, qs []entity.Question) ([]int64, error) {
	if len(qs) == 0 {
		return []int64{}, nil
	}

	const cols = 6
	var q strings.Builder
	q.WriteString(`INSERT INTO questions (title, content, subject_id, difficulty, answer, code) VALUES `)
	args := make([]any, 0, len(qs)*cols)
	for i, it := range qs {
		if i > 0 {
			q.WriteString(", ")
		}
		base := i * cols
		fmt.Fprintf(&q, "($%d, $%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5, base+6)
		args = append(args, it.Title, it.Content, it.SubjectID, it.Difficulty, it.Answer, it.Code)
	}
	q.WriteString(` RETURNING question_id`)

	rows, err := r.pool.Query(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("QuestionRepository.CreateBatch: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("QuestionRepository.CreateBatch: %w", err)
	}
	return ids, nil
}

func (r *QuestionRepository) Update(ctx context.Context, q *entity.Question) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE questions
		SET title = $1, content = $2, subject_id = $3, difficulty = $4, answer = $5, code = $6
		WHERE question_id = $7
	`, q.Title, q.Content, q.SubjectID, q.Difficulty, q.Answer, q.Code, q.ID)
	if err != nil {
		return fmt.Errorf("QuestionRepository.Update: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE question_id = $1`, id)
	if err != nil {
		return fmt.Errorf("QuestionRepository.Delete: %w", err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.QuestionRepository = (*QuestionRepository)(nil)
