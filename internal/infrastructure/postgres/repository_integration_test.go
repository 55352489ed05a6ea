package postgres

import (
	"context"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
	"github.com/oksasatya/go-question-bank/internal/domain/repository"
)

// setupTestPool connects to TEST_DATABASE_URL, rebuilds the schema and seeds
// two subjects and three tags. Tests are skipped when the variable is unset.
func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres integration tests")
	}
	ctx := context.Background()

	pool, err := NewPool(ctx, dsn, PoolOptions{MaxConns: 4})
	if err != nil {
		t.Fatalf("Failed to connect: %v", err)
	}
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `
		DROP TABLE IF EXISTS question_tags, tags, questions, subjects, users, schema_migrations CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	if err := RunMigrations(dsn, "../../../db/migrations", logger); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO subjects (subject_id, name, status) VALUES
			(1, 'Algorithms', 'Active'),
			(2, 'Databases', 'Active'),
			(3, 'Legacy Algol', 'Inactive');
		INSERT INTO tags (tag_id, name) VALUES (1, 'sorting'), (2, 'graphs'), (3, 'sql');
	`)
	if err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	return pool
}

func strPtr(s string) *string { return &s }

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	if _, err := repo.GetByEmail(ctx, "a@b.test"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.Create(ctx, &entity.User{Email: "a@b.test", PinHash: "h"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, &entity.User{Email: "a@b.test", PinHash: "h2"}); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	u, err := repo.GetByEmail(ctx, "a@b.test")
	if err != nil || u.PinHash != "h" {
		t.Fatalf("unexpected user %+v, err %v", u, err)
	}
}

func TestSubjectRepositoryListActive(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewSubjectRepository(pool)
	ctx := context.Background()

	all, err := repo.ListActive(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 active subjects, got %d", len(all))
	}

	found, err := repo.ListActive(ctx, "algo")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Algorithms" {
		t.Fatalf("unexpected search result %+v", found)
	}
}

func TestQuestionRepositoryLifecycle(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewQuestionRepository(pool)
	ctx := context.Background()

	ids, err := repo.CreateBatch(ctx, []entity.Question{
		{Title: "Q1", Content: "C1", SubjectID: 1, Difficulty: strPtr("Easy")},
		{Title: "Q2", Content: "C2", SubjectID: 1},
		{Title: "Q3", Content: "C3", SubjectID: 2, Code: strPtr("SELECT 1")},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %v", ids)
	}

	_, err = pool.Exec(ctx, `INSERT INTO question_tags (question_id, tag_id) VALUES ($1, 1), ($1, 2)`, ids[0])
	if err != nil {
		t.Fatalf("tag: %v", err)
	}

	items, err := repo.List(ctx, repository.QuestionFilter{SubjectID: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 questions for subject 1, got %d", len(items))
	}
	if items[0].Tags == nil {
		t.Fatal("expected tags on first question")
	}
	tags := strings.Split(*items[0].Tags, ",")
	sort.Strings(tags)
	if strings.Join(tags, ",") != "graphs,sorting" {
		t.Errorf("unexpected tags %v", tags)
	}
	if items[1].Tags != nil {
		t.Errorf("expected nil tags, got %q", *items[1].Tags)
	}

	page2, err := repo.List(ctx, repository.QuestionFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page2) != 1 || page2[0].ID != ids[2] {
		t.Fatalf("unexpected page 2 %+v", page2)
	}

	d, err := repo.GetByID(ctx, ids[2])
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.Subject != "Databases" || d.Code == nil || *d.Code != "SELECT 1" || d.Answer != nil {
		t.Errorf("unexpected detail %+v", d)
	}

	err = repo.Update(ctx, &entity.Question{ID: ids[1], Title: "Q2b", Content: "C2b", SubjectID: 2, Answer: strPtr("42")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := repo.Update(ctx, &entity.Question{ID: 999999, Title: "x", Content: "y", SubjectID: 1}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}

	if err := repo.Delete(ctx, ids[0]); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, ids[0]); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	var n int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM question_tags WHERE question_id = $1`, ids[0]).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected question tags to cascade, %d left", n)
	}
	if err := repo.Delete(ctx, ids[0]); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
