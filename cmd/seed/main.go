package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-question-bank/config"
	pginfra "github.com/oksasatya/go-question-bank/internal/infrastructure/postgres"
	"github.com/oksasatya/go-question-bank/pkg/helpers"
)

type seedQuestion struct {
	title, content, subject, difficulty, answer string
	tags                                        []string
}

var (
	seedSubjects = []struct{ name, status string }{
		{"Algorithms", "Active"},
		{"Databases", "Active"},
		{"Operating Systems", "Active"},
		{"Legacy Mainframes", "Inactive"},
	}
	seedTags = []string{"arrays", "hashing", "sql", "joins", "concurrency"}

	seedQuestions = []seedQuestion{
		{"Two sum", "Given an array and a target, return indices of two numbers adding up to the target.", "Algorithms", "Easy", "Use a hash map of seen values.", []string{"arrays", "hashing"}},
		{"Inner vs outer join", "Explain the difference between INNER JOIN and LEFT JOIN.", "Databases", "Medium", "Inner keeps matches only; left keeps every row of the left table.", []string{"sql", "joins"}},
		{"Deadlock conditions", "List the four Coffman conditions.", "Operating Systems", "Hard", "Mutual exclusion, hold and wait, no preemption, circular wait.", []string{"concurrency"}},
	}
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2})
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, helpers.NewLogger(cfg.AppName, cfg.Env)); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	email := "demo@questionbank.dev"
	pin := "1234"
	hash, err := helpers.NewBcryptHasher(cfg.BcryptCost).Hash(pin)
	if err != nil {
		log.Fatalf("failed to hash pin: %v", err)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO users (email, pin_hash) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET pin_hash = EXCLUDED.pin_hash
	`, email, hash); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: email=%s pin=%s\n", email, pin)

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		subjectIDs := map[string]int64{}
		for _, s := range seedSubjects {
			var id int64
			err := tx.QueryRow(ctx, `SELECT subject_id FROM subjects WHERE name = $1`, s.name).Scan(&id)
			if errors.Is(err, pgx.ErrNoRows) {
				err = tx.QueryRow(ctx, `INSERT INTO subjects (name, status) VALUES ($1, $2) RETURNING subject_id`, s.name, s.status).Scan(&id)
			}
			if err != nil {
				return fmt.Errorf("subject %q: %w", s.name, err)
			}
			subjectIDs[s.name] = id
		}

		tagIDs := map[string]int64{}
		for _, name := range seedTags {
			var id int64
			if err := tx.QueryRow(ctx, `
				INSERT INTO tags (name) VALUES ($1)
				ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
				RETURNING tag_id
			`, name).Scan(&id); err != nil {
				return fmt.Errorf("tag %q: %w", name, err)
			}
			tagIDs[name] = id
		}

		for _, q := range seedQuestions {
			var id int64
			err := tx.QueryRow(ctx, `SELECT question_id FROM questions WHERE title = $1`, q.title).Scan(&id)
			if errors.Is(err, pgx.ErrNoRows) {
				err = tx.QueryRow(ctx, `
					INSERT INTO questions (title, content, subject_id, difficulty, answer)
					VALUES ($1, $2, $3, $4, $5) RETURNING question_id
				`, q.title, q.content, subjectIDs[q.subject], q.difficulty, q.answer).Scan(&id)
			}
			if err != nil {
				return fmt.Errorf("question %q: %w", q.title, err)
			}
			for _, tag := range q.tags {
				if _, err := tx.Exec(ctx, `
					INSERT INTO question_tags (question_id, tag_id) VALUES ($1, $2)
					ON CONFLICT DO NOTHING
				`, id, tagIDs[tag]); err != nil {
					return fmt.Errorf("tag question %q: %w", q.title, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	fmt.Printf("seeded %d subjects, %d tags, %d questions\n", len(seedSubjects), len(seedTags), len(seedQuestions))
}
