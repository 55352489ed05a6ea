package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-question-bank/config"
	"github.com/oksasatya/go-question-bank/internal/application"
	"github.com/oksasatya/go-question-bank/internal/domain/repository"
	pginfra "github.com/oksasatya/go-question-bank/internal/infrastructure/postgres"
	"github.com/oksasatya/go-question-bank/pkg/helpers"
)

// Container carries the components built once in main and shared by the
// router modules. Redis may be nil, which turns rate limiting off.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Redis  *redis.Client

	Users     repository.UserRepository
	Subjects  repository.SubjectRepository
	Questions repository.QuestionRepository
	Hasher    application.PinHasher
}

// NewPostgres wires the Postgres-backed repositories and the bcrypt hasher.
func NewPostgres(cfg *config.Config, logger *logrus.Logger, pool *pgxpool.Pool, rdb *redis.Client) *Container {
	return &Container{
		Config:    cfg,
		Logger:    logger,
		Redis:     rdb,
		Users:     pginfra.NewUserRepository(pool),
		Subjects:  pginfra.NewSubjectRepository(pool),
		Questions: pginfra.NewQuestionRepository(pool),
		Hasher:    helpers.NewBcryptHasher(cfg.BcryptCost),
	}
}
