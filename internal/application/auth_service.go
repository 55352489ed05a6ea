package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-question-bank/internal/domain/entity"
	repo "github.com/oksasatya/go-question-bank/internal/domain/repository"
	"github.com/oksasatya/go-question-bank/pkg/helpers"
)

// PinHasher is the one-way credential hasher used for PINs.
type PinHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

type AuthService struct {
	Users  repo.UserRepository
	Hasher PinHasher
	Logger logrus.FieldLogger
}

func NewAuthService(users repo.UserRepository, hasher PinHasher, logger logrus.FieldLogger) *AuthService {
	return &AuthService{Users: users, Hasher: hasher, Logger: logger}
}

// Register creates a user with a hashed PIN. The existence check and the
// insert are separate statements; the unique key on users.email settles races.
func (s *AuthService) Register(ctx context.Context, email, pin string) error {
	log := helpers.LoggerFromContext(ctx, s.Logger).WithField("email", email)
	log.Info("register request received")

	if email == "" || pin == "" {
		return ErrValidation
	}

	_, err := s.Users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrDuplicateEmail
	case !errors.Is(err, repo.ErrNotFound):
		log.WithError(err).Error("check email failed")
		return storeErr("check email", err)
	}

	hash, err := s.Hasher.Hash(pin)
	if err != nil {
		log.WithError(err).Error("hash pin failed")
		return fmt.Errorf("hash pin: %w", err)
	}

	if err := s.Users.Create(ctx, &entity.User{Email: email, PinHash: hash}); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return ErrDuplicateEmail
		}
		log.WithError(err).Error("insert user failed")
		return storeErr("insert user", err)
	}

	registrationsTotal.Add(1)
	return nil
}

// Login is a stateless yes/no check. Unknown email and wrong PIN both
// return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, pin string) error {
	log := helpers.LoggerFromContext(ctx, s.Logger).WithField("email", email)

	if email == "" || pin == "" {
		loginFailuresTotal.Add(1)
		return ErrInvalidCredentials
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			loginFailuresTotal.Add(1)
			return ErrInvalidCredentials
		}
		log.WithError(err).Error("fetch user failed")
		return storeErr("fetch user", err)
	}

	if !s.Hasher.Verify(u.PinHash, pin) {
		loginFailuresTotal.Add(1)
		return ErrInvalidCredentials
	}

	loginsTotal.Add(1)
	log.Debug("login successful")
	return nil
}
