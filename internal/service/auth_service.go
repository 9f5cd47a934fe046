package service

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/auth"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"

	"github.com/sirupsen/logrus"
)

// AuthService authenticates users and issues tokens
type AuthService struct {
	users  repository.UserRepository
	issuer *auth.TokenIssuer
	log    *logrus.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(users repository.UserRepository, issuer *auth.TokenIssuer, log *logrus.Logger) *AuthService {
	return &AuthService{
		users:  users,
		issuer: issuer,
		log:    log,
	}
}

// Login checks the password of the named user and returns a signed token.
// The user's active flag is not consulted.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		return "", fromStore(err)
	}

	if err := auth.ComparePassword(user.Password, password); err != nil {
		s.log.WithField("user_id", user.ID).Info("Login rejected")
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return "", err
	}

	s.log.WithField("user_id", user.ID).Debug("Token issued")
	return token, nil
}
