package service

import (
	"context"
	"fmt"

	"github.com/Estefano-cmd/impulsoApi/internal/auth"
	"github.com/Estefano-cmd/impulsoApi/internal/models"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// UserService manages user accounts
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
	log        *logrus.Logger
}

// NewUserService creates a new user service hashing passwords at the given cost
func NewUserService(users repository.UserRepository, bcryptCost int, log *logrus.Logger) *UserService {
	return &UserService{
		users:      users,
		bcryptCost: bcryptCost,
		log:        log,
	}
}

// CreateUser hashes the password and stores the user
func (s *UserService) CreateUser(ctx context.Context, user *models.User, password string) error {
	if err := validate(user); err != nil {
		return err
	}
	if password == "" {
		return &ValidationError{Message: "Password is required"}
	}

	hashed, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	user.Password = hashed

	if err := s.users.CreateUser(ctx, user); err != nil {
		return fromStore(err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "role_type": user.RoleType}).Info("User created")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return user, nil
}

// UpdateUser replaces the user's fields. The stored password is kept unless
// a new one is given.
func (s *UserService) UpdateUser(ctx context.Context, user *models.User, password string) error {
	if err := validate(user); err != nil {
		return err
	}

	withPassword := password != ""
	if withPassword {
		hashed, err := s.hashPassword(password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}

	return fromStore(s.users.UpdateUser(ctx, user, withPassword))
}

func (s *UserService) hashPassword(password string) (string, error) {
	hashed, err := auth.HashPassword(password, s.bcryptCost)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return "", &ValidationError{Message: fmt.Sprintf("Password must be at most %d bytes", auth.MaxPasswordBytes)}
	}
	return hashed, err
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return fromStore(s.users.DeleteUser(ctx, id))
}
