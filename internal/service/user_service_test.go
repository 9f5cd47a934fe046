package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Estefano-cmd/impulsoApi/internal/auth"
	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUser() *models.User {
	return &models.User{
		Username: "johndoe",
		Name:     "John",
		Surname:  "Doe",
		State:    true,
		RoleType: models.RoleTypeDistributor,
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := NewUserService(repo, bcrypt.MinCost, quietLogger())
	user := newUser()
	repo.On("CreateUser", mock.Anything, user).Return(nil)

	require.NoError(t, svc.CreateUser(context.Background(), user, "password123"))
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, auth.ComparePassword(user.Password, "password123"))

	repo.AssertExpectations(t)
}

func TestCreateUserRejectsUnknownRoleType(t *testing.T) {
	repo := new(MockRepository)
	svc := NewUserService(repo, bcrypt.MinCost, quietLogger())
	user := newUser()
	user.RoleType = "admin"

	err := svc.CreateUser(context.Background(), user, "password123")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestCreateUserRequiresPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := NewUserService(repo, bcrypt.MinCost, quietLogger())

	err := svc.CreateUser(context.Background(), newUser(), "")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Password is required", validationErr.Message)
}

func TestUpdateUserKeepsPasswordWhenOmitted(t *testing.T) {
	repo := new(MockRepository)
	svc := NewUserService(repo, bcrypt.MinCost, quietLogger())
	user := newUser()
	user.ID = 5
	repo.On("UpdateUser", mock.Anything, user, false).Return(nil)

	require.NoError(t, svc.UpdateUser(context.Background(), user, ""))
	assert.Empty(t, user.Password)
	repo.AssertExpectations(t)
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := NewUserService(repo, bcrypt.MinCost, quietLogger())
	user := newUser()
	user.ID = 5
	repo.On("UpdateUser", mock.Anything, user, true).Return(nil)

	require.NoError(t, svc.UpdateUser(context.Background(), user, "newpass"))
	assert.NoError(t, auth.ComparePassword(user.Password, "newpass"))
	repo.AssertExpectations(t)
}

func TestCreateUserRejectsOverlongPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := NewUserService(repo, bcrypt.MinCost, quietLogger())

	err := svc.CreateUser(context.Background(), newUser(), strings.Repeat("x", 73))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Password must be at most 72 bytes", validationErr.Message)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestUpdateUserRejectsOverlongPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := NewUserService(repo, bcrypt.MinCost, quietLogger())
	user := newUser()
	user.ID = 5

	err := svc.UpdateUser(context.Background(), user, strings.Repeat("x", 73))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
}
