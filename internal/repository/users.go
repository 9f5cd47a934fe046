package repository

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/models"
)

var userColumns = []string{"username", "state", "id_rol", "name", "surname", "role_type"}

func (r *repo) CreateUser(ctx context.Context, user *models.User) error {
	return r.create(ctx, user)
}

func (r *repo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.list(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repo) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.first(ctx, &user, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUsername looks a user up by exact username
func (r *repo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := gormDB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateUser overwrites the profile columns, and the password hash when withPassword is set
func (r *repo) UpdateUser(ctx context.Context, user *models.User, withPassword bool) error {
	columns := userColumns
	if withPassword {
		columns = append([]string{"password"}, userColumns...)
	}
	return r.replace(ctx, user, user.ID, columns...)
}

func (r *repo) DeleteUser(ctx context.Context, id uint) error {
	return r.deleteWhere(ctx, &models.User{}, "id = ?", id)
}

func (r *repo) CreateRole(ctx context.Context, role *models.Role) error {
	return r.create(ctx, role)
}

func (r *repo) ListRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	if err := r.list(ctx, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *repo) FindRoleByID(ctx context.Context, id uint) (*models.Role, error) {
	var role models.Role
	if err := r.first(ctx, &role, id); err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repo) UpdateRole(ctx context.Context, role *models.Role) error {
	return r.replace(ctx, role, role.ID, "name")
}

func (r *repo) DeleteRole(ctx context.Context, id uint) error {
	return r.deleteWhere(ctx, &models.Role{}, "id = ?", id)
}
