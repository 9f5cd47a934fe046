package service

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/models"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"
)

// RoleService manages roles
type RoleService struct {
	roles repository.RoleRepository
}

// NewRoleService creates a new role service
func NewRoleService(roles repository.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) CreateRole(ctx context.Context, role *models.Role) error {
	if err := validate(role); err != nil {
		return err
	}
	return fromStore(s.roles.CreateRole(ctx, role))
}

func (s *RoleService) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roles.ListRoles(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return roles, nil
}

func (s *RoleService) GetRole(ctx context.Context, id uint) (*models.Role, error) {
	role, err := s.roles.FindRoleByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return role, nil
}

func (s *RoleService) UpdateRole(ctx context.Context, role *models.Role) error {
	if err := validate(role); err != nil {
		return err
	}
	return fromStore(s.roles.UpdateRole(ctx, role))
}

func (s *RoleService) DeleteRole(ctx context.Context, id uint) error {
	return fromStore(s.roles.DeleteRole(ctx, id))
}

// ProductService manages products
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	if err := validate(product); err != nil {
		return err
	}
	return fromStore(s.products.CreateProduct(ctx, product))
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return products, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.products.FindProductByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) error {
	if err := validate(product); err != nil {
		return err
	}
	return fromStore(s.products.UpdateProduct(ctx, product))
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return fromStore(s.products.DeleteProduct(ctx, id))
}
