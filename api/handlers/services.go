package handlers

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/models"
)

// AuthService is the authentication surface used by AuthHandler
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// RouteService is the route surface used by RouteHandler
type RouteService interface {
	CreateRoute(ctx context.Context, route *models.Route) error
	ListRoutes(ctx context.Context) ([]models.Route, error)
	GetRoute(ctx context.Context, id uint) (*models.Route, error)
	UpdateRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id uint) error

	AssignRouteToUser(ctx context.Context, userID, routeID uint) (*models.UserRoute, error)
	RemoveRouteFromUser(ctx context.Context, userID, routeID uint) error
	GetRouteDetail(ctx context.Context, userID uint) (*models.RouteDetail, error)
	GetRouteDetails(ctx context.Context, userID uint) ([]models.RouteDetail, error)

	AddUVToRoute(ctx context.Context, routeID, uvID uint) (*models.RouteUV, error)
	RemoveUVFromRoute(ctx context.Context, routeID, uvID uint) error
	CreateUV(ctx context.Context, uv *models.UV) error
	ListUVs(ctx context.Context) ([]models.UV, error)
}

// SaleService is the sale surface used by SaleHandler
type SaleService interface {
	GetSalesByRoute(ctx context.Context, routeID uint) ([]models.SaleDocument, error)
	GetSalesByUser(ctx context.Context, userID uint) ([]models.SaleDocument, error)
	CreateSale(ctx context.Context, sale *models.Sale) error
	ListSales(ctx context.Context) ([]models.Sale, error)
	GetSale(ctx context.Context, id uint) (*models.Sale, error)
	UpdateSale(ctx context.Context, id uint, update models.SaleUpdate) (*models.Sale, error)
	DeleteSale(ctx context.Context, id uint) error

	CreateSaleDetail(ctx context.Context, detail *models.SaleDetail) error
	ListSaleDetails(ctx context.Context) ([]models.SaleDetail, error)
	GetSaleDetail(ctx context.Context, id uint) (*models.SaleDetail, error)
	UpdateSaleDetail(ctx context.Context, detail *models.SaleDetail) error
	DeleteSaleDetail(ctx context.Context, id uint) error
}

// CustomerService is the customer surface used by CustomerHandler
type CustomerService interface {
	GetCustomersByRoute(ctx context.Context, routeID uint) ([]models.RouteCustomer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id uint) error
}

// UserService is the user surface used by UserHandler
type UserService interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User, password string) error
	DeleteUser(ctx context.Context, id uint) error
}

// RoleService is the role surface used by RoleHandler
type RoleService interface {
	CreateRole(ctx context.Context, role *models.Role) error
	ListRoles(ctx context.Context) ([]models.Role, error)
	GetRole(ctx context.Context, id uint) (*models.Role, error)
	UpdateRole(ctx context.Context, role *models.Role) error
	DeleteRole(ctx context.Context, id uint) error
}

// ProductService is the product surface used by ProductHandler
type ProductService interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}
