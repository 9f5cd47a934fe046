package repository

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/database"
	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserRepository provides access to users
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User, withPassword bool) error
	DeleteUser(ctx context.Context, id uint) error
}

// RoleRepository provides access to roles
type RoleRepository interface {
	CreateRole(ctx context.Context, role *models.Role) error
	ListRoles(ctx context.Context) ([]models.Role, error)
	FindRoleByID(ctx context.Context, id uint) (*models.Role, error)
	UpdateRole(ctx context.Context, role *models.Role) error
	DeleteRole(ctx context.Context, id uint) error
}

// ProductRepository provides access to products
type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, id uint) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

// CustomerRepository provides access to customers
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	FindCustomerByID(ctx context.Context, id uint) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, id uint) error
	ListCustomersByRoute(ctx context.Context, routeID uint) ([]models.RouteCustomer, error)
}

// SaleRepository provides access to sales and the sale aggregation joins
type SaleRepository interface {
	CreateSale(ctx context.Context, sale *models.Sale) error
	ListSales(ctx context.Context) ([]models.Sale, error)
	FindSaleByID(ctx context.Context, id uint) (*models.Sale, error)
	UpdateSale(ctx context.Context, id uint, update models.SaleUpdate) (*models.Sale, error)
	DeleteSale(ctx context.Context, id uint) error
	ListSaleRowsByRoute(ctx context.Context, routeID uint) ([]models.SaleRow, error)
	ListSaleRowsByUser(ctx context.Context, userID uint) ([]models.SaleRow, error)
}

// SaleDetailRepository provides access to sale line items
type SaleDetailRepository interface {
	CreateSaleDetail(ctx context.Context, detail *models.SaleDetail) error
	ListSaleDetails(ctx context.Context) ([]models.SaleDetail, error)
	FindSaleDetailByID(ctx context.Context, id uint) (*models.SaleDetail, error)
	UpdateSaleDetail(ctx context.Context, detail *models.SaleDetail) error
	DeleteSaleDetail(ctx context.Context, id uint) error
}

// RouteRepository provides access to routes, UVs and their assignments
type RouteRepository interface {
	CreateRoute(ctx context.Context, route *models.Route) error
	ListRoutes(ctx context.Context) ([]models.Route, error)
	FindRouteByID(ctx context.Context, id uint) (*models.Route, error)
	UpdateRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id uint) error

	CreateUserRoute(ctx context.Context, assignment *models.UserRoute) error
	DeleteUserRoute(ctx context.Context, userID, routeID uint) error
	ListRouteDetailRows(ctx context.Context, userID uint) ([]models.RouteDetailRow, error)
	ListUserIDsByRoute(ctx context.Context, routeID uint) ([]uint, error)

	CreateUV(ctx context.Context, uv *models.UV) error
	ListUVs(ctx context.Context) ([]models.UV, error)
	CreateRouteUV(ctx context.Context, membership *models.RouteUV) error
	DeleteRouteUV(ctx context.Context, routeID, uvID uint) error
}

// Repository groups every data access interface
type Repository interface {
	UserRepository
	RoleRepository
	ProductRepository
	CustomerRepository
	SaleRepository
	SaleDetailRepository
	RouteRepository
}

// repo is an implementation of the Repository interface
type repo struct {
	db database.DB
}

// NewRepository creates a new repository instance
func NewRepository(db database.DB) Repository {
	return &repo{
		db: db,
	}
}

func (r *repo) conn(ctx context.Context) (*gorm.DB, error) {
	gormDB, err := r.db.DB()
	if err != nil {
		return nil, err
	}
	return gormDB.WithContext(ctx), nil
}

// first loads a single record by primary key
func (r *repo) first(ctx context.Context, dest interface{}, id uint) error {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return translate(gormDB.First(dest, id).Error)
}

// list loads every record of the destination's table ordered by id
func (r *repo) list(ctx context.Context, dest interface{}) error {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return gormDB.Order("id").Find(dest).Error
}

// create inserts a record and fills its generated id
func (r *repo) create(ctx context.Context, value interface{}) error {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return err
	}
	return gormDB.Create(value).Error
}

// replace overwrites the given columns of the record with the given id
func (r *repo) replace(ctx context.Context, model interface{}, id uint, columns ...string) error {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return err
	}

	result := gormDB.Model(model).Where("id = ?", id).Select(columns).Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteWhere removes matching rows and reports ErrNotFound when none matched
func (r *repo) deleteWhere(ctx context.Context, model interface{}, query string, args ...interface{}) error {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return err
	}

	result := gormDB.Where(query, args...).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
