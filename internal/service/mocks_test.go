package service

import (
	"context"
	"io"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// MockRepository implements repository.Repository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func (m *MockRepository) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockRepository) UpdateUser(ctx context.Context, user *models.User, withPassword bool) error {
	return m.Called(ctx, user, withPassword).Error(0)
}

func (m *MockRepository) DeleteUser(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) CreateRole(ctx context.Context, role *models.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRepository) ListRoles(ctx context.Context) ([]models.Role, error) {
	args := m.Called(ctx)
	roles, _ := args.Get(0).([]models.Role)
	return roles, args.Error(1)
}

func (m *MockRepository) FindRoleByID(ctx context.Context, id uint) (*models.Role, error) {
	args := m.Called(ctx, id)
	role, _ := args.Get(0).(*models.Role)
	return role, args.Error(1)
}

func (m *MockRepository) UpdateRole(ctx context.Context, role *models.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRepository) DeleteRole(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *MockRepository) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *MockRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockRepository) DeleteProduct(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]models.Customer)
	return customers, args.Error(1)
}

func (m *MockRepository) FindCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*models.Customer)
	return customer, args.Error(1)
}

func (m *MockRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockRepository) DeleteCustomer(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListCustomersByRoute(ctx context.Context, routeID uint) ([]models.RouteCustomer, error) {
	args := m.Called(ctx, routeID)
	customers, _ := args.Get(0).([]models.RouteCustomer)
	return customers, args.Error(1)
}

func (m *MockRepository) CreateSale(ctx context.Context, sale *models.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockRepository) ListSales(ctx context.Context) ([]models.Sale, error) {
	args := m.Called(ctx)
	sales, _ := args.Get(0).([]models.Sale)
	return sales, args.Error(1)
}

func (m *MockRepository) FindSaleByID(ctx context.Context, id uint) (*models.Sale, error) {
	args := m.Called(ctx, id)
	sale, _ := args.Get(0).(*models.Sale)
	return sale, args.Error(1)
}

func (m *MockRepository) UpdateSale(ctx context.Context, id uint, update models.SaleUpdate) (*models.Sale, error) {
	args := m.Called(ctx, id, update)
	sale, _ := args.Get(0).(*models.Sale)
	return sale, args.Error(1)
}

func (m *MockRepository) DeleteSale(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) ListSaleRowsByRoute(ctx context.Context, routeID uint) ([]models.SaleRow, error) {
	args := m.Called(ctx, routeID)
	rows, _ := args.Get(0).([]models.SaleRow)
	return rows, args.Error(1)
}

func (m *MockRepository) ListSaleRowsByUser(ctx context.Context, userID uint) ([]models.SaleRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]models.SaleRow)
	return rows, args.Error(1)
}

func (m *MockRepository) CreateSaleDetail(ctx context.Context, detail *models.SaleDetail) error {
	return m.Called(ctx, detail).Error(0)
}

func (m *MockRepository) ListSaleDetails(ctx context.Context) ([]models.SaleDetail, error) {
	args := m.Called(ctx)
	details, _ := args.Get(0).([]models.SaleDetail)
	return details, args.Error(1)
}

func (m *MockRepository) FindSaleDetailByID(ctx context.Context, id uint) (*models.SaleDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.SaleDetail)
	return detail, args.Error(1)
}

func (m *MockRepository) UpdateSaleDetail(ctx context.Context, detail *models.SaleDetail) error {
	return m.Called(ctx, detail).Error(0)
}

func (m *MockRepository) DeleteSaleDetail(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) CreateRoute(ctx context.Context, route *models.Route) error {
	return m.Called(ctx, route).Error(0)
}

func (m *MockRepository) ListRoutes(ctx context.Context) ([]models.Route, error) {
	args := m.Called(ctx)
	routes, _ := args.Get(0).([]models.Route)
	return routes, args.Error(1)
}

func (m *MockRepository) FindRouteByID(ctx context.Context, id uint) (*models.Route, error) {
	args := m.Called(ctx, id)
	route, _ := args.Get(0).(*models.Route)
	return route, args.Error(1)
}

func (m *MockRepository) UpdateRoute(ctx context.Context, route *models.Route) error {
	return m.Called(ctx, route).Error(0)
}

func (m *MockRepository) DeleteRoute(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRepository) CreateUserRoute(ctx context.Context, assignment *models.UserRoute) error {
	return m.Called(ctx, assignment).Error(0)
}

func (m *MockRepository) DeleteUserRoute(ctx context.Context, userID, routeID uint) error {
	return m.Called(ctx, userID, routeID).Error(0)
}

func (m *MockRepository) ListRouteDetailRows(ctx context.Context, userID uint) ([]models.RouteDetailRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]models.RouteDetailRow)
	return rows, args.Error(1)
}

func (m *MockRepository) ListUserIDsByRoute(ctx context.Context, routeID uint) ([]uint, error) {
	args := m.Called(ctx, routeID)
	ids, _ := args.Get(0).([]uint)
	return ids, args.Error(1)
}

func (m *MockRepository) CreateUV(ctx context.Context, uv *models.UV) error {
	return m.Called(ctx, uv).Error(0)
}

func (m *MockRepository) ListUVs(ctx context.Context) ([]models.UV, error) {
	args := m.Called(ctx)
	uvs, _ := args.Get(0).([]models.UV)
	return uvs, args.Error(1)
}

func (m *MockRepository) CreateRouteUV(ctx context.Context, membership *models.RouteUV) error {
	return m.Called(ctx, membership).Error(0)
}

func (m *MockRepository) DeleteRouteUV(ctx context.Context, routeID, uvID uint) error {
	return m.Called(ctx, routeID, uvID).Error(0)
}

// MockRouteDetailCache implements cache.RouteDetailCache for testing
type MockRouteDetailCache struct {
	mock.Mock
}

func (m *MockRouteDetailCache) Get(ctx context.Context, userID uint) ([]models.RouteDetail, bool) {
	args := m.Called(ctx, userID)
	details, _ := args.Get(0).([]models.RouteDetail)
	return details, args.Bool(1)
}

func (m *MockRouteDetailCache) Set(ctx context.Context, userID uint, details []models.RouteDetail) {
	m.Called(ctx, userID, details)
}

func (m *MockRouteDetailCache) Invalidate(ctx context.Context, userIDs ...uint) {
	m.Called(ctx, userIDs)
}

// MockPublisher implements messaging.Publisher for testing
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, eventType, aggregate string, data interface{}) {
	m.Called(ctx, eventType, aggregate, data)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
