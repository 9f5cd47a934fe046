package repository

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/models"
)

const customersByRouteQuery = `SELECT c.id, c.name, c.surname, c.phone, c.ci, c.business_type, c.address,
	c.coord_lat, c.coord_lng, c.province, c.nit, c.razon_social, c.id_uv
FROM customers c
JOIN uvs u ON c.id_uv = u.id
JOIN route_uvs ru ON ru.id_uv = u.id
WHERE ru.id_route = ?
ORDER BY c.id`

var customerColumns = []string{
	"name", "surname", "phone", "ci", "business_type", "photo_url", "address",
	"coord_lat", "coord_lng", "id_user", "province", "nit", "razon_social", "id_uv",
}

func (r *repo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return r.create(ctx, customer)
}

func (r *repo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.list(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repo) FindCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.first(ctx, &customer, id); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repo) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	return r.replace(ctx, customer, customer.ID, customerColumns...)
}

func (r *repo) DeleteCustomer(ctx context.Context, id uint) error {
	return r.deleteWhere(ctx, &models.Customer{}, "id = ?", id)
}

// ListCustomersByRoute returns the customers whose UV belongs to the route
func (r *repo) ListCustomersByRoute(ctx context.Context, routeID uint) ([]models.RouteCustomer, error) {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var customers []models.RouteCustomer
	if err := gormDB.Raw(customersByRouteQuery, routeID).Scan(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
