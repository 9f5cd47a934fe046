package service

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/models"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"

	"github.com/sirupsen/logrus"
)

// CustomerService manages customers and the customer-by-route lookup
type CustomerService struct {
	customers repository.CustomerRepository
	log       *logrus.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers repository.CustomerRepository, log *logrus.Logger) *CustomerService {
	return &CustomerService{
		customers: customers,
		log:       log,
	}
}

// GetCustomersByRoute returns the customers living in any UV of the route.
// It returns ErrNotFound when there are none.
func (s *CustomerService) GetCustomersByRoute(ctx context.Context, routeID uint) ([]models.RouteCustomer, error) {
	customers, err := s.customers.ListCustomersByRoute(ctx, routeID)
	if err != nil {
		return nil, fromStore(err)
	}
	if len(customers) == 0 {
		return nil, ErrNotFound
	}
	return customers, nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if err := validate(customer); err != nil {
		return err
	}
	return fromStore(s.customers.CreateCustomer(ctx, customer))
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return customers, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	customer, err := s.customers.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return customer, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	if err := validate(customer); err != nil {
		return err
	}
	return fromStore(s.customers.UpdateCustomer(ctx, customer))
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	if err := s.customers.DeleteCustomer(ctx, id); err != nil {
		return fromStore(err)
	}
	s.log.WithField("customer_id", id).Info("Customer deleted")
	return nil
}
