package service

import (
	"github.com/Estefano-cmd/impulsoApi/internal/auth"
	"github.com/Estefano-cmd/impulsoApi/internal/cache"
	"github.com/Estefano-cmd/impulsoApi/internal/messaging"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Services groups the business operations exposed over HTTP
type Services struct {
	Auth      *AuthService
	Routes    *RouteService
	Sales     *SaleService
	Customers *CustomerService
	Users     *UserService
	Roles     *RoleService
	Products  *ProductService
}

// Config holds the dependencies of the services
type Config struct {
	Repository repository.Repository
	Issuer     *auth.TokenIssuer
	Cache      cache.RouteDetailCache
	Publisher  messaging.Publisher
	Logger     *logrus.Logger
	BcryptCost int
}

// New creates every service from a single set of dependencies
func New(cfg Config) (*Services, error) {
	if cfg.Repository == nil {
		return nil, errors.New("repository is required")
	}
	if cfg.Issuer == nil {
		return nil, errors.New("token issuer is required")
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewNoopRouteDetailCache()
	}
	if cfg.Publisher == nil {
		cfg.Publisher = messaging.NewNoopPublisher()
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	return &Services{
		Auth:      NewAuthService(cfg.Repository, cfg.Issuer, cfg.Logger),
		Routes:    NewRouteService(cfg.Repository, cfg.Cache, cfg.Publisher, cfg.Logger),
		Sales:     NewSaleService(cfg.Repository, cfg.Repository, cfg.Publisher, cfg.Logger),
		Customers: NewCustomerService(cfg.Repository, cfg.Logger),
		Users:     NewUserService(cfg.Repository, cfg.BcryptCost, cfg.Logger),
		Roles:     NewRoleService(cfg.Repository),
		Products:  NewProductService(cfg.Repository),
	}, nil
}
