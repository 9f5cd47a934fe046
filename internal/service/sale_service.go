package service

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/messaging"
	"github.com/Estefano-cmd/impulsoApi/internal/models"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"

	"github.com/sirupsen/logrus"
)

// SaleService manages sales, their line items and the nested sale views
type SaleService struct {
	sales   repository.SaleRepository
	details repository.SaleDetailRepository
	events  messaging.Publisher
	log     *logrus.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(sales repository.SaleRepository, details repository.SaleDetailRepository, events messaging.Publisher, log *logrus.Logger) *SaleService {
	return &SaleService{
		sales:   sales,
		details: details,
		events:  events,
		log:     log,
	}
}

// GetSalesByRoute returns the sales whose customer lives in a UV of the
// route, each with its customer and line items. Sales without line items
// are not included. It returns ErrNotFound when nothing matches.
func (s *SaleService) GetSalesByRoute(ctx context.Context, routeID uint) ([]models.SaleDocument, error) {
	rows, err := s.sales.ListSaleRowsByRoute(ctx, routeID)
	if err != nil {
		return nil, fromStore(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return FoldSaleRows(rows), nil
}

// GetSalesByUser returns the sales where the user is seller or distributor.
// Only sales whose customer's UV belongs to some route are included.
func (s *SaleService) GetSalesByUser(ctx context.Context, userID uint) ([]models.SaleDocument, error) {
	rows, err := s.sales.ListSaleRowsByUser(ctx, userID)
	if err != nil {
		return nil, fromStore(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return FoldSaleRows(rows), nil
}

// CreateSale stores a sale header. The total is taken as given.
func (s *SaleService) CreateSale(ctx context.Context, sale *models.Sale) error {
	if err := validate(sale); err != nil {
		return err
	}
	if err := s.sales.CreateSale(ctx, sale); err != nil {
		return fromStore(err)
	}

	s.events.Publish(ctx, messaging.EventSaleCreated, messaging.Aggregate("sale", sale.ID), sale)
	return nil
}

func (s *SaleService) ListSales(ctx context.Context) ([]models.Sale, error) {
	sales, err := s.sales.ListSales(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return sales, nil
}

func (s *SaleService) GetSale(ctx context.Context, id uint) (*models.Sale, error) {
	sale, err := s.sales.FindSaleByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return sale, nil
}

// UpdateSale applies the fields set in update and returns the stored sale
func (s *SaleService) UpdateSale(ctx context.Context, id uint, update models.SaleUpdate) (*models.Sale, error) {
	if update.State != nil && *update.State == "" {
		return nil, &ValidationError{Message: "State cannot be empty"}
	}

	sale, err := s.sales.UpdateSale(ctx, id, update)
	if err != nil {
		return nil, fromStore(err)
	}

	s.events.Publish(ctx, messaging.EventSaleUpdated, messaging.Aggregate("sale", id), sale)
	return sale, nil
}

// DeleteSale removes the sale header. Line items are not removed.
func (s *SaleService) DeleteSale(ctx context.Context, id uint) error {
	if err := s.sales.DeleteSale(ctx, id); err != nil {
		return fromStore(err)
	}

	s.events.Publish(ctx, messaging.EventSaleDeleted, messaging.Aggregate("sale", id), map[string]uint{"id": id})
	s.log.WithField("sale_id", id).Info("Sale deleted")
	return nil
}

func (s *SaleService) CreateSaleDetail(ctx context.Context, detail *models.SaleDetail) error {
	if err := validate(detail); err != nil {
		return err
	}
	return fromStore(s.details.CreateSaleDetail(ctx, detail))
}

func (s *SaleService) ListSaleDetails(ctx context.Context) ([]models.SaleDetail, error) {
	details, err := s.details.ListSaleDetails(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return details, nil
}

func (s *SaleService) GetSaleDetail(ctx context.Context, id uint) (*models.SaleDetail, error) {
	detail, err := s.details.FindSaleDetailByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return detail, nil
}

func (s *SaleService) UpdateSaleDetail(ctx context.Context, detail *models.SaleDetail) error {
	if err := validate(detail); err != nil {
		return err
	}
	return fromStore(s.details.UpdateSaleDetail(ctx, detail))
}

func (s *SaleService) DeleteSaleDetail(ctx context.Context, id uint) error {
	return fromStore(s.details.DeleteSaleDetail(ctx, id))
}
