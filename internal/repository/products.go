package repository

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/models"
)

func (r *repo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.create(ctx, product)
}

func (r *repo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.list(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.first(ctx, &product, id); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repo) UpdateProduct(ctx context.Context, product *models.Product) error {
	return r.replace(ctx, product, product.ID,
		"name", "price_city", "price_province", "stock", "price_buy", "image_url")
}

func (r *repo) DeleteProduct(ctx context.Context, id uint) error {
	return r.deleteWhere(ctx, &models.Product{}, "id = ?", id)
}
