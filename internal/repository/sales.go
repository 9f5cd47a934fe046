package repository

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/models"
)

// saleRowsQuery joins a sale with its customer, the customer's UV, the UV's
// route memberships and the sale's line items. Every join is an inner join.
const saleRowsQuery = `SELECT
	s.id AS sale_id, s.sale_date, s.state, s.total, s.id_customer,
	s.id_distributor, s.id_seller, s.id_truck,
	c.name AS customer_name, c.surname AS customer_surname, c.phone, c.ci,
	c.business_type, c.address, c.coord_lat, c.coord_lng, c.province,
	c.nit, c.razon_social, u.uv,
	sd.id AS sale_detail_id, sd.id_product, sd.quantity, sd.price
FROM sales s
JOIN customers c ON s.id_customer = c.id
JOIN uvs u ON c.id_uv = u.id
JOIN route_uvs ru ON ru.id_uv = u.id
JOIN routes r ON r.id = ru.id_route
JOIN sale_details sd ON sd.id_sale = s.id`

const (
	saleRowsByRouteQuery = saleRowsQuery + `
WHERE r.id = ?
ORDER BY s.id, sd.id`

	saleRowsByUserQuery = saleRowsQuery + `
WHERE s.id_seller = ? OR s.id_distributor = ?
ORDER BY s.id, sd.id`
)

func (r *repo) CreateSale(ctx context.Context, sale *models.Sale) error {
	return r.create(ctx, sale)
}

func (r *repo) ListSales(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.list(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repo) FindSaleByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.first(ctx, &sale, id); err != nil {
		return nil, err
	}
	return &sale, nil
}

// UpdateSale applies the set fields of the update and returns the stored sale
func (r *repo) UpdateSale(ctx context.Context, id uint, update models.SaleUpdate) (*models.Sale, error) {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	if cols := update.Columns(); len(cols) > 0 {
		result := gormDB.Model(&models.Sale{}).Where("id = ?", id).Updates(cols)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindSaleByID(ctx, id)
}

func (r *repo) DeleteSale(ctx context.Context, id uint) error {
	return r.deleteWhere(ctx, &models.Sale{}, "id = ?", id)
}

// ListSaleRowsByRoute returns the flat join rows of the sales made in the route
func (r *repo) ListSaleRowsByRoute(ctx context.Context, routeID uint) ([]models.SaleRow, error) {
	return r.saleRows(ctx, saleRowsByRouteQuery, routeID)
}

// ListSaleRowsByUser returns the flat join rows of the sales the user sold or delivered
func (r *repo) ListSaleRowsByUser(ctx context.Context, userID uint) ([]models.SaleRow, error) {
	return r.saleRows(ctx, saleRowsByUserQuery, userID, userID)
}

func (r *repo) saleRows(ctx context.Context, query string, args ...interface{}) ([]models.SaleRow, error) {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var rows []models.SaleRow
	if err := gormDB.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) CreateSaleDetail(ctx context.Context, detail *models.SaleDetail) error {
	return r.create(ctx, detail)
}

func (r *repo) ListSaleDetails(ctx context.Context) ([]models.SaleDetail, error) {
	var details []models.SaleDetail
	if err := r.list(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *repo) FindSaleDetailByID(ctx context.Context, id uint) (*models.SaleDetail, error) {
	var detail models.SaleDetail
	if err := r.first(ctx, &detail, id); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *repo) UpdateSaleDetail(ctx context.Context, detail *models.SaleDetail) error {
	return r.replace(ctx, detail, detail.ID, "id_sale", "id_product", "quantity", "price")
}

func (r *repo) DeleteSaleDetail(ctx context.Context, id uint) error {
	return r.deleteWhere(ctx, &models.SaleDetail{}, "id = ?", id)
}
