package service

import "github.com/Estefano-cmd/impulsoApi/internal/models"

// FoldSaleRows groups join rows by sale id into sale documents. Sales and
// line items keep the order in which they first appear in rows.
func FoldSaleRows(rows []models.SaleRow) []models.SaleDocument {
	index := make(map[uint]int, len(rows))
	docs := make([]models.SaleDocument, 0)

	for _, row := range rows {
		i, ok := index[row.SaleID]
		if !ok {
			i = len(docs)
			index[row.SaleID] = i
			docs = append(docs, models.SaleDocument{
				ID:            row.SaleID,
				SaleDate:      row.SaleDate,
				State:         row.State,
				Total:         row.Total,
				CustomerID:    row.CustomerID,
				DistributorID: row.DistributorID,
				SellerID:      row.SellerID,
				TruckID:       row.TruckID,
				Customer: models.SaleCustomer{
					Name:         row.CustomerName,
					Surname:      row.CustomerSurname,
					Phone:        row.Phone,
					CI:           row.CI,
					BusinessType: row.BusinessType,
					Address:      row.Address,
					CoordLat:     row.CoordLat,
					CoordLng:     row.CoordLng,
					Province:     row.Province,
					NIT:          row.NIT,
					RazonSocial:  row.RazonSocial,
					UV:           row.UV,
				},
				SaleDetails: []models.SaleLine{},
			})
		}

		docs[i].SaleDetails = append(docs[i].SaleDetails, models.SaleLine{
			ID:        row.SaleDetailID,
			SaleID:    row.SaleID,
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Price:     row.Price,
		})
	}

	return docs
}

// FoldRouteDetailRows groups join rows by route id, collecting the UVs of
// each route in row order.
func FoldRouteDetailRows(rows []models.RouteDetailRow) []models.RouteDetail {
	index := make(map[uint]int, len(rows))
	details := make([]models.RouteDetail, 0)

	for _, row := range rows {
		i, ok := index[row.RouteID]
		if !ok {
			i = len(details)
			index[row.RouteID] = i
			details = append(details, models.RouteDetail{
				RouteID:     row.RouteID,
				RouteName:   row.RouteName,
				Description: row.Description,
				UVs:         []int{},
			})
		}
		details[i].UVs = append(details[i].UVs, row.UV)
	}

	return details
}
