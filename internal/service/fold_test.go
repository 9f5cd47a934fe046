package service

import (
	"testing"
	"time"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleRow(saleID, detailID uint, quantity int) models.SaleRow {
	return models.SaleRow{
		SaleID:          saleID,
		SaleDate:        time.Date(2024, 8, 16, 0, 0, 0, 0, time.UTC),
		State:           "completed",
		Total:           decimal.RequireFromString("20.00"),
		CustomerID:      4,
		SellerID:        9,
		CustomerName:    "Alice",
		CustomerSurname: "Smith",
		RazonSocial:     "Example Corp",
		UV:              10,
		SaleDetailID:    detailID,
		ProductID:       7,
		Quantity:        quantity,
		Price:           decimal.RequireFromString("10.00"),
	}
}

func TestFoldSaleRowsGroupsBySaleInFirstSeenOrder(t *testing.T) {
	rows := []models.SaleRow{
		saleRow(3, 30, 1),
		saleRow(1, 10, 2),
		saleRow(3, 31, 1),
		saleRow(2, 20, 5),
		saleRow(1, 11, 3),
		saleRow(3, 32, 4),
	}

	docs := FoldSaleRows(rows)

	require.Len(t, docs, 3)
	assert.Equal(t, uint(3), docs[0].ID)
	assert.Equal(t, uint(1), docs[1].ID)
	assert.Equal(t, uint(2), docs[2].ID)

	lineIDs := func(doc models.SaleDocument) []uint {
		ids := make([]uint, 0, len(doc.SaleDetails))
		for _, line := range doc.SaleDetails {
			ids = append(ids, line.ID)
		}
		return ids
	}
	assert.Equal(t, []uint{30, 31, 32}, lineIDs(docs[0]))
	assert.Equal(t, []uint{10, 11}, lineIDs(docs[1]))
	assert.Equal(t, []uint{20}, lineIDs(docs[2]))

	total := 0
	for _, doc := range docs {
		total += len(doc.SaleDetails)
	}
	assert.Equal(t, len(rows), total)
}

func TestFoldSaleRowsCopiesHeaderAndCustomer(t *testing.T) {
	docs := FoldSaleRows([]models.SaleRow{saleRow(1, 10, 2)})

	require.Len(t, docs, 1)
	doc := docs[0]
	assert.Equal(t, "completed", doc.State)
	assert.True(t, decimal.RequireFromString("20").Equal(doc.Total))
	assert.Equal(t, uint(9), doc.SellerID)
	assert.Nil(t, doc.DistributorID)
	assert.Equal(t, "Alice", doc.Customer.Name)
	assert.Equal(t, "Example Corp", doc.Customer.RazonSocial)
	assert.Equal(t, 10, doc.Customer.UV)

	require.Len(t, doc.SaleDetails, 1)
	line := doc.SaleDetails[0]
	assert.Equal(t, uint(1), line.SaleID)
	assert.Equal(t, uint(7), line.ProductID)
	assert.Equal(t, 2, line.Quantity)
}

func TestFoldSaleRowsEmpty(t *testing.T) {
	assert.Empty(t, FoldSaleRows(nil))
}

func TestFoldRouteDetailRows(t *testing.T) {
	north := "North side"
	rows := []models.RouteDetailRow{
		{RouteID: 1, RouteName: "North", Description: &north, UVID: 2, UV: 10},
		{RouteID: 1, RouteName: "North", Description: &north, UVID: 3, UV: 11},
		{RouteID: 4, RouteName: "South", UVID: 5, UV: 20},
	}

	details := FoldRouteDetailRows(rows)

	require.Len(t, details, 2)
	assert.Equal(t, "North", details[0].RouteName)
	assert.Equal(t, &north, details[0].Description)
	assert.Equal(t, []int{10, 11}, details[0].UVs)
	assert.Equal(t, uint(4), details[1].RouteID)
	assert.Nil(t, details[1].Description)
	assert.Equal(t, []int{20}, details[1].UVs)
}
