package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRow is one row of the sale/customer/route/line-item join
type SaleRow struct {
	SaleID        uint            `gorm:"column:sale_id"`
	SaleDate      time.Time       `gorm:"column:sale_date"`
	State         string          `gorm:"column:state"`
	Total         decimal.Decimal `gorm:"column:total"`
	CustomerID    uint            `gorm:"column:id_customer"`
	DistributorID *uint           `gorm:"column:id_distributor"`
	SellerID      uint            `gorm:"column:id_seller"`
	TruckID       *uint           `gorm:"column:id_truck"`

	CustomerName    string   `gorm:"column:customer_name"`
	CustomerSurname string   `gorm:"column:customer_surname"`
	Phone           string   `gorm:"column:phone"`
	CI              string   `gorm:"column:ci"`
	BusinessType    string   `gorm:"column:business_type"`
	Address         string   `gorm:"column:address"`
	CoordLat        *float64 `gorm:"column:coord_lat"`
	CoordLng        *float64 `gorm:"column:coord_lng"`
	Province        bool     `gorm:"column:province"`
	NIT             int64    `gorm:"column:nit"`
	RazonSocial     string   `gorm:"column:razon_social"`
	UV              int      `gorm:"column:uv"`

	SaleDetailID uint            `gorm:"column:sale_detail_id"`
	ProductID    uint            `gorm:"column:id_product"`
	Quantity     int             `gorm:"column:quantity"`
	Price        decimal.Decimal `gorm:"column:price"`
}

// SaleCustomer is the denormalized customer embedded in a sale document
type SaleCustomer struct {
	Name         string   `json:"name"`
	Surname      string   `json:"surname"`
	Phone        string   `json:"phone"`
	CI           string   `json:"ci"`
	BusinessType string   `json:"business_type"`
	Address      string   `json:"address"`
	CoordLat     *float64 `json:"coord_lat"`
	CoordLng     *float64 `json:"coord_lng"`
	Province     bool     `json:"province"`
	NIT          int64    `json:"nit"`
	RazonSocial  string   `json:"razon_social"`
	UV           int      `json:"uv"`
}

// SaleLine is a line item inside a sale document
type SaleLine struct {
	ID        uint            `json:"id"`
	SaleID    uint            `json:"id_sale"`
	ProductID uint            `json:"id_product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// SaleDocument is a sale with its customer and line items
type SaleDocument struct {
	ID            uint            `json:"id"`
	SaleDate      time.Time       `json:"sale_date"`
	State         string          `json:"state"`
	Total         decimal.Decimal `json:"total"`
	CustomerID    uint            `json:"id_customer"`
	DistributorID *uint           `json:"id_distributor"`
	SellerID      uint            `json:"id_seller"`
	TruckID       *uint           `json:"id_truck"`
	Customer      SaleCustomer    `json:"customer"`
	SaleDetails   []SaleLine      `json:"sale_details"`
}

// RouteDetailRow is one row of the user/route/UV join
type RouteDetailRow struct {
	RouteID     uint    `gorm:"column:route_id"`
	RouteName   string  `gorm:"column:route_name"`
	Description *string `gorm:"column:description"`
	UVID        uint    `gorm:"column:uv_id"`
	UV          int     `gorm:"column:uv"`
}

// RouteDetail is a route with the UVs it covers
type RouteDetail struct {
	RouteID     uint    `json:"id_route"`
	RouteName   string  `json:"route_name"`
	Description *string `json:"description"`
	UVs         []int   `json:"uvs"`
}

// RouteCustomer is the flat customer record returned by route lookups
type RouteCustomer struct {
	ID           uint     `json:"id" gorm:"column:id"`
	Name         string   `json:"name" gorm:"column:name"`
	Surname      string   `json:"surname" gorm:"column:surname"`
	Phone        string   `json:"phone" gorm:"column:phone"`
	CI           string   `json:"ci" gorm:"column:ci"`
	BusinessType string   `json:"business_type" gorm:"column:business_type"`
	Address      string   `json:"address" gorm:"column:address"`
	CoordLat     *float64 `json:"coord_lat" gorm:"column:coord_lat"`
	CoordLng     *float64 `json:"coord_lng" gorm:"column:coord_lng"`
	Province     bool     `json:"province" gorm:"column:province"`
	NIT          int64    `json:"nit" gorm:"column:nit"`
	RazonSocial  string   `json:"razon_social" gorm:"column:razon_social"`
	UVID         uint     `json:"id_uv" gorm:"column:id_uv"`
}
