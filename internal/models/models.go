package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoleType is the closed set of user kinds
type RoleType string

const (
	// RoleTypeDistributor delivers sales along a route
	RoleTypeDistributor RoleType = "distributor"
	// RoleTypeSeller takes orders from customers
	RoleTypeSeller RoleType = "seller"
	// RoleTypeOffice is back-office staff
	RoleTypeOffice RoleType = "office"
)

// Valid reports whether the role type is one of the known values
func (r RoleType) Valid() bool {
	switch r {
	case RoleTypeDistributor, RoleTypeSeller, RoleTypeOffice:
		return true
	}
	return false
}

// Role groups users for administration purposes
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"column:name;not null" validate:"required"`
}

func (Role) TableName() string { return "roles" }

// User is a seller, distributor or office account
type User struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Username string   `json:"username" gorm:"column:username;uniqueIndex;not null" validate:"required"`
	Password string   `json:"-" gorm:"column:password;not null"`
	State    bool     `json:"state" gorm:"column:state;not null"`
	RoleID   *uint    `json:"id_rol" gorm:"column:id_rol"`
	Name     string   `json:"name" gorm:"column:name" validate:"required"`
	Surname  string   `json:"surname" gorm:"column:surname" validate:"required"`
	RoleType RoleType `json:"role_type" gorm:"column:role_type;type:varchar(20)" validate:"required,role_type"`
}

func (User) TableName() string { return "users" }

// UV is a geographic delivery unit
type UV struct {
	ID uint `json:"id" gorm:"primaryKey"`
	UV int  `json:"uv" gorm:"column:uv;not null"`
}

func (UV) TableName() string { return "uvs" }

// Route is a named collection of UVs assignable to users
type Route struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"column:name;not null" validate:"required"`
	Description *string `json:"description" gorm:"column:description"`
}

func (Route) TableName() string { return "routes" }

// UserRoute links a user to a route
type UserRoute struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	UserID  uint `json:"id_user" gorm:"column:id_user;index;not null"`
	RouteID uint `json:"id_route" gorm:"column:id_route;index;not null"`
}

func (UserRoute) TableName() string { return "user_routes" }

// RouteUV links a route to a UV
type RouteUV struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	RouteID uint `json:"id_route" gorm:"column:id_route;index;not null"`
	UVID    uint `json:"id_uv" gorm:"column:id_uv;index;not null"`
}

func (RouteUV) TableName() string { return "route_uvs" }

// Customer is a point of sale along a route
type Customer struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"column:name" validate:"required"`
	Surname      string   `json:"surname" gorm:"column:surname" validate:"required"`
	Phone        string   `json:"phone" gorm:"column:phone" validate:"required"`
	CI           string   `json:"ci" gorm:"column:ci" validate:"required"`
	BusinessType string   `json:"business_type" gorm:"column:business_type" validate:"required"`
	PhotoURL     *string  `json:"photo_url" gorm:"column:photo_url"`
	Address      string   `json:"address" gorm:"column:address" validate:"required"`
	CoordLat     *float64 `json:"coord_lat" gorm:"column:coord_lat"`
	CoordLng     *float64 `json:"coord_lng" gorm:"column:coord_lng"`
	UserID       *uint    `json:"id_user" gorm:"column:id_user"`
	Province     bool     `json:"province" gorm:"column:province"`
	NIT          int64    `json:"nit" gorm:"column:nit"`
	RazonSocial  string   `json:"razon_social" gorm:"column:razon_social" validate:"required"`
	UVID         *uint    `json:"id_uv" gorm:"column:id_uv;index"`
}

func (Customer) TableName() string { return "customers" }

// Product is a sellable item
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"column:name;not null" validate:"required"`
	PriceCity     decimal.Decimal `json:"price_city" gorm:"column:price_city;type:numeric(12,2)"`
	PriceProvince decimal.Decimal `json:"price_province" gorm:"column:price_province;type:numeric(12,2)"`
	Stock         int             `json:"stock" gorm:"column:stock"`
	PriceBuy      decimal.Decimal `json:"price_buy" gorm:"column:price_buy;type:numeric(12,2)"`
	ImageURL      *string         `json:"image_url" gorm:"column:image_url"`
}

func (Product) TableName() string { return "products" }

// Sale is a transaction header. Total is supplied by the caller.
type Sale struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	SaleDate      time.Time       `json:"sale_date" gorm:"column:sale_date"`
	State         string          `json:"state" gorm:"column:state" validate:"required"`
	Total         decimal.Decimal `json:"total" gorm:"column:total;type:numeric(12,2)"`
	CustomerID    uint            `json:"id_customer" gorm:"column:id_customer;index" validate:"required"`
	DistributorID *uint           `json:"id_distributor" gorm:"column:id_distributor;index"`
	SellerID      uint            `json:"id_seller" gorm:"column:id_seller;index" validate:"required"`
	TruckID       *uint           `json:"id_truck" gorm:"column:id_truck"`
}

func (Sale) TableName() string { return "sales" }

// SaleUpdate carries the fields of a partial sale update; nil means unchanged
type SaleUpdate struct {
	SaleDate      *time.Time       `json:"sale_date"`
	State         *string          `json:"state"`
	Total         *decimal.Decimal `json:"total"`
	CustomerID    *uint            `json:"id_customer"`
	DistributorID *uint            `json:"id_distributor"`
	SellerID      *uint            `json:"id_seller"`
	TruckID       *uint            `json:"id_truck"`
}

// Columns returns the column/value pairs of the fields that were set
func (u SaleUpdate) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if u.SaleDate != nil {
		cols["sale_date"] = *u.SaleDate
	}
	if u.State != nil {
		cols["state"] = *u.State
	}
	if u.Total != nil {
		cols["total"] = *u.Total
	}
	if u.CustomerID != nil {
		cols["id_customer"] = *u.CustomerID
	}
	if u.DistributorID != nil {
		cols["id_distributor"] = *u.DistributorID
	}
	if u.SellerID != nil {
		cols["id_seller"] = *u.SellerID
	}
	if u.TruckID != nil {
		cols["id_truck"] = *u.TruckID
	}
	return cols
}

// SaleDetail is one line item of a sale
type SaleDetail struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	SaleID    uint            `json:"id_sale" gorm:"column:id_sale;index" validate:"required"`
	ProductID uint            `json:"id_product" gorm:"column:id_product" validate:"required"`
	Quantity  int             `json:"quantity" gorm:"column:quantity" validate:"gt=0"`
	Price     decimal.Decimal `json:"price" gorm:"column:price;type:numeric(12,2)"`
}

func (SaleDetail) TableName() string { return "sale_details" }

// All returns every persisted model in migration order
func All() []interface{} {
	return []interface{}{
		&Role{},
		&User{},
		&UV{},
		&Route{},
		&UserRoute{},
		&RouteUV{},
		&Customer{},
		&Product{},
		&Sale{},
		&SaleDetail{},
	}
}
