package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoleTypeValid(t *testing.T) {
	assert.True(t, RoleTypeDistributor.Valid())
	assert.True(t, RoleTypeSeller.Valid())
	assert.True(t, RoleTypeOffice.Valid())
	assert.False(t, RoleType("oficina").Valid())
	assert.False(t, RoleType("").Valid())
}

func TestSaleUpdateColumnsOnlySetFields(t *testing.T) {
	state := "completed"
	total := decimal.RequireFromString("210.00")
	date := time.Date(2024, 8, 16, 0, 0, 0, 0, time.UTC)

	cols := SaleUpdate{State: &state, Total: &total, SaleDate: &date}.Columns()

	assert.Len(t, cols, 3)
	assert.Equal(t, "completed", cols["state"])
	assert.Equal(t, total, cols["total"])
	assert.Equal(t, date, cols["sale_date"])
	assert.NotContains(t, cols, "id_customer")

	assert.Empty(t, SaleUpdate{}.Columns())
}
