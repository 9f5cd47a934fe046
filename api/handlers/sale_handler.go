package handlers

import (
	"net/http"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SaleHandler handles sales, sale details and the nested sale views
type SaleHandler struct {
	service SaleService
	log     *logrus.Logger
}

// NewSaleHandler creates a new SaleHandler instance
func NewSaleHandler(svc SaleService, log *logrus.Logger) *SaleHandler {
	return &SaleHandler{
		service: svc,
		log:     log,
	}
}

// GetSalesByRoute returns the nested sales of the route in the path
func (h *SaleHandler) GetSalesByRoute(c *gin.Context) {
	routeID, ok := paramID(c, "id_route")
	if !ok {
		return
	}

	sales, err := h.service.GetSalesByRoute(c.Request.Context(), routeID)
	if err != nil {
		respondError(c, h.log, err, "No sales found for this route")
		return
	}
	c.JSON(http.StatusOK, sales)
}

// GetSalesByUser returns the nested sales where the user sold or delivered
func (h *SaleHandler) GetSalesByUser(c *gin.Context) {
	userID, ok := paramID(c, "id_user")
	if !ok {
		return
	}

	sales, err := h.service.GetSalesByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err, "No sales found for this user")
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) CreateSale(c *gin.Context) {
	var sale models.Sale
	if !bindJSON(c, h.log, &sale) {
		return
	}
	sale.ID = 0

	if err := h.service.CreateSale(c.Request.Context(), &sale); err != nil {
		respondError(c, h.log, err, "Sale not found")
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.service.ListSales(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	sale, err := h.service.GetSale(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, sale)
}

// UpdateSale applies a partial update to the sale in the path
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var update models.SaleUpdate
	if !bindJSON(c, h.log, &update) {
		return
	}

	sale, err := h.service.UpdateSale(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.log, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (h *SaleHandler) DeleteSale(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSale(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Sale not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted"})
}

func (h *SaleHandler) CreateSaleDetail(c *gin.Context) {
	var detail models.SaleDetail
	if !bindJSON(c, h.log, &detail) {
		return
	}
	detail.ID = 0

	if err := h.service.CreateSaleDetail(c.Request.Context(), &detail); err != nil {
		respondError(c, h.log, err, "Sale detail not found")
		return
	}
	c.JSON(http.StatusCreated, detail)
}

func (h *SaleHandler) ListSaleDetails(c *gin.Context) {
	details, err := h.service.ListSaleDetails(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Sale detail not found")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *SaleHandler) GetSaleDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	detail, err := h.service.GetSaleDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Sale detail not found")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *SaleHandler) UpdateSaleDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var detail models.SaleDetail
	if !bindJSON(c, h.log, &detail) {
		return
	}
	detail.ID = id

	if err := h.service.UpdateSaleDetail(c.Request.Context(), &detail); err != nil {
		respondError(c, h.log, err, "Sale detail not found")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *SaleHandler) DeleteSaleDetail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSaleDetail(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Sale detail not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale detail deleted"})
}
