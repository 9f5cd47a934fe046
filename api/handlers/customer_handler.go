package handlers

import (
	"net/http"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CustomerHandler handles customer requests
type CustomerHandler struct {
	service CustomerService
	log     *logrus.Logger
}

// NewCustomerHandler creates a new CustomerHandler instance
func NewCustomerHandler(svc CustomerService, log *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		log:     log,
	}
}

// GetCustomersByRoute lists the customers living in the UVs of the route
func (h *CustomerHandler) GetCustomersByRoute(c *gin.Context) {
	routeID, ok := paramID(c, "id_route")
	if !ok {
		return
	}

	customers, err := h.service.GetCustomersByRoute(c.Request.Context(), routeID)
	if err != nil {
		respondError(c, h.log, err, "No customers found for this route based on UV")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if !bindJSON(c, h.log, &customer) {
		return
	}
	customer.ID = 0

	if err := h.service.CreateCustomer(c.Request.Context(), &customer); err != nil {
		respondError(c, h.log, err, "Customer not found")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	customer, err := h.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer replaces every field of the customer in the path
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if !bindJSON(c, h.log, &customer) {
		return
	}
	customer.ID = id

	if err := h.service.UpdateCustomer(c.Request.Context(), &customer); err != nil {
		respondError(c, h.log, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCustomer(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
