package handlers

import (
	"net/http"

	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RoleHandler handles role requests
type RoleHandler struct {
	service RoleService
	log     *logrus.Logger
}

// NewRoleHandler creates a new RoleHandler instance
func NewRoleHandler(svc RoleService, log *logrus.Logger) *RoleHandler {
	return &RoleHandler{service: svc, log: log}
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	var role models.Role
	if !bindJSON(c, h.log, &role) {
		return
	}
	role.ID = 0

	if err := h.service.CreateRole(c.Request.Context(), &role); err != nil {
		respondError(c, h.log, err, "Role not found")
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Role not found")
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) GetRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	role, err := h.service.GetRole(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Role not found")
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var role models.Role
	if !bindJSON(c, h.log, &role) {
		return
	}
	role.ID = id

	if err := h.service.UpdateRole(c.Request.Context(), &role); err != nil {
		respondError(c, h.log, err, "Role not found")
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteRole(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Role not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role deleted"})
}

// ProductHandler handles product requests
type ProductHandler struct {
	service ProductService
	log     *logrus.Logger
}

// NewProductHandler creates a new ProductHandler instance
func NewProductHandler(svc ProductService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{service: svc, log: log}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if !bindJSON(c, h.log, &product) {
		return
	}
	product.ID = 0

	if err := h.service.CreateProduct(c.Request.Context(), &product); err != nil {
		respondError(c, h.log, err, "Product not found")
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var product models.Product
	if !bindJSON(c, h.log, &product) {
		return
	}
	product.ID = id

	if err := h.service.UpdateProduct(c.Request.Context(), &product); err != nil {
		respondError(c, h.log, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Product not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
