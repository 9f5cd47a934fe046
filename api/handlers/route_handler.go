package handlers

import (
	"net/http"

	"github.com/Estefano-cmd/impulsoApi/config"
	"github.com/Estefano-cmd/impulsoApi/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RouteHandler handles routes, their UVs and user assignments
type RouteHandler struct {
	service    RouteService
	detailMode string
	log        *logrus.Logger
}

// NewRouteHandler creates a new RouteHandler instance. detailMode selects
// whether the route detail endpoint returns one route or all of them.
func NewRouteHandler(svc RouteService, detailMode string, log *logrus.Logger) *RouteHandler {
	return &RouteHandler{
		service:    svc,
		detailMode: detailMode,
		log:        log,
	}
}

type assignRouteRequest struct {
	RouteID uint `json:"id_route" binding:"required"`
}

type addUVRequest struct {
	UVID uint `json:"id_uv" binding:"required"`
}

func (h *RouteHandler) CreateRoute(c *gin.Context) {
	var route models.Route
	if !bindJSON(c, h.log, &route) {
		return
	}
	route.ID = 0

	if err := h.service.CreateRoute(c.Request.Context(), &route); err != nil {
		respondError(c, h.log, err, "Route not found")
		return
	}

	c.JSON(http.StatusCreated, route)
}

func (h *RouteHandler) ListRoutes(c *gin.Context) {
	routes, err := h.service.ListRoutes(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "Route not found")
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *RouteHandler) GetRoute(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	route, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Route not found")
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) UpdateRoute(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var route models.Route
	if !bindJSON(c, h.log, &route) {
		return
	}
	route.ID = id

	if err := h.service.UpdateRoute(c.Request.Context(), &route); err != nil {
		respondError(c, h.log, err, "Route not found")
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *RouteHandler) DeleteRoute(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteRoute(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err, "Route not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route deleted"})
}

// AssignRouteToUser assigns the route in the body to the user in the path
func (h *RouteHandler) AssignRouteToUser(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req assignRouteRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	assignment, err := h.service.AssignRouteToUser(c.Request.Context(), userID, req.RouteID)
	if err != nil {
		respondError(c, h.log, err, "User or route not found")
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// RemoveRouteFromUser removes the route in the path from the user in the path
func (h *RouteHandler) RemoveRouteFromUser(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}
	routeID, ok := paramID(c, "id_route")
	if !ok {
		return
	}

	if err := h.service.RemoveRouteFromUser(c.Request.Context(), userID, routeID); err != nil {
		respondError(c, h.log, err, "User or route not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route removed from user"})
}

// GetRouteDetail returns the routes of the user in the path with their UVs
func (h *RouteHandler) GetRouteDetail(c *gin.Context) {
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if h.detailMode == config.RouteDetailAll {
		details, err := h.service.GetRouteDetails(c.Request.Context(), userID)
		if err != nil {
			respondError(c, h.log, err, "No routes found for this user")
			return
		}
		c.JSON(http.StatusOK, details)
		return
	}

	detail, err := h.service.GetRouteDetail(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err, "No routes found for this user")
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *RouteHandler) AddUVToRoute(c *gin.Context) {
	routeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req addUVRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	membership, err := h.service.AddUVToRoute(c.Request.Context(), routeID, req.UVID)
	if err != nil {
		respondError(c, h.log, err, "Route or UV not found")
		return
	}
	c.JSON(http.StatusOK, membership)
}

func (h *RouteHandler) RemoveUVFromRoute(c *gin.Context) {
	routeID, ok := paramID(c, "id")
	if !ok {
		return
	}
	uvID, ok := paramID(c, "id_uv")
	if !ok {
		return
	}

	if err := h.service.RemoveUVFromRoute(c.Request.Context(), routeID, uvID); err != nil {
		respondError(c, h.log, err, "Route or UV not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "UV removed from route"})
}

func (h *RouteHandler) CreateUV(c *gin.Context) {
	var uv models.UV
	if !bindJSON(c, h.log, &uv) {
		return
	}
	uv.ID = 0

	if err := h.service.CreateUV(c.Request.Context(), &uv); err != nil {
		respondError(c, h.log, err, "UV not found")
		return
	}
	c.JSON(http.StatusCreated, uv)
}

func (h *RouteHandler) ListUVs(c *gin.Context) {
	uvs, err := h.service.ListUVs(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "UV not found")
		return
	}
	c.JSON(http.StatusOK, uvs)
}
