package repository

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/models"
)

const routeDetailRowsQuery = `SELECT DISTINCT r.id AS route_id, r.name AS route_name, r.description,
	u.id AS uv_id, u.uv
FROM user_routes ur
JOIN routes r ON r.id = ur.id_route
JOIN route_uvs ru ON ru.id_route = r.id
JOIN uvs u ON u.id = ru.id_uv
WHERE ur.id_user = ?
ORDER BY r.id, u.id`

func (r *repo) CreateRoute(ctx context.Context, route *models.Route) error {
	return r.create(ctx, route)
}

func (r *repo) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	if err := r.list(ctx, &routes); err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *repo) FindRouteByID(ctx context.Context, id uint) (*models.Route, error) {
	var route models.Route
	if err := r.first(ctx, &route, id); err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *repo) UpdateRoute(ctx context.Context, route *models.Route) error {
	return r.replace(ctx, route, route.ID, "name", "description")
}

func (r *repo) DeleteRoute(ctx context.Context, id uint) error {
	return r.deleteWhere(ctx, &models.Route{}, "id = ?", id)
}

// CreateUserRoute inserts an assignment without checking that user or route exist
func (r *repo) CreateUserRoute(ctx context.Context, assignment *models.UserRoute) error {
	return r.create(ctx, assignment)
}

// DeleteUserRoute removes every assignment of the route to the user
func (r *repo) DeleteUserRoute(ctx context.Context, userID, routeID uint) error {
	return r.deleteWhere(ctx, &models.UserRoute{}, "id_user = ? AND id_route = ?", userID, routeID)
}

// ListRouteDetailRows returns one row per (route, UV) pair assigned to the user
func (r *repo) ListRouteDetailRows(ctx context.Context, userID uint) ([]models.RouteDetailRow, error) {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var rows []models.RouteDetailRow
	if err := gormDB.Raw(routeDetailRowsQuery, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListUserIDsByRoute returns the users the route is assigned to
func (r *repo) ListUserIDsByRoute(ctx context.Context, routeID uint) ([]uint, error) {
	gormDB, err := r.conn(ctx)
	if err != nil {
		return nil, err
	}

	var ids []uint
	err = gormDB.Model(&models.UserRoute{}).
		Where("id_route = ?", routeID).
		Distinct().
		Pluck("id_user", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repo) CreateUV(ctx context.Context, uv *models.UV) error {
	return r.create(ctx, uv)
}

func (r *repo) ListUVs(ctx context.Context) ([]models.UV, error) {
	var uvs []models.UV
	if err := r.list(ctx, &uvs); err != nil {
		return nil, err
	}
	return uvs, nil
}

// CreateRouteUV adds a UV to a route
func (r *repo) CreateRouteUV(ctx context.Context, membership *models.RouteUV) error {
	return r.create(ctx, membership)
}

// DeleteRouteUV removes a UV from a route
func (r *repo) DeleteRouteUV(ctx context.Context, routeID, uvID uint) error {
	return r.deleteWhere(ctx, &models.RouteUV{}, "id_route = ? AND id_uv = ?", routeID, uvID)
}
