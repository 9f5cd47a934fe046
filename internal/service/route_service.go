package service

import (
	"context"

	"github.com/Estefano-cmd/impulsoApi/internal/cache"
	"github.com/Estefano-cmd/impulsoApi/internal/messaging"
	"github.com/Estefano-cmd/impulsoApi/internal/models"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"

	"github.com/sirupsen/logrus"
)

// RouteService manages routes, their UVs and their assignment to users
type RouteService struct {
	routes repository.RouteRepository
	cache  cache.RouteDetailCache
	events messaging.Publisher
	log    *logrus.Logger
}

// NewRouteService creates a new route service
func NewRouteService(routes repository.RouteRepository, detailCache cache.RouteDetailCache, events messaging.Publisher, log *logrus.Logger) *RouteService {
	return &RouteService{
		routes: routes,
		cache:  detailCache,
		events: events,
		log:    log,
	}
}

func (s *RouteService) CreateRoute(ctx context.Context, route *models.Route) error {
	if err := validate(route); err != nil {
		return err
	}
	return fromStore(s.routes.CreateRoute(ctx, route))
}

func (s *RouteService) ListRoutes(ctx context.Context) ([]models.Route, error) {
	routes, err := s.routes.ListRoutes(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return routes, nil
}

func (s *RouteService) GetRoute(ctx context.Context, id uint) (*models.Route, error) {
	route, err := s.routes.FindRouteByID(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return route, nil
}

// UpdateRoute replaces the name and description of a route
func (s *RouteService) UpdateRoute(ctx context.Context, route *models.Route) error {
	if err := validate(route); err != nil {
		return err
	}
	if err := s.routes.UpdateRoute(ctx, route); err != nil {
		return fromStore(err)
	}
	s.invalidateRoute(ctx, route.ID)
	return nil
}

// DeleteRoute removes a route. Assignments and memberships are left to the store.
func (s *RouteService) DeleteRoute(ctx context.Context, id uint) error {
	users := s.usersOfRoute(ctx, id)
	if err := s.routes.DeleteRoute(ctx, id); err != nil {
		return fromStore(err)
	}
	s.cache.Invalidate(ctx, users...)
	return nil
}

// AssignRouteToUser records that the user covers the route. Neither id is
// checked for existence and duplicates are allowed.
func (s *RouteService) AssignRouteToUser(ctx context.Context, userID, routeID uint) (*models.UserRoute, error) {
	assignment := &models.UserRoute{UserID: userID, RouteID: routeID}
	if err := s.routes.CreateUserRoute(ctx, assignment); err != nil {
		return nil, fromStore(err)
	}

	s.cache.Invalidate(ctx, userID)
	s.events.Publish(ctx, messaging.EventRouteAssigned, messaging.Aggregate("user", userID), assignment)
	s.log.WithFields(logrus.Fields{"user_id": userID, "route_id": routeID}).Info("Route assigned to user")
	return assignment, nil
}

// RemoveRouteFromUser deletes every assignment of the route to the user.
// It returns ErrNotFound when there was none.
func (s *RouteService) RemoveRouteFromUser(ctx context.Context, userID, routeID uint) error {
	if err := s.routes.DeleteUserRoute(ctx, userID, routeID); err != nil {
		return fromStore(err)
	}

	s.cache.Invalidate(ctx, userID)
	s.events.Publish(ctx, messaging.EventRouteRemoved, messaging.Aggregate("user", userID),
		models.UserRoute{UserID: userID, RouteID: routeID})
	s.log.WithFields(logrus.Fields{"user_id": userID, "route_id": routeID}).Info("Route removed from user")
	return nil
}

// GetRouteDetails returns every route assigned to the user with its UVs,
// ordered by route id. It returns ErrNotFound when the user has no route
// with at least one UV.
func (s *RouteService) GetRouteDetails(ctx context.Context, userID uint) ([]models.RouteDetail, error) {
	if details, ok := s.cache.Get(ctx, userID); ok && len(details) > 0 {
		return details, nil
	}

	rows, err := s.routes.ListRouteDetailRows(ctx, userID)
	if err != nil {
		return nil, fromStore(err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	details := FoldRouteDetailRows(rows)
	s.cache.Set(ctx, userID, details)
	return details, nil
}

// GetRouteDetail returns the route with the lowest id among the user's routes
func (s *RouteService) GetRouteDetail(ctx context.Context, userID uint) (*models.RouteDetail, error) {
	details, err := s.GetRouteDetails(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrNotFound
	}
	return &details[0], nil
}

// AddUVToRoute makes the UV part of the route
func (s *RouteService) AddUVToRoute(ctx context.Context, routeID, uvID uint) (*models.RouteUV, error) {
	membership := &models.RouteUV{RouteID: routeID, UVID: uvID}
	if err := s.routes.CreateRouteUV(ctx, membership); err != nil {
		return nil, fromStore(err)
	}

	s.invalidateRoute(ctx, routeID)
	s.events.Publish(ctx, messaging.EventRouteUVAdded, messaging.Aggregate("route", routeID), membership)
	return membership, nil
}

// RemoveUVFromRoute removes the UV from the route. It returns ErrNotFound
// when the UV was not part of it.
func (s *RouteService) RemoveUVFromRoute(ctx context.Context, routeID, uvID uint) error {
	if err := s.routes.DeleteRouteUV(ctx, routeID, uvID); err != nil {
		return fromStore(err)
	}

	s.invalidateRoute(ctx, routeID)
	s.events.Publish(ctx, messaging.EventRouteUVRemoved, messaging.Aggregate("route", routeID),
		models.RouteUV{RouteID: routeID, UVID: uvID})
	return nil
}

func (s *RouteService) CreateUV(ctx context.Context, uv *models.UV) error {
	return fromStore(s.routes.CreateUV(ctx, uv))
}

func (s *RouteService) ListUVs(ctx context.Context) ([]models.UV, error) {
	uvs, err := s.routes.ListUVs(ctx)
	if err != nil {
		return nil, fromStore(err)
	}
	return uvs, nil
}

// invalidateRoute drops the cached details of every user assigned to the route
func (s *RouteService) invalidateRoute(ctx context.Context, routeID uint) {
	s.cache.Invalidate(ctx, s.usersOfRoute(ctx, routeID)...)
}

func (s *RouteService) usersOfRoute(ctx context.Context, routeID uint) []uint {
	users, err := s.routes.ListUserIDsByRoute(ctx, routeID)
	if err != nil {
		s.log.WithError(err).WithField("route_id", routeID).Warn("Could not list users of route for cache invalidation")
		return nil
	}
	return users
}
