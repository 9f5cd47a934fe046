package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Estefano-cmd/impulsoApi/internal/messaging"
	"github.com/Estefano-cmd/impulsoApi/internal/models"
	"github.com/Estefano-cmd/impulsoApi/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeFixture struct {
	repo   *MockRepository
	cache  *MockRouteDetailCache
	events *MockPublisher
	svc    *RouteService
}

func newRouteFixture() *routeFixture {
	f := &routeFixture{
		repo:   new(MockRepository),
		cache:  new(MockRouteDetailCache),
		events: new(MockPublisher),
	}
	f.svc = NewRouteService(f.repo, f.cache, f.events, quietLogger())
	return f
}

func (f *routeFixture) assertExpectations(t *testing.T) {
	f.repo.AssertExpectations(t)
	f.cache.AssertExpectations(t)
	f.events.AssertExpectations(t)
}

func TestAssignRouteToUser(t *testing.T) {
	f := newRouteFixture()
	f.repo.On("CreateUserRoute", mock.Anything, mock.AnythingOfType("*models.UserRoute")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.UserRoute).ID = 11
		}).
		Return(nil)
	f.cache.On("Invalidate", mock.Anything, []uint{7}).Return()
	f.events.On("Publish", mock.Anything, messaging.EventRouteAssigned, "user:7", mock.Anything).Return()

	assignment, err := f.svc.AssignRouteToUser(context.Background(), 7, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(11), assignment.ID)
	assert.Equal(t, uint(7), assignment.UserID)
	assert.Equal(t, uint(3), assignment.RouteID)

	f.assertExpectations(t)
}

func TestAssignRouteToUserStorageFailure(t *testing.T) {
	f := newRouteFixture()
	f.repo.On("CreateUserRoute", mock.Anything, mock.Anything).
		Return(errors.New(`insert or update on table "user_routes" violates foreign key constraint`))

	_, err := f.svc.AssignRouteToUser(context.Background(), 7, 999)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Contains(t, err.Error(), "violates foreign key constraint")
	f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRemoveRouteFromUserTwice(t *testing.T) {
	f := newRouteFixture()
	ctx := context.Background()
	f.repo.On("DeleteUserRoute", mock.Anything, uint(7), uint(3)).Return(nil).Once()
	f.repo.On("DeleteUserRoute", mock.Anything, uint(7), uint(3)).Return(repository.ErrNotFound).Once()
	f.cache.On("Invalidate", mock.Anything, []uint{7}).Return().Once()
	f.events.On("Publish", mock.Anything, messaging.EventRouteRemoved, "user:7", mock.Anything).Return().Once()

	require.NoError(t, f.svc.RemoveRouteFromUser(ctx, 7, 3))
	assert.ErrorIs(t, f.svc.RemoveRouteFromUser(ctx, 7, 3), ErrNotFound)

	f.assertExpectations(t)
}

func TestRemoveRouteFromUserNeverAssigned(t *testing.T) {
	f := newRouteFixture()
	f.repo.On("DeleteUserRoute", mock.Anything, uint(8), uint(3)).Return(repository.ErrNotFound)

	assert.ErrorIs(t, f.svc.RemoveRouteFromUser(context.Background(), 8, 3), ErrNotFound)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestGetRouteDetailsFoldsAndCaches(t *testing.T) {
	f := newRouteFixture()
	rows := []models.RouteDetailRow{
		{RouteID: 1, RouteName: "North", UVID: 2, UV: 10},
		{RouteID: 1, RouteName: "North", UVID: 3, UV: 11},
		{RouteID: 2, RouteName: "East", UVID: 4, UV: 12},
	}
	expected := []models.RouteDetail{
		{RouteID: 1, RouteName: "North", UVs: []int{10, 11}},
		{RouteID: 2, RouteName: "East", UVs: []int{12}},
	}
	f.cache.On("Get", mock.Anything, uint(5)).Return(nil, false)
	f.repo.On("ListRouteDetailRows", mock.Anything, uint(5)).Return(rows, nil)
	f.cache.On("Set", mock.Anything, uint(5), expected).Return()

	details, err := f.svc.GetRouteDetails(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, expected, details)

	f.assertExpectations(t)
}

func TestGetRouteDetailReturnsLowestRoute(t *testing.T) {
	f := newRouteFixture()
	cached := []models.RouteDetail{
		{RouteID: 1, RouteName: "North", UVs: []int{10}},
		{RouteID: 2, RouteName: "East", UVs: []int{12}},
	}
	f.cache.On("Get", mock.Anything, uint(5)).Return(cached, true)

	detail, err := f.svc.GetRouteDetail(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "North", detail.RouteName)

	f.repo.AssertNotCalled(t, "ListRouteDetailRows", mock.Anything, mock.Anything)
}

func TestGetRouteDetailEmptyCacheEntryIsMiss(t *testing.T) {
	for name, cached := range map[string][]models.RouteDetail{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			f := newRouteFixture()
			rows := []models.RouteDetailRow{{RouteID: 3, RouteName: "South", UVID: 2, UV: 10}}
			f.cache.On("Get", mock.Anything, uint(5)).Return(cached, true)
			f.repo.On("ListRouteDetailRows", mock.Anything, uint(5)).Return(rows, nil)
			f.cache.On("Set", mock.Anything, uint(5), mock.Anything).Return()

			detail, err := f.svc.GetRouteDetail(context.Background(), 5)
			require.NoError(t, err)
			assert.Equal(t, uint(3), detail.RouteID)

			f.assertExpectations(t)
		})
	}
}

func TestGetRouteDetailEmptyCacheEntryNoRoutes(t *testing.T) {
	f := newRouteFixture()
	f.cache.On("Get", mock.Anything, uint(5)).Return([]models.RouteDetail{}, true)
	f.repo.On("ListRouteDetailRows", mock.Anything, uint(5)).Return([]models.RouteDetailRow{}, nil)

	detail, err := f.svc.GetRouteDetail(context.Background(), 5)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRouteDetailsNoRoutes(t *testing.T) {
	f := newRouteFixture()
	f.cache.On("Get", mock.Anything, uint(5)).Return(nil, false)
	f.repo.On("ListRouteDetailRows", mock.Anything, uint(5)).Return([]models.RouteDetailRow{}, nil)

	_, err := f.svc.GetRouteDetails(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddUVToRouteInvalidatesAssignedUsers(t *testing.T) {
	f := newRouteFixture()
	f.repo.On("CreateRouteUV", mock.Anything, &models.RouteUV{RouteID: 1, UVID: 2}).Return(nil)
	f.repo.On("ListUserIDsByRoute", mock.Anything, uint(1)).Return([]uint{5, 6}, nil)
	f.cache.On("Invalidate", mock.Anything, []uint{5, 6}).Return()
	f.events.On("Publish", mock.Anything, messaging.EventRouteUVAdded, "route:1", mock.Anything).Return()

	membership, err := f.svc.AddUVToRoute(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), membership.UVID)

	f.assertExpectations(t)
}

func TestRemoveUVFromRouteNotMember(t *testing.T) {
	f := newRouteFixture()
	f.repo.On("DeleteRouteUV", mock.Anything, uint(1), uint(9)).Return(repository.ErrNotFound)

	assert.ErrorIs(t, f.svc.RemoveUVFromRoute(context.Background(), 1, 9), ErrNotFound)
}

func TestCreateRouteRequiresName(t *testing.T) {
	f := newRouteFixture()

	err := f.svc.CreateRoute(context.Background(), &models.Route{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Name is required", validationErr.Message)
	f.repo.AssertNotCalled(t, "CreateRoute", mock.Anything, mock.Anything)
}

func TestDeleteRouteInvalidatesUsersAssignedBeforehand(t *testing.T) {
	f := newRouteFixture()
	f.repo.On("ListUserIDsByRoute", mock.Anything, uint(1)).Return([]uint{5}, nil)
	f.repo.On("DeleteRoute", mock.Anything, uint(1)).Return(nil)
	f.cache.On("Invalidate", mock.Anything, []uint{5}).Return()

	require.NoError(t, f.svc.DeleteRoute(context.Background(), 1))
	f.assertExpectations(t)
}
