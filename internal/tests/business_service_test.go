package tests

import (
	"context"
	"testing"

	"menubyte/internal/domain"
	"menubyte/internal/mocks"
	"menubyte/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBusinessService(store *mocks.Store) (*service.BusinessService, *mocks.MenuCache, *mocks.CatalogPublisher) {
	tx := &mocks.PassthroughTx{Store: store}
	cache := new(mocks.MenuCache)
	publisher := new(mocks.CatalogPublisher)
	subscriptions := service.NewSubscriptionService(store, tx)
	return service.NewBusinessService(store, tx, subscriptions, cache, publisher), cache, publisher
}

func TestBusinessService_CreateBusiness(t *testing.T) {
	mockStore := new(mocks.Store)
	svc, _, publisher := newBusinessService(mockStore)

	mockStore.On("ListSubscriptionsByUser", int64(1)).Return(nil, nil).Once()
	mockStore.On("GetUser", int64(1)).Return(&domain.User{ID: 1, Username: "asha"}, nil).Once()
	mockStore.On("InsertBusiness", mock.AnythingOfType("*domain.Business")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Business).ID = 2
		}).Return(nil).Once()
	mockStore.On("InsertMenu", mock.AnythingOfType("*domain.Menu")).
		Run(func(args mock.Arguments) {
			menu := args.Get(0).(*domain.Menu)
			menu.ID = 10
			assert.Equal(t, int64(2), menu.BusinessID)
			assert.Equal(t, "Default", menu.MenuName)
		}).Return(nil).Once()
	mockStore.On("InsertSubscription", mock.AnythingOfType("*domain.BusinessMaster")).
		Run(func(args mock.Arguments) {
			bm := args.Get(0).(*domain.BusinessMaster)
			assert.Equal(t, domain.SubscriptionTrial, bm.SubscriptionType)
			assert.Equal(t, int64(2), bm.BusinessID)
		}).Return(nil).Once()
	publisher.On("PublishCatalogEvent", mock.Anything, mock.AnythingOfType("domain.CatalogEvent")).Return(nil).Once()

	business, err := svc.CreateBusiness(context.Background(), 1, &domain.Business{BusinessName: "Chai Point"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), business.ID)
	assert.Equal(t, int64(1), business.UserID)
	assert.Equal(t, domain.BusinessTypeRestaurant, business.BusinessType, "business type defaults to RESTAURANT")
	mockStore.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestBusinessService_CreateBusiness_TrialLimit(t *testing.T) {
	mockStore := new(mocks.Store)
	svc, _, publisher := newBusinessService(mockStore)

	mockStore.On("ListSubscriptionsByUser", int64(1)).
		Return([]domain.BusinessMaster{{ID: 5, SubscriptionType: domain.SubscriptionTrial}}, nil).Once()

	_, err := svc.CreateBusiness(context.Background(), 1, &domain.Business{BusinessName: "Second Venture"})

	assert.ErrorIs(t, err, domain.ErrSubscriptionLimit)
	mockStore.AssertNotCalled(t, "InsertBusiness", mock.Anything)
	publisher.AssertNotCalled(t, "PublishCatalogEvent", mock.Anything, mock.Anything)
	mockStore.AssertExpectations(t)
}

func TestBusinessService_CreateBusiness_EmptyName(t *testing.T) {
	mockStore := new(mocks.Store)
	svc, _, _ := newBusinessService(mockStore)

	_, err := svc.CreateBusiness(context.Background(), 1, &domain.Business{BusinessName: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockStore.AssertNotCalled(t, "ListSubscriptionsByUser", mock.Anything)
}

func TestBusinessService_UpdateBusiness(t *testing.T) {
	mockStore := new(mocks.Store)
	svc, _, _ := newBusinessService(mockStore)

	mockStore.On("GetBusiness", int64(2)).
		Return(&domain.Business{ID: 2, UserID: 1, BusinessName: "Chai Point", BusinessType: domain.BusinessTypeCafe}, nil).Once()
	mockStore.On("UpdateBusiness", mock.AnythingOfType("*domain.Business")).Return(nil).Once()

	updated, err := svc.UpdateBusiness(context.Background(), 2, &domain.Business{
		BusinessName: "Chai Point Deluxe",
		Tagline:      "Fresh every hour",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Chai Point Deluxe", updated.BusinessName)
	assert.Equal(t, "Fresh every hour", updated.Tagline)
	assert.Equal(t, domain.BusinessTypeCafe, updated.BusinessType, "business type is not editable")
	mockStore.AssertExpectations(t)
}

func TestBusinessService_DeleteBusiness(t *testing.T) {
	mockStore := new(mocks.Store)
	svc, cache, _ := newBusinessService(mockStore)

	mockStore.On("GetBusiness", int64(2)).Return(&domain.Business{ID: 2}, nil).Once()
	mockStore.On("DeleteBusiness", int64(2)).Return(int64(1), nil).Once()
	cache.On("MenuKey", int64(2)).Return("menu:business:2")
	cache.On("Invalidate", mock.Anything, "menu:business:2").Return(nil).Once()

	err := svc.DeleteBusiness(context.Background(), 2)

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestBusinessService_DeleteBusiness_NotFound(t *testing.T) {
	mockStore := new(mocks.Store)
	svc, cache, _ := newBusinessService(mockStore)

	mockStore.On("GetBusiness", int64(99)).Return(nil, domain.ErrNotFound).Once()

	err := svc.DeleteBusiness(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}
