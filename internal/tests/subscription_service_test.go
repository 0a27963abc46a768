package tests

import (
	"context"
	"testing"
	"time"

	"menubyte/internal/domain"
	"menubyte/internal/mocks"
	"menubyte/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubscriptionService_CheckBusinessCreationAllowed(t *testing.T) {
	tests := []struct {
		name          string
		subscriptions []domain.BusinessMaster
		wantAllowed   bool
	}{
		{
			name:          "no subscriptions yet",
			subscriptions: nil,
			wantAllowed:   true,
		},
		{
			name: "single trial blocks a second business",
			subscriptions: []domain.BusinessMaster{
				{ID: 1, SubscriptionType: domain.SubscriptionTrial},
			},
			wantAllowed: false,
		},
		{
			name: "single paid plan allows more",
			subscriptions: []domain.BusinessMaster{
				{ID: 1, SubscriptionType: domain.SubscriptionMonthly},
			},
			wantAllowed: true,
		},
		{
			name: "multiple subscriptions allow more",
			subscriptions: []domain.BusinessMaster{
				{ID: 1, SubscriptionType: domain.SubscriptionTrial},
				{ID: 2, SubscriptionType: domain.SubscriptionYearly},
			},
			wantAllowed: true,
		},
		{
			// The gate passes here; registering the new default TRIAL is what
			// trips the one-concurrent-trial index and reports the limit.
			name: "upgraded plan alongside an open trial",
			subscriptions: []domain.BusinessMaster{
				{ID: 1, SubscriptionType: domain.SubscriptionMonthly},
				{ID: 2, SubscriptionType: domain.SubscriptionTrial},
			},
			wantAllowed: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := new(mocks.Store)
			mockStore.On("ListSubscriptionsByUser", int64(1)).Return(testCase.subscriptions, nil).Once()
			svc := service.NewSubscriptionService(mockStore, &mocks.PassthroughTx{Store: mockStore})

			allowed, err := svc.CheckBusinessCreationAllowed(context.Background(), 1)

			assert.NoError(t, err)
			assert.Equal(t, testCase.wantAllowed, allowed)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestSubscriptionService_RegisterDefaultSubscription(t *testing.T) {
	mockStore := new(mocks.Store)
	mockStore.On("GetBusiness", int64(2)).Return(&domain.Business{ID: 2, UserID: 1}, nil).Once()
	mockStore.On("GetUser", int64(1)).Return(&domain.User{ID: 1}, nil).Once()
	mockStore.On("InsertSubscription", mock.AnythingOfType("*domain.BusinessMaster")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.BusinessMaster).ID = 5
		}).Return(nil).Once()
	svc := service.NewSubscriptionService(mockStore, &mocks.PassthroughTx{Store: mockStore})

	subscription, err := svc.RegisterDefaultSubscription(context.Background(), 2, 1)

	assert.NoError(t, err)
	assert.Equal(t, domain.SubscriptionTrial, subscription.SubscriptionType)
	assert.Equal(t, domain.SubscriptionActive, subscription.SubscriptionStatus)
	assert.Equal(t, 0.0, subscription.AmountPaid)
	assert.Equal(t, domain.TrialPeriod, subscription.EndDate.Sub(subscription.RegisterDate))
	mockStore.AssertExpectations(t)
}

func TestSubscriptionService_RegisterDefault_LostTrialRace(t *testing.T) {
	mockStore := new(mocks.Store)
	mockStore.On("GetBusiness", int64(2)).Return(&domain.Business{ID: 2, UserID: 1}, nil).Once()
	mockStore.On("GetUser", int64(1)).Return(&domain.User{ID: 1}, nil).Once()
	mockStore.On("InsertSubscription", mock.AnythingOfType("*domain.BusinessMaster")).
		Return(domain.ErrUniqueViolation).Once()
	svc := service.NewSubscriptionService(mockStore, &mocks.PassthroughTx{Store: mockStore})

	_, err := svc.RegisterDefaultSubscription(context.Background(), 2, 1)

	assert.ErrorIs(t, err, domain.ErrSubscriptionLimit)
	mockStore.AssertExpectations(t)
}

func TestSubscriptionService_ApplySubscriptionUpdate(t *testing.T) {
	registered := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	trialEnd := registered.Add(domain.TrialPeriod)

	tests := []struct {
		name         string
		req          domain.SubscriptionUpdateRequest
		prepareMocks func(*mocks.Store)
		wantErr      error
		wantEnd      time.Time
	}{
		{
			name: "monthly extension from trial end",
			req:  domain.SubscriptionUpdateRequest{PlanType: domain.SubscriptionMonthly, TenureInMonths: 3, AmountPaid: 299},
			prepareMocks: func(m *mocks.Store) {
				m.On("GetSubscriptionByBusiness", int64(2)).
					Return(&domain.BusinessMaster{
						ID: 5, BusinessID: 2, UserID: 1,
						SubscriptionType:   domain.SubscriptionTrial,
						SubscriptionStatus: domain.SubscriptionActive,
						RegisterDate:       registered,
						EndDate:            trialEnd,
					}, nil).Once()
				m.On("UpdateSubscription", mock.AnythingOfType("*domain.BusinessMaster")).Return(nil).Once()
			},
			wantEnd: trialEnd.AddDate(0, 3, 0),
		},
		{
			name:         "missing plan type",
			req:          domain.SubscriptionUpdateRequest{TenureInMonths: 3},
			prepareMocks: func(m *mocks.Store) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name:         "non-positive tenure",
			req:          domain.SubscriptionUpdateRequest{PlanType: domain.SubscriptionMonthly, TenureInMonths: 0},
			prepareMocks: func(m *mocks.Store) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name:         "negative amount",
			req:          domain.SubscriptionUpdateRequest{PlanType: domain.SubscriptionYearly, TenureInMonths: 12, AmountPaid: -1},
			prepareMocks: func(m *mocks.Store) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name: "no subscription on record",
			req:  domain.SubscriptionUpdateRequest{PlanType: domain.SubscriptionMonthly, TenureInMonths: 1, AmountPaid: 99},
			prepareMocks: func(m *mocks.Store) {
				m.On("GetSubscriptionByBusiness", int64(2)).Return(nil, domain.ErrNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := new(mocks.Store)
			testCase.prepareMocks(mockStore)
			svc := service.NewSubscriptionService(mockStore, &mocks.PassthroughTx{Store: mockStore})

			subscription, err := svc.ApplySubscriptionUpdate(context.Background(), 2, testCase.req)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testCase.req.PlanType, subscription.SubscriptionType)
				assert.Equal(t, domain.SubscriptionActive, subscription.SubscriptionStatus)
				assert.Equal(t, testCase.req.AmountPaid, subscription.AmountPaid)
				assert.True(t, subscription.EndDate.Equal(testCase.wantEnd))
			}
			mockStore.AssertExpectations(t)
		})
	}
}
