package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menubyte/internal/domain"
)

// SubscriptionService is the trial gate and subscription record lifecycle.
type SubscriptionService struct {
	store Store
	tx    TxRunner
}

func NewSubscriptionService(store Store, tx TxRunner) *SubscriptionService {
	return &SubscriptionService{store: store, tx: tx}
}

// CheckBusinessCreationAllowed reports whether the user may register another
// business. The answer is advisory on its own; business creation re-runs the
// check inside its transaction and the TRIAL partial unique index closes the
// remaining race.
func (s *SubscriptionService) CheckBusinessCreationAllowed(ctx context.Context, userID int64) (bool, error) {
	if err := s.checkBusinessCreationTx(s.store, userID); err != nil {
		if errors.Is(err, domain.ErrSubscriptionLimit) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *SubscriptionService) checkBusinessCreationTx(store Store, userID int64) error {
	subscriptions, err := store.ListSubscriptionsByUser(userID)
	if err != nil {
		return err
	}
	if len(subscriptions) == 1 && subscriptions[0].SubscriptionType == domain.SubscriptionTrial {
		return fmt.Errorf("user %d: %w", userID, domain.ErrSubscriptionLimit)
	}
	return nil
}

// RegisterDefaultSubscription creates the TRIAL record a fresh business
// starts on: active, registered today, ending in a week, nothing paid.
func (s *SubscriptionService) RegisterDefaultSubscription(ctx context.Context, businessID, userID int64) (*domain.BusinessMaster, error) {
	var subscription *domain.BusinessMaster
	err := s.tx.InTx(ctx, func(store Store) error {
		business, err := store.GetBusiness(businessID)
		if err != nil {
			return err
		}
		user, err := store.GetUser(userID)
		if err != nil {
			return err
		}
		subscription, err = s.registerDefaultTx(store, business, user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return subscription, nil
}

func (s *SubscriptionService) registerDefaultTx(store Store, business *domain.Business, user *domain.User) (*domain.BusinessMaster, error) {
	now := time.Now()
	subscription := &domain.BusinessMaster{
		UserID:             user.ID,
		BusinessID:         business.ID,
		SubscriptionType:   domain.SubscriptionTrial,
		SubscriptionStatus: domain.SubscriptionActive,
		RegisterDate:       now,
		EndDate:            now.Add(domain.TrialPeriod),
		AmountPaid:         0,
	}
	if err := store.InsertSubscription(subscription); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			return nil, fmt.Errorf("user %d: %w", user.ID, domain.ErrSubscriptionLimit)
		}
		return nil, err
	}
	return subscription, nil
}

// ApplySubscriptionUpdate is invoked by the payment collaborator after it has
// verified payment: extends the end date and records the paid tier.
func (s *SubscriptionService) ApplySubscriptionUpdate(ctx context.Context, businessID int64, req domain.SubscriptionUpdateRequest) (*domain.BusinessMaster, error) {
	if req.PlanType == "" || req.TenureInMonths <= 0 {
		return nil, fmt.Errorf("%w: planType and a positive tenureInMonths are required", domain.ErrValidation)
	}
	if req.AmountPaid < 0 {
		return nil, fmt.Errorf("%w: amountPaid must be non-negative", domain.ErrValidation)
	}

	var subscription *domain.BusinessMaster
	err := s.tx.InTx(ctx, func(store Store) error {
		existing, err := store.GetSubscriptionByBusiness(businessID)
		if err != nil {
			return err
		}
		existing.SubscriptionType = req.PlanType
		existing.SubscriptionStatus = domain.SubscriptionActive
		existing.EndDate = existing.EndDate.AddDate(0, req.TenureInMonths, 0)
		existing.AmountPaid = req.AmountPaid
		if err := store.UpdateSubscription(existing); err != nil {
			return err
		}
		subscription = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return subscription, nil
}

func (s *SubscriptionService) ListUserSubscriptions(ctx context.Context, userID int64) ([]domain.BusinessMaster, error) {
	return s.store.ListSubscriptionsByUser(userID)
}

var _ SubscriptionServiceInterface = (*SubscriptionService)(nil)
