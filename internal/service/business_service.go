package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"menubyte/internal/domain"
)

// BusinessService creates and manages tenant businesses. Creation runs the
// trial gate, the business insert, the default menu and the default
// subscription record in one unit of work.
type BusinessService struct {
	store         Store
	tx            TxRunner
	subscriptions *SubscriptionService
	cache         MenuCache
	publisher     CatalogPublisher
}

func NewBusinessService(store Store, tx TxRunner, subscriptions *SubscriptionService, cache MenuCache, publisher CatalogPublisher) *BusinessService {
	return &BusinessService{store: store, tx: tx, subscriptions: subscriptions, cache: cache, publisher: publisher}
}

func (s *BusinessService) CreateBusiness(ctx context.Context, userID int64, business *domain.Business) (*domain.Business, error) {
	if strings.TrimSpace(business.BusinessName) == "" {
		return nil, fmt.Errorf("%w: business name cannot be empty", domain.ErrValidation)
	}

	var menu *domain.Menu
	err := s.tx.InTx(ctx, func(store Store) error {
		if err := s.subscriptions.checkBusinessCreationTx(store, userID); err != nil {
			return err
		}

		user, err := store.GetUser(userID)
		if err != nil {
			return err
		}

		business.UserID = user.ID
		if business.BusinessType == "" {
			business.BusinessType = domain.BusinessTypeRestaurant
		}
		if err := store.InsertBusiness(business); err != nil {
			return err
		}

		menu = &domain.Menu{BusinessID: business.ID, MenuName: "Default"}
		if err := store.InsertMenu(menu); err != nil {
			return err
		}

		_, err = s.subscriptions.registerDefaultTx(store, business, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[menubyte] business %d (%s) created for user %d", business.ID, business.BusinessName, userID)
	if s.publisher != nil {
		_ = s.publisher.PublishCatalogEvent(ctx, domain.CatalogEvent{
			Type:       domain.EventBusinessCreated,
			BusinessID: business.ID,
			MenuID:     menu.ID,
			Timestamp:  time.Now(),
		})
	}
	return business, nil
}

func (s *BusinessService) GetBusiness(ctx context.Context, id int64) (*domain.Business, error) {
	return s.store.GetBusiness(id)
}

func (s *BusinessService) ListBusinessesByUser(ctx context.Context, userID int64) ([]domain.Business, error) {
	if _, err := s.store.GetUser(userID); err != nil {
		return nil, err
	}
	return s.store.ListBusinessesByUser(userID)
}

func (s *BusinessService) UpdateBusiness(ctx context.Context, id int64, business *domain.Business) (*domain.Business, error) {
	if strings.TrimSpace(business.BusinessName) == "" {
		return nil, fmt.Errorf("%w: business name cannot be empty", domain.ErrValidation)
	}

	var updated *domain.Business
	err := s.tx.InTx(ctx, func(store Store) error {
		existing, err := store.GetBusiness(id)
		if err != nil {
			return err
		}
		existing.BusinessName = business.BusinessName
		existing.BusinessLogo = business.BusinessLogo
		existing.Tagline = business.Tagline
		if err := store.UpdateBusiness(existing); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteBusiness removes the business; the menu, its categories, items,
// variants and the subscription record go with it via the cascades.
func (s *BusinessService) DeleteBusiness(ctx context.Context, id int64) error {
	err := s.tx.InTx(ctx, func(store Store) error {
		if _, err := store.GetBusiness(id); err != nil {
			return err
		}
		_, err := store.DeleteBusiness(id)
		return err
	})
	if err != nil {
		return err
	}

	log.Printf("[menubyte] business %d deleted", id)
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, s.cache.MenuKey(id))
	}
	return nil
}

var _ BusinessServiceInterface = (*BusinessService)(nil)
