package service

import (
	"context"
	"fmt"
	"log"

	"menubyte/internal/domain"
)

// MenuService assembles the customer-facing menu for one business and serves
// the QR code that points at it.
type MenuService struct {
	store Store
	cache MenuCache
	qr    QRGenerator
}

func NewMenuService(store Store, cache MenuCache, qr QRGenerator) *MenuService {
	return &MenuService{store: store, cache: cache, qr: qr}
}

// GetMenuForUserBusiness returns the assembled menu after verifying the user
// owns the business. Served from cache when possible.
func (s *MenuService) GetMenuForUserBusiness(ctx context.Context, businessID, userID int64) (*domain.MenuView, error) {
	business, err := s.store.GetBusiness(businessID)
	if err != nil {
		return nil, err
	}
	if business.UserID != userID {
		return nil, fmt.Errorf("%w: user %d does not own business %d",
			domain.ErrCrossTenantMismatch, userID, businessID)
	}

	if s.cache != nil {
		if view, err := s.cache.GetMenu(ctx, s.cache.MenuKey(businessID)); err == nil && view != nil {
			return view, nil
		}
	}

	menu, err := s.store.GetMenuByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	categories, err := s.store.ListCategoriesByMenu(menu.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListItemsByMenu(menu.ID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[int64][]domain.Item, len(categories))
	for _, item := range items {
		variants, err := s.store.ListVariantsByItem(item.ID)
		if err != nil {
			return nil, err
		}
		item.Variants = variants
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	view := &domain.MenuView{
		MenuID:       menu.ID,
		BusinessID:   business.ID,
		BusinessName: business.BusinessName,
		BusinessType: business.BusinessType,
		Categories:   make([]domain.MenuCategoryView, 0, len(categories)),
	}
	for _, category := range categories {
		view.Categories = append(view.Categories, domain.MenuCategoryView{
			Category: category,
			Items:    byCategory[category.ID],
		})
	}

	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, s.cache.MenuKey(businessID), view); err != nil {
			log.Printf("[menubyte] failed to cache menu for business %d: %v", businessID, err)
		}
	}
	return view, nil
}

// MenuQRCode renders the published menu link for a business as a PNG.
func (s *MenuService) MenuQRCode(ctx context.Context, businessID int64) ([]byte, error) {
	if _, err := s.store.GetBusiness(businessID); err != nil {
		return nil, err
	}
	return s.qr.Generate(businessID)
}

var _ MenuServiceInterface = (*MenuService)(nil)
