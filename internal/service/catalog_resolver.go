package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"menubyte/internal/domain"
)

// CatalogResolver holds the dedup rules for the tenant catalog. It is
// stateless; every method runs against the caller's store so resolution and
// the writes that depend on it share one unit of work.
type CatalogResolver struct{}

// ResolveCategory returns the managed category an item should attach to.
//
// New-category path: an existing category with the same canonical description
// on the same menu is returned unchanged, so repeat calls are idempotent. When
// none exists, the master category is found-or-created and a new category is
// inserted; losing the insert race falls back to a lookup of the winner.
//
// Existing-category path: fetch by id and verify it belongs to the menu.
func (r CatalogResolver) ResolveCategory(store Store, menu *domain.Menu, businessType domain.BusinessType, spec domain.CategorySpec) (*domain.Category, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	if !spec.IsNewCategory {
		category, err := store.GetCategory(spec.CategoryID)
		if err != nil {
			return nil, err
		}
		if category.MenuID != menu.ID {
			return nil, fmt.Errorf("%w: category %d belongs to menu %d, not menu %d",
				domain.ErrCrossTenantMismatch, category.ID, category.MenuID, menu.ID)
		}
		return category, nil
	}

	description := strings.TrimSpace(spec.CategoryDescription)

	existing, err := store.FindCategoryByMenuAndDescription(menu.ID, description)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	masterCategory, err := r.EnsureMasterCategory(store, description, businessType)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		MenuID:              menu.ID,
		MasterCategoryID:    masterCategory.ID,
		CategoryDescription: description,
	}
	if err := store.InsertCategory(category); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			log.Printf("[menubyte] category %q on menu %d created concurrently, reusing", description, menu.ID)
			winner, lookupErr := store.FindCategoryByMenuAndDescription(menu.ID, description)
			if lookupErr != nil {
				return nil, fmt.Errorf("%w: category %q raced on menu %d and could not be resolved",
					domain.ErrConflict, description, menu.ID)
			}
			return winner, nil
		}
		return nil, err
	}
	return category, nil
}

// EnsureMasterCategory finds or creates the shared master category for a
// canonical description. The insert tolerates concurrent creators the same
// way ResolveCategory does.
func (CatalogResolver) EnsureMasterCategory(store Store, description string, businessType domain.BusinessType) (*domain.MasterCategory, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: master category description cannot be empty", domain.ErrValidation)
	}

	existing, err := store.FindMasterCategoryByDescription(description)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	masterCategory := &domain.MasterCategory{
		CategoryDescription: description,
		BusinessType:        businessType,
	}
	if err := store.InsertMasterCategory(masterCategory); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			winner, lookupErr := store.FindMasterCategoryByDescription(description)
			if lookupErr != nil {
				return nil, fmt.Errorf("%w: master category %q raced and could not be resolved",
					domain.ErrConflict, description)
			}
			return winner, nil
		}
		return nil, err
	}
	return masterCategory, nil
}

// EnsureMenu returns the business's menu, creating the default one when a
// legacy business predates lazy menu provisioning.
func (CatalogResolver) EnsureMenu(store Store, business *domain.Business) (*domain.Menu, error) {
	menu, err := store.GetMenuByBusiness(business.ID)
	if err == nil {
		return menu, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	menu = &domain.Menu{BusinessID: business.ID, MenuName: "Default"}
	if err := store.InsertMenu(menu); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			return store.GetMenuByBusiness(business.ID)
		}
		return nil, err
	}
	return menu, nil
}

// CatalogService is the transactional entry point collaborators use for
// category operations outside the item lifecycle.
type CatalogService struct {
	store    Store
	tx       TxRunner
	resolver CatalogResolver
}

func NewCatalogService(store Store, tx TxRunner) *CatalogService {
	return &CatalogService{store: store, tx: tx}
}

func (s *CatalogService) ResolveOrCreateCategory(ctx context.Context, menuID int64, spec domain.CategorySpec) (*domain.Category, error) {
	var category *domain.Category
	err := s.tx.InTx(ctx, func(store Store) error {
		menu, err := store.GetMenu(menuID)
		if err != nil {
			return err
		}
		business, err := store.GetBusiness(menu.BusinessID)
		if err != nil {
			return err
		}
		category, err = s.resolver.ResolveCategory(store, menu, business.BusinessType, spec)
		return err
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) ListCategoriesForMenu(ctx context.Context, menuID int64) ([]domain.Category, error) {
	if _, err := s.store.GetMenu(menuID); err != nil {
		return nil, err
	}
	return s.store.ListCategoriesByMenu(menuID)
}

// UpdateCategory renames a category, keeping the per-menu uniqueness rule. A
// case-only rename of the same category is allowed.
func (s *CatalogService) UpdateCategory(ctx context.Context, categoryID int64, description string) (*domain.Category, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: category description cannot be empty", domain.ErrValidation)
	}

	var category *domain.Category
	err := s.tx.InTx(ctx, func(store Store) error {
		existing, err := store.GetCategory(categoryID)
		if err != nil {
			return err
		}
		if domain.CanonicalDescription(existing.CategoryDescription) != domain.CanonicalDescription(description) {
			conflict, err := store.FindCategoryByMenuAndDescription(existing.MenuID, description)
			if err == nil && conflict.ID != categoryID {
				return fmt.Errorf("%w: category %q already exists for this menu", domain.ErrConflict, description)
			}
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return err
			}
		}
		existing.CategoryDescription = description
		if err := store.UpdateCategory(existing); err != nil {
			return err
		}
		category = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return s.tx.InTx(ctx, func(store Store) error {
		if _, err := store.GetCategory(categoryID); err != nil {
			return err
		}
		_, err := store.DeleteCategory(categoryID)
		return err
	})
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
