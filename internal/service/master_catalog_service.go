package service

import (
	"context"
	"fmt"
	"strings"

	"menubyte/internal/domain"
)

// MasterCatalogService manages the shared, tenant-independent templates that
// per-menu categories and items link back to.
type MasterCatalogService struct {
	store    Store
	tx       TxRunner
	resolver CatalogResolver
}

func NewMasterCatalogService(store Store, tx TxRunner) *MasterCatalogService {
	return &MasterCatalogService{store: store, tx: tx}
}

// CreateMasterCategory finds or creates a master category by canonical
// description, so repeat creates return the existing row.
func (s *MasterCatalogService) CreateMasterCategory(ctx context.Context, mc *domain.MasterCategory) (*domain.MasterCategory, error) {
	var created *domain.MasterCategory
	err := s.tx.InTx(ctx, func(store Store) error {
		var err error
		created, err = s.resolver.EnsureMasterCategory(store, mc.CategoryDescription, mc.BusinessType)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *MasterCatalogService) ListMasterCategories(ctx context.Context) ([]domain.MasterCategory, error) {
	return s.store.ListMasterCategories()
}

func (s *MasterCatalogService) CreateMasterItem(ctx context.Context, mi *domain.MasterItem) (*domain.MasterItem, error) {
	mi.ItemName = strings.TrimSpace(mi.ItemName)
	if mi.ItemName == "" {
		return nil, fmt.Errorf("%w: master item name cannot be empty", domain.ErrValidation)
	}

	err := s.tx.InTx(ctx, func(store Store) error {
		if mi.MasterCategoryID != nil {
			if _, err := store.GetMasterCategory(*mi.MasterCategoryID); err != nil {
				return err
			}
		}
		return store.InsertMasterItem(mi)
	})
	if err != nil {
		return nil, err
	}
	return mi, nil
}

func (s *MasterCatalogService) ListMasterItems(ctx context.Context) ([]domain.MasterItem, error) {
	return s.store.ListMasterItems()
}

func (s *MasterCatalogService) UpdateMasterItem(ctx context.Context, id int64, mi *domain.MasterItem) (*domain.MasterItem, error) {
	mi.ItemName = strings.TrimSpace(mi.ItemName)
	if mi.ItemName == "" {
		return nil, fmt.Errorf("%w: master item name cannot be empty", domain.ErrValidation)
	}

	var updated *domain.MasterItem
	err := s.tx.InTx(ctx, func(store Store) error {
		existing, err := store.GetMasterItem(id)
		if err != nil {
			return err
		}
		if mi.MasterCategoryID != nil {
			if _, err := store.GetMasterCategory(*mi.MasterCategoryID); err != nil {
				return err
			}
			existing.MasterCategoryID = mi.MasterCategoryID
		}
		existing.ItemName = mi.ItemName
		existing.ItemDescription = mi.ItemDescription
		existing.ItemImage = mi.ItemImage
		if err := store.UpdateMasterItem(existing); err != nil {
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

// DeleteMasterItem removes the template. Tenant items that referenced it keep
// their own copy of the fields; the foreign key nulls out.
func (s *MasterCatalogService) DeleteMasterItem(ctx context.Context, id int64) error {
	return s.tx.InTx(ctx, func(store Store) error {
		if _, err := store.GetMasterItem(id); err != nil {
			return err
		}
		_, err := store.DeleteMasterItem(id)
		return err
	})
}

var _ MasterCatalogServiceInterface = (*MasterCatalogService)(nil)
