package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"menubyte/internal/domain"
)

// ItemService is the item lifecycle manager. Every mutation runs inside one
// unit of work; cache invalidation and event publishing happen after commit
// and are best-effort.
type ItemService struct {
	store     Store
	tx        TxRunner
	resolver  CatalogResolver
	cache     MenuCache
	publisher CatalogPublisher
}

func NewItemService(store Store, tx TxRunner, cache MenuCache, publisher CatalogPublisher) *ItemService {
	return &ItemService{store: store, tx: tx, cache: cache, publisher: publisher}
}

func (s *ItemService) CreateItemForBusiness(ctx context.Context, businessID int64, spec domain.ItemCreationSpec) (*domain.Item, error) {
	var item *domain.Item
	err := s.tx.InTx(ctx, func(store Store) error {
		var err error
		item, err = s.createItemTx(store, businessID, spec)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[menubyte] item %d (%s) created for business %d", item.ID, item.ItemName, businessID)
	s.afterCatalogChange(ctx, businessID, item, domain.EventItemCreated)
	return item, nil
}

// createItemTx is the single-item creation sequence. It must run inside an
// open unit of work: a failure at any step leaves no partial catalog writes.
func (s *ItemService) createItemTx(store Store, businessID int64, spec domain.ItemCreationSpec) (*domain.Item, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	business, err := store.GetBusiness(businessID)
	if err != nil {
		return nil, err
	}

	menu, err := s.resolver.EnsureMenu(store, business)
	if err != nil {
		return nil, err
	}

	category, err := s.resolver.ResolveCategory(store, menu, business.BusinessType, spec.CategorySpec())
	if err != nil {
		return nil, err
	}

	var masterItemID *int64
	switch {
	case spec.IsNewItem:
		masterItem := &domain.MasterItem{
			MasterCategoryID: &category.MasterCategoryID,
			ItemName:         strings.TrimSpace(spec.ItemName),
			ItemDescription:  spec.ItemDescription,
			ItemImage:        spec.ItemImage,
		}
		if err := store.InsertMasterItem(masterItem); err != nil {
			return nil, err
		}
		masterItemID = &masterItem.ID
	case spec.MasterItemID != 0:
		masterItem, err := store.GetMasterItem(spec.MasterItemID)
		if err != nil {
			return nil, err
		}
		masterItemID = &masterItem.ID
	}

	// Stale or foreign category ids must never slip through, even though the
	// resolver already checked ownership.
	if category.MenuID != menu.ID {
		return nil, fmt.Errorf("%w: resolved category %d is not on menu %d",
			domain.ErrCrossTenantMismatch, category.ID, menu.ID)
	}

	availability := true
	if spec.ItemAvailability != nil {
		availability = *spec.ItemAvailability
	}
	bestseller := false
	if spec.Bestseller != nil {
		bestseller = *spec.Bestseller
	}
	dealOfDay := false
	if spec.DealOfDay != nil {
		dealOfDay = *spec.DealOfDay
	}

	item := &domain.Item{
		MenuID:           menu.ID,
		CategoryID:       category.ID,
		MasterItemID:     masterItemID,
		ItemName:         strings.TrimSpace(spec.ItemName),
		ItemDescription:  spec.ItemDescription,
		ItemDiscount:     spec.ItemDiscount,
		ItemImage:        spec.ItemImage,
		VegOrNonVeg:      spec.VegOrNonVeg,
		ItemAvailability: availability,
		Bestseller:       bestseller,
		DealOfDay:        dealOfDay,
	}
	if err := store.InsertItem(item); err != nil {
		return nil, err
	}

	for _, v := range spec.Variants {
		variant := domain.ItemVariant{
			ItemID:      item.ID,
			VariantName: strings.TrimSpace(v.VariantName),
			Price:       v.Price,
		}
		if err := store.InsertVariant(&variant); err != nil {
			return nil, err
		}
		item.Variants = append(item.Variants, variant)
	}
	return item, nil
}

// CreateBulkItems creates every spec inside one outer transaction; any single
// failure aborts the whole batch.
func (s *ItemService) CreateBulkItems(ctx context.Context, businessID int64, specs []domain.ItemCreationSpec) ([]domain.Item, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: bulk request must contain at least one item", domain.ErrValidation)
	}

	var items []domain.Item
	err := s.tx.InTx(ctx, func(store Store) error {
		for _, spec := range specs {
			item, err := s.createItemTx(store, businessID, spec)
			if err != nil {
				return fmt.Errorf("item %q: %w", spec.ItemName, err)
			}
			items = append(items, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[menubyte] bulk created %d items for business %d", len(items), businessID)
	for i := range items {
		s.afterCatalogChange(ctx, businessID, &items[i], domain.EventItemCreated)
	}
	return items, nil
}

// DeleteBulkItems removes every listed item inside one outer transaction.
// Each item must belong to the given business's menu; a foreign or unknown id
// aborts the whole batch.
func (s *ItemService) DeleteBulkItems(ctx context.Context, businessID int64, itemIDs []int64) error {
	if len(itemIDs) == 0 {
		return fmt.Errorf("%w: bulk request must contain at least one item id", domain.ErrValidation)
	}

	var deleted []domain.Item
	err := s.tx.InTx(ctx, func(store Store) error {
		menu, err := store.GetMenuByBusiness(businessID)
		if err != nil {
			return err
		}
		for _, itemID := range itemIDs {
			item, err := store.GetItem(itemID)
			if err != nil {
				return err
			}
			if item.MenuID != menu.ID {
				return fmt.Errorf("%w: item %d does not belong to business %d",
					domain.ErrCrossTenantMismatch, itemID, businessID)
			}
			if _, err := store.DeleteItem(itemID); err != nil {
				return err
			}
			deleted = append(deleted, *item)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("[menubyte] bulk deleted %d items for business %d", len(deleted), businessID)
	for i := range deleted {
		s.afterCatalogChange(ctx, businessID, &deleted[i], domain.EventItemDeleted)
	}
	return nil
}

// UpdateItem applies scalar changes and replaces the variant set wholesale.
// The delete+insert runs in the same transaction as the scalar update, so no
// reader ever sees a zero-variant item. Unlike create, availability and
// bestseller default to false when omitted.
func (s *ItemService) UpdateItem(ctx context.Context, itemID int64, spec domain.ItemUpdateSpec) (*domain.Item, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var item *domain.Item
	var businessID int64
	err := s.tx.InTx(ctx, func(store Store) error {
		existing, err := store.GetItem(itemID)
		if err != nil {
			return err
		}

		category, err := store.GetCategory(spec.CategoryID)
		if err != nil {
			return err
		}
		if category.MenuID != existing.MenuID {
			return fmt.Errorf("%w: category %d belongs to menu %d, item is on menu %d",
				domain.ErrCrossTenantMismatch, category.ID, category.MenuID, existing.MenuID)
		}

		menu, err := store.GetMenu(existing.MenuID)
		if err != nil {
			return err
		}
		businessID = menu.BusinessID

		existing.CategoryID = category.ID
		existing.ItemName = strings.TrimSpace(spec.ItemName)
		existing.ItemDescription = spec.ItemDescription
		existing.ItemDiscount = spec.ItemDiscount
		existing.ItemImage = spec.ItemImage
		existing.VegOrNonVeg = spec.VegOrNonVeg
		existing.ItemAvailability = spec.ItemAvailability != nil && *spec.ItemAvailability
		existing.Bestseller = spec.Bestseller != nil && *spec.Bestseller
		existing.DealOfDay = spec.DealOfDay != nil && *spec.DealOfDay

		if err := store.UpdateItem(existing); err != nil {
			return err
		}

		if _, err := store.DeleteVariantsByItem(existing.ID); err != nil {
			return err
		}
		existing.Variants = nil
		for _, v := range spec.Variants {
			variant := domain.ItemVariant{
				ItemID:      existing.ID,
				VariantName: strings.TrimSpace(v.VariantName),
				Price:       v.Price,
			}
			if err := store.InsertVariant(&variant); err != nil {
				return err
			}
			existing.Variants = append(existing.Variants, variant)
		}

		item = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[menubyte] item %d updated", itemID)
	s.afterCatalogChange(ctx, businessID, item, domain.EventItemUpdated)
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, itemID int64) error {
	var deleted *domain.Item
	var businessID int64
	err := s.tx.InTx(ctx, func(store Store) error {
		item, err := store.GetItem(itemID)
		if err != nil {
			return err
		}
		menu, err := store.GetMenu(item.MenuID)
		if err != nil {
			return err
		}
		businessID = menu.BusinessID
		deleted = item

		// Variants go with the item via the cascade.
		_, err = store.DeleteItem(itemID)
		return err
	})
	if err != nil {
		return err
	}

	log.Printf("[menubyte] item %d deleted", itemID)
	s.afterCatalogChange(ctx, businessID, deleted, domain.EventItemDeleted)
	return nil
}

func (s *ItemService) GetItemByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	item, err := s.store.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	variants, err := s.store.ListVariantsByItem(itemID)
	if err != nil {
		return nil, err
	}
	item.Variants = variants
	return item, nil
}

func (s *ItemService) GetItemsForBusiness(ctx context.Context, businessID int64) ([]domain.Item, error) {
	if _, err := s.store.GetBusiness(businessID); err != nil {
		return nil, err
	}
	menu, err := s.store.GetMenuByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListItemsByMenu(menu.ID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		variants, err := s.store.ListVariantsByItem(items[i].ID)
		if err != nil {
			return nil, err
		}
		items[i].Variants = variants
	}
	return items, nil
}

func (s *ItemService) afterCatalogChange(ctx context.Context, businessID int64, item *domain.Item, eventType string) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, s.cache.MenuKey(businessID))
	}
	if s.publisher != nil {
		_ = s.publisher.PublishCatalogEvent(ctx, domain.CatalogEvent{
			Type:       eventType,
			BusinessID: businessID,
			MenuID:     item.MenuID,
			ItemID:     item.ID,
			ItemName:   item.ItemName,
			Timestamp:  time.Now(),
		})
	}
}

var _ ItemServiceInterface = (*ItemService)(nil)
