package domain

import (
	"fmt"
	"strings"
)

// VariantSpec is one requested price point.
type VariantSpec struct {
	VariantName string  `json:"variantName"`
	Price       float64 `json:"price"`
}

// CategorySpec selects the target category for an item: either a brand new
// category by description, or an existing one by id.
type CategorySpec struct {
	IsNewCategory       bool   `json:"isNewCategory"`
	CategoryDescription string `json:"categoryDescription"`
	CategoryID          int64  `json:"categoryId"`
}

func (s CategorySpec) Validate() error {
	if s.IsNewCategory {
		if s.CategoryID != 0 {
			return fmt.Errorf("%w: isNewCategory and categoryId are mutually exclusive", ErrValidation)
		}
		if strings.TrimSpace(s.CategoryDescription) == "" {
			return fmt.Errorf("%w: categoryDescription is required for a new category", ErrValidation)
		}
		return nil
	}
	if s.CategoryID == 0 {
		return fmt.Errorf("%w: either isNewCategory or categoryId must be set", ErrValidation)
	}
	return nil
}

// ItemCreationSpec is the creation payload. Availability defaults to true and
// bestseller to false when omitted.
type ItemCreationSpec struct {
	ItemName         string        `json:"itemName"`
	ItemDescription  string        `json:"itemDescription"`
	Variants         []VariantSpec `json:"variants"`
	ItemDiscount     float64       `json:"itemDiscount"`
	ItemImage        string        `json:"itemImage"`
	VegOrNonVeg      VegNonVeg     `json:"vegOrNonVeg"`
	ItemAvailability *bool         `json:"itemAvailability"`
	Bestseller       *bool         `json:"bestseller"`
	DealOfDay        *bool         `json:"dealOfDay"`

	IsNewCategory       bool   `json:"isNewCategory"`
	CategoryDescription string `json:"categoryDescription"`
	CategoryID          int64  `json:"categoryId"`

	IsNewItem    bool  `json:"isNewItem"`
	MasterItemID int64 `json:"masterItemId"`
}

func (s ItemCreationSpec) CategorySpec() CategorySpec {
	return CategorySpec{
		IsNewCategory:       s.IsNewCategory,
		CategoryDescription: s.CategoryDescription,
		CategoryID:          s.CategoryID,
	}
}

func (s ItemCreationSpec) Validate() error {
	if strings.TrimSpace(s.ItemName) == "" {
		return fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if err := validateVariants(s.Variants); err != nil {
		return err
	}
	if s.ItemDiscount < 0 {
		return fmt.Errorf("%w: item discount must be a non-negative number", ErrValidation)
	}
	if s.IsNewItem && s.MasterItemID != 0 {
		return fmt.Errorf("%w: isNewItem and masterItemId are mutually exclusive", ErrValidation)
	}
	return s.CategorySpec().Validate()
}

// ItemUpdateSpec is the update payload. Unlike create, availability and
// bestseller both default to false when omitted.
type ItemUpdateSpec struct {
	ItemName         string        `json:"itemName"`
	ItemDescription  string        `json:"itemDescription"`
	Variants         []VariantSpec `json:"variants"`
	ItemDiscount     float64       `json:"itemDiscount"`
	ItemImage        string        `json:"itemImage"`
	VegOrNonVeg      VegNonVeg     `json:"vegOrNonVeg"`
	ItemAvailability *bool         `json:"itemAvailability"`
	Bestseller       *bool         `json:"bestseller"`
	DealOfDay        *bool         `json:"dealOfDay"`
	CategoryID       int64         `json:"categoryId"`
}

func (s ItemUpdateSpec) Validate() error {
	if strings.TrimSpace(s.ItemName) == "" {
		return fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	}
	if err := validateVariants(s.Variants); err != nil {
		return err
	}
	if s.ItemDiscount < 0 {
		return fmt.Errorf("%w: item discount must be a non-negative number", ErrValidation)
	}
	if s.CategoryID == 0 {
		return fmt.Errorf("%w: categoryId must be provided for item update", ErrValidation)
	}
	return nil
}

func validateVariants(variants []VariantSpec) error {
	if len(variants) == 0 {
		return fmt.Errorf("%w: item must have at least one price variant", ErrValidation)
	}
	seen := make(map[string]bool, len(variants))
	for _, v := range variants {
		name := strings.TrimSpace(v.VariantName)
		if name == "" {
			return fmt.Errorf("%w: all price variants must have a name", ErrValidation)
		}
		if v.Price < 0 {
			return fmt.Errorf("%w: all price variants must have a non-negative price", ErrValidation)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return fmt.Errorf("%w: duplicate variant name %q", ErrValidation, name)
		}
		seen[key] = true
	}
	return nil
}

// BulkItemCreationRequest creates several items for one business in a single
// all-or-nothing batch.
type BulkItemCreationRequest struct {
	BusinessID int64              `json:"businessId"`
	Items      []ItemCreationSpec `json:"items"`
}

// BulkItemDeletionRequest removes several items in a single all-or-nothing
// batch. The business id scopes the deletion: every item must belong to that
// business's menu.
type BulkItemDeletionRequest struct {
	BusinessID int64   `json:"businessId"`
	ItemIDs    []int64 `json:"itemIds"`
}

// SubscriptionUpdateRequest is applied after the payment collaborator has
// verified payment.
type SubscriptionUpdateRequest struct {
	PlanType       SubscriptionType `json:"planType"`
	TenureInMonths int              `json:"tenureInMonths"`
	AmountPaid     float64          `json:"amountPaid"`
}
