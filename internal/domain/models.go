package domain

import (
	"strings"
	"time"
)

type VegNonVeg string

const (
	Veg    VegNonVeg = "VEG"
	NonVeg VegNonVeg = "NON_VEG"
)

type BusinessType string

const (
	BusinessTypeRestaurant   BusinessType = "RESTAURANT"
	BusinessTypeCafe         BusinessType = "CAFE"
	BusinessTypeBakery       BusinessType = "BAKERY"
	BusinessTypeCloudKitchen BusinessType = "CLOUD_KITCHEN"
)

type SubscriptionType string

const (
	SubscriptionTrial   SubscriptionType = "TRIAL"
	SubscriptionMonthly SubscriptionType = "MONTHLY"
	SubscriptionYearly  SubscriptionType = "YEARLY"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionInactive SubscriptionStatus = "INACTIVE"
)

// TrialPeriod is how long a default TRIAL subscription stays valid.
const TrialPeriod = 7 * 24 * time.Hour

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	CreatedAt    time.Time `json:"created_at"`
}

type Business struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id"`
	BusinessName string       `json:"business_name"`
	BusinessLogo string       `json:"business_logo"`
	Tagline      string       `json:"tagline"`
	BusinessType BusinessType `json:"business_type"`
	CreatedAt    time.Time    `json:"created_at"`
}

type Menu struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	MenuName   string    `json:"menu_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// MasterCategory is a tenant-independent category template, unique by
// canonical description.
type MasterCategory struct {
	ID                  int64        `json:"id"`
	CategoryDescription string       `json:"category_description"`
	BusinessType        BusinessType `json:"business_type,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
}

type Category struct {
	ID                  int64     `json:"id"`
	MenuID              int64     `json:"menu_id"`
	MasterCategoryID    int64     `json:"master_category_id"`
	CategoryDescription string    `json:"category_description"`
	CreatedAt           time.Time `json:"created_at"`
}

// MasterItem is a tenant-independent item template, optionally scoped
// under one MasterCategory.
type MasterItem struct {
	ID               int64     `json:"id"`
	MasterCategoryID *int64    `json:"master_category_id,omitempty"`
	ItemName         string    `json:"item_name"`
	ItemDescription  string    `json:"item_description"`
	ItemImage        string    `json:"item_image"`
	CreatedAt        time.Time `json:"created_at"`
}

type Item struct {
	ID               int64         `json:"id"`
	MenuID           int64         `json:"menu_id"`
	CategoryID       int64         `json:"category_id"`
	MasterItemID     *int64        `json:"master_item_id,omitempty"`
	ItemName         string        `json:"item_name"`
	ItemDescription  string        `json:"item_description"`
	ItemDiscount     float64       `json:"item_discount"`
	ItemImage        string        `json:"item_image"`
	VegOrNonVeg      VegNonVeg     `json:"veg_or_non_veg"`
	ItemAvailability bool          `json:"item_availability"`
	Bestseller       bool          `json:"bestseller"`
	DealOfDay        bool          `json:"deal_of_day"`
	Variants         []ItemVariant `json:"variants"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// ItemVariant is a named price point owned by exactly one Item.
type ItemVariant struct {
	ID          int64   `json:"id"`
	ItemID      int64   `json:"item_id"`
	VariantName string  `json:"variant_name"`
	Price       float64 `json:"price"`
}

// BusinessMaster is the subscription record, one per business per user.
type BusinessMaster struct {
	ID                 int64              `json:"id"`
	UserID             int64              `json:"user_id"`
	BusinessID         int64              `json:"business_id"`
	SubscriptionType   SubscriptionType   `json:"subscription_type"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
	RegisterDate       time.Time          `json:"register_date"`
	EndDate            time.Time          `json:"end_date"`
	AmountPaid         float64            `json:"amount_paid"`
}

// MenuCategoryView groups a category with its items for the assembled menu.
type MenuCategoryView struct {
	Category Category `json:"category"`
	Items    []Item   `json:"items"`
}

// MenuView is the fully assembled, cacheable menu for one business.
type MenuView struct {
	MenuID       int64              `json:"menu_id"`
	BusinessID   int64              `json:"business_id"`
	BusinessName string             `json:"business_name"`
	BusinessType BusinessType       `json:"business_type"`
	Categories   []MenuCategoryView `json:"categories"`
}

// CanonicalDescription is the catalog dedup key: trimmed and case-folded.
// Stored descriptions keep the caller's original casing.
func CanonicalDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
