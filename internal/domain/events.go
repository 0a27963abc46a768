package domain

import "time"

const (
	EventItemCreated     = "item_created"
	EventItemUpdated     = "item_updated"
	EventItemDeleted     = "item_deleted"
	EventBusinessCreated = "business_created"
)

// CatalogEvent is the message published to the catalog-change topic.
type CatalogEvent struct {
	Type       string    `json:"type"`
	BusinessID int64     `json:"business_id"`
	MenuID     int64     `json:"menu_id"`
	ItemID     int64     `json:"item_id,omitempty"`
	ItemName   string    `json:"item_name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
