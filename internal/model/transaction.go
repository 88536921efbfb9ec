package model

import "github.com/google/uuid"

// Transaction records a stock movement against an Inventory item, optionally
// approved by a User and optionally backed by one uploaded document.
// Documentation holds the derived URL of the attached file; at most one file
// is attached at a time, a new upload retires the old one.
type Transaction struct {
	BaseModel
	ApprovedID    *uuid.UUID `gorm:"type:uuid" json:"approvedId,omitempty"`
	InventoryID   uuid.UUID  `gorm:"type:uuid;not null" json:"inventoryId" validate:"uuid_required"`
	Type          string     `gorm:"type:varchar(50);not null" json:"type" validate:"required"`
	GoodStock     int        `gorm:"not null" json:"good_stock"`
	Documentation *string    `gorm:"type:text" json:"documentation,omitempty"`
	Description   string     `gorm:"type:text" json:"description"`
}
