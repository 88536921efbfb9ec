package model

// Inventory is a stock item held at a Location. LocationID is deliberately a
// plain string rather than a typed foreign key: deleting a Location neither
// cascades nor blocks, and a dangling id simply resolves to no location_name
// on denormalized reads.
type Inventory struct {
	BaseModel
	LocationID   string `gorm:"type:varchar(255);not null" json:"locationId" validate:"required"`
	ProductName  string `gorm:"type:varchar(255);uniqueIndex;not null" json:"product_name" validate:"required"`
	QuantityGood string `gorm:"type:varchar(50);not null" json:"quantity_good" validate:"required"`
	Description  string `gorm:"type:text" json:"description"`
	ExpiredDate  string `gorm:"type:varchar(50)" json:"expired_date"`
	Status       string `gorm:"type:varchar(50);not null" json:"status" validate:"required"`
	Unit         string `gorm:"type:varchar(20);not null" json:"unit" validate:"required"`
}
