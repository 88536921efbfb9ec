package repository

import (
	"time"

	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryView is an Inventory row augmented with the display name of the
// Location it references. LocationName is nil when the reference dangles.
type InventoryView struct {
	ID           uuid.UUID  `json:"id"`
	LocationID   string     `json:"locationId"`
	ProductName  string     `json:"product_name"`
	QuantityGood string     `json:"quantity_good"`
	Description  string     `json:"description"`
	ExpiredDate  string     `json:"expired_date"`
	Status       string     `json:"status"`
	Unit         string     `json:"unit"`
	LocationName *string    `json:"location_name"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

type InventoryRepository interface {
	FindByProductName(name string) (*model.Inventory, error)
	FindByID(id uuid.UUID) (*model.Inventory, error)
	FindAllWithLocation() ([]InventoryView, error)
	FindByIDWithLocation(id uuid.UUID) (*InventoryView, error)
	Create(item *model.Inventory) error
	Update(item *model.Inventory) error
	Delete(id uuid.UUID) error
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

// locationJoin matches the loose string reference against the locations
// table by coercing the native uuid column to text.
const locationJoin = "LEFT JOIN locations ON locations.id::text = inventories.location_id"

const inventoryViewColumns = "inventories.id, inventories.location_id, inventories.product_name, " +
	"inventories.quantity_good, inventories.description, inventories.expired_date, " +
	"inventories.status, inventories.unit, locations.name AS location_name, " +
	"inventories.created_at, inventories.updated_at"

func (r *inventoryRepo) FindByProductName(name string) (*model.Inventory, error) {
	var item model.Inventory
	if err := r.db.Where("product_name = ?", name).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) FindByID(id uuid.UUID) (*model.Inventory, error) {
	var item model.Inventory
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) FindAllWithLocation() ([]InventoryView, error) {
	var views []InventoryView
	err := r.db.Model(&model.Inventory{}).
		Select(inventoryViewColumns).
		Joins(locationJoin).
		Order("inventories.created_at DESC").
		Scan(&views).Error
	return views, err
}

func (r *inventoryRepo) FindByIDWithLocation(id uuid.UUID) (*InventoryView, error) {
	var view InventoryView
	err := r.db.Model(&model.Inventory{}).
		Select(inventoryViewColumns).
		Joins(locationJoin).
		Where("inventories.id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *inventoryRepo) Create(item *model.Inventory) error {
	return r.db.Create(item).Error
}

func (r *inventoryRepo) Update(item *model.Inventory) error {
	return r.db.Save(item).Error
}

func (r *inventoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Inventory{}, "id = ?", id).Error
}
