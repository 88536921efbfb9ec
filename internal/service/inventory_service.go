package service

import (
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrInventoryExists   = errors.New("Inventory already exists")
	ErrInventoryNotFound = errors.New("Inventory not found")
)

type InventoryService interface {
	CreateInventory(req *CreateInventoryRequest) (*model.Inventory, error)
	GetAllInventory() ([]repository.InventoryView, error)
	GetInventoryByID(id uuid.UUID) (*InventoryDetail, error)
	UpdateInventory(id uuid.UUID, req *UpdateInventoryRequest) (*model.Inventory, error)
	DeleteInventory(id uuid.UUID) error
}

type CreateInventoryRequest struct {
	LocationID   string `json:"locationId" validate:"required"`
	ProductName  string `json:"product_name" validate:"required"`
	QuantityGood string `json:"quantity_good" validate:"required"`
	Description  string `json:"description"`
	ExpiredDate  string `json:"expired_date"`
	Status       string `json:"status" validate:"required"`
	Unit         string `json:"unit" validate:"required"`
}

type UpdateInventoryRequest struct {
	LocationID   *string `json:"locationId"`
	ProductName  *string `json:"product_name"`
	QuantityGood *string `json:"quantity_good"`
	Description  *string `json:"description"`
	ExpiredDate  *string `json:"expired_date"`
	Status       *string `json:"status"`
	Unit         *string `json:"unit"`
}

// InventoryDetail is the single-item read: the denormalized record plus the
// full location list the client uses to populate its selection UI.
type InventoryDetail struct {
	Inventory *repository.InventoryView `json:"inventory"`
	Locations []model.Location          `json:"locations"`
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	locationRepo  repository.LocationRepository
	hub           *ws.Hub
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, locationRepo repository.LocationRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		inventoryRepo: inventoryRepo,
		locationRepo:  locationRepo,
		hub:           hub,
	}
}

func (s *inventoryService) CreateInventory(req *CreateInventoryRequest) (*model.Inventory, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, _ := s.inventoryRepo.FindByProductName(req.ProductName)
	if existing != nil {
		return nil, ErrInventoryExists
	}

	item := &model.Inventory{
		LocationID:   req.LocationID,
		ProductName:  req.ProductName,
		QuantityGood: req.QuantityGood,
		Description:  req.Description,
		ExpiredDate:  req.ExpiredDate,
		Status:       req.Status,
		Unit:         req.Unit,
	}
	if err := s.inventoryRepo.Create(item); err != nil {
		return nil, err
	}

	s.hub.Publish("inventory_created", item)
	return item, nil
}

func (s *inventoryService) GetAllInventory() ([]repository.InventoryView, error) {
	return s.inventoryRepo.FindAllWithLocation()
}

func (s *inventoryService) GetInventoryByID(id uuid.UUID) (*InventoryDetail, error) {
	view, err := s.inventoryRepo.FindByIDWithLocation(id)
	if err != nil {
		return nil, ErrInventoryNotFound
	}

	locations, err := s.locationRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &InventoryDetail{Inventory: view, Locations: locations}, nil
}

func (s *inventoryService) UpdateInventory(id uuid.UUID, req *UpdateInventoryRequest) (*model.Inventory, error) {
	item, err := s.inventoryRepo.FindByID(id)
	if err != nil {
		return nil, ErrInventoryNotFound
	}

	if req.LocationID != nil {
		item.LocationID = *req.LocationID
	}
	if req.ProductName != nil {
		item.ProductName = *req.ProductName
	}
	if req.QuantityGood != nil {
		item.QuantityGood = *req.QuantityGood
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ExpiredDate != nil {
		item.ExpiredDate = *req.ExpiredDate
	}
	if req.Status != nil {
		item.Status = *req.Status
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	item.Touch()

	if err := s.inventoryRepo.Update(item); err != nil {
		return nil, err
	}

	s.hub.Publish("inventory_updated", item)
	return item, nil
}

func (s *inventoryService) DeleteInventory(id uuid.UUID) error {
	item, err := s.inventoryRepo.FindByID(id)
	if err != nil {
		return ErrInventoryNotFound
	}
	if err := s.inventoryRepo.Delete(id); err != nil {
		return err
	}

	s.hub.Publish("inventory_deleted", map[string]interface{}{"id": item.ID})
	return nil
}
