package service

import (
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrLocationExists   = errors.New("Location already exists")
	ErrLocationNotFound = errors.New("Location not found")
)

type LocationService interface {
	CreateLocation(req *CreateLocationRequest) (*model.Location, error)
	GetAllLocations() ([]model.Location, error)
	GetLocationByID(id uuid.UUID) (*model.Location, error)
	UpdateLocation(id uuid.UUID, req *UpdateLocationRequest) (*model.Location, error)
	DeleteLocation(id uuid.UUID) error
}

type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type UpdateLocationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type locationService struct {
	locationRepo repository.LocationRepository
}

func NewLocationService(locationRepo repository.LocationRepository) LocationService {
	return &locationService{locationRepo: locationRepo}
}

func (s *locationService) CreateLocation(req *CreateLocationRequest) (*model.Location, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	existing, _ := s.locationRepo.FindByName(req.Name)
	if existing != nil {
		return nil, ErrLocationExists
	}

	location := &model.Location{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) GetAllLocations() ([]model.Location, error) {
	return s.locationRepo.FindAll()
}

func (s *locationService) GetLocationByID(id uuid.UUID) (*model.Location, error) {
	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}
	return location, nil
}

func (s *locationService) UpdateLocation(id uuid.UUID, req *UpdateLocationRequest) (*model.Location, error) {
	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		return nil, ErrLocationNotFound
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	location.Touch()

	if err := s.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *locationService) DeleteLocation(id uuid.UUID) error {
	if _, err := s.locationRepo.FindByID(id); err != nil {
		return ErrLocationNotFound
	}
	// Inventory referencing this location keeps its loose string id; the
	// reference is allowed to dangle.
	return s.locationRepo.Delete(id)
}
