package handler

import (
	"errors"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LocationHandler struct {
	locationService service.LocationService
}

func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// GetLocations returns all storage locations
// GET /api-warehouse/locations
func (h *LocationHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.locationService.GetAllLocations()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(locations)
}

// GetLocation returns a single location by ID
// GET /api-warehouse/locations/:id
func (h *LocationHandler) GetLocation(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Location not found"})
	}

	location, err := h.locationService.GetLocationByID(locationID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Location not found"})
	}
	return c.JSON(location)
}

// CreateLocation creates a new location; the name must be unique
// POST /api-warehouse/locations
func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var req service.CreateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if _, err := h.locationService.CreateLocation(&req); err != nil {
		if errors.Is(err, service.ErrLocationExists) || errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Location created successfully"})
}

// UpdateLocation merges the supplied fields into an existing location
// PATCH /api-warehouse/locations/:id
func (h *LocationHandler) UpdateLocation(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Location not found"})
	}

	var req service.UpdateLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if _, err := h.locationService.UpdateLocation(locationID, &req); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Location updated"})
}

// DeleteLocation removes a location. Inventory referencing it keeps its
// loose string id.
// DELETE /api-warehouse/locations/:id
func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Location not found"})
	}

	if err := h.locationService.DeleteLocation(locationID); err != nil {
		if errors.Is(err, service.ErrLocationNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Location deleted"})
}
