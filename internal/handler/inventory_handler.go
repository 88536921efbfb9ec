package handler

import (
	"errors"

	"go-warehouse-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GetInventory returns all items newest-first, each with the denormalized
// location_name of its referenced Location.
// GET /api-warehouse/inventory
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	items, err := h.inventoryService.GetAllInventory()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(items)
}

// GetInventoryItem returns one denormalized item together with the full
// location list for the client's selection UI.
// GET /api-warehouse/inventory/:id
func (h *InventoryHandler) GetInventoryItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Inventory not found"})
	}

	detail, err := h.inventoryService.GetInventoryByID(itemID)
	if err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(detail)
}

// CreateInventory creates a new item; product_name must be unique
// POST /api-warehouse/inventory
func (h *InventoryHandler) CreateInventory(c *fiber.Ctx) error {
	var req service.CreateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if _, err := h.inventoryService.CreateInventory(&req); err != nil {
		if errors.Is(err, service.ErrInventoryExists) || errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Inventory created successfully"})
}

// UpdateInventory merges the supplied fields into an existing item
// PATCH /api-warehouse/inventory/:id
func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Inventory not found"})
	}

	var req service.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid JSON"})
	}

	if _, err := h.inventoryService.UpdateInventory(itemID, &req); err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Inventory updated"})
}

// DeleteInventory removes an item
// DELETE /api-warehouse/inventory/:id
func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Inventory not found"})
	}

	if err := h.inventoryService.DeleteInventory(itemID); err != nil {
		if errors.Is(err, service.ErrInventoryNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Inventory deleted"})
}
