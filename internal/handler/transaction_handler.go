package handler

import (
	"errors"
	"strconv"

	"go-warehouse-api/internal/service"
	"go-warehouse-api/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// documentationField is the single multipart field a transaction attachment
// arrives under.
const documentationField = "documentation"

type TransactionHandler struct {
	transactionService service.TransactionService
	store              *storage.Store
}

func NewTransactionHandler(transactionService service.TransactionService, store *storage.Store) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, store: store}
}

// GetTransactions returns the projected transaction list, newest-first
// GET /api-warehouse/transaction
func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.transactionService.GetAllTransactions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	return c.JSON(transactions)
}

// GetTransaction returns one projected transaction
// GET /api-warehouse/transaction/:id
func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Transaction not found"})
	}

	view, err := h.transactionService.GetTransactionByID(txID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Transaction not found"})
	}
	return c.JSON(view)
}

// saveAttachment stores the uploaded file, if any, and returns its derived
// URL. A request without the documentation part yields nil.
func (h *TransactionHandler) saveAttachment(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile(documentationField)
	if err != nil || fh == nil {
		return nil, nil
	}

	name, err := h.store.Save(fh)
	if err != nil {
		return nil, err
	}
	url := h.store.URL(c.BaseURL(), name)
	return &url, nil
}

// CreateTransaction records a stock movement with an optional attachment
// POST /api-warehouse/transaction (multipart)
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	inventoryID, err := uuid.Parse(c.FormValue("inventoryId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid inventory ID"})
	}

	var approvedID *uuid.UUID
	if raw := c.FormValue("approvedId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid approver ID"})
		}
		approvedID = &parsed
	}

	goodStock := 0
	if raw := c.FormValue("good_stock"); raw != "" {
		goodStock, err = strconv.Atoi(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid good_stock value"})
		}
	}

	docURL, err := h.saveAttachment(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	req := &service.CreateTransactionRequest{
		ApprovedID:       approvedID,
		InventoryID:      inventoryID,
		Type:             c.FormValue("type"),
		GoodStock:        goodStock,
		Description:      c.FormValue("description"),
		DocumentationURL: docURL,
	}

	if _, err := h.transactionService.CreateTransaction(req); err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.Status(400).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Transaction created successfully"})
}

// UpdateTransaction merges the supplied multipart fields; a new file
// supersedes the previous attachment, no file keeps it.
// PATCH /api-warehouse/transaction/:id (multipart)
func (h *TransactionHandler) UpdateTransaction(c *fiber.Ctx) error {
	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Transaction not found"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid multipart form"})
	}

	formValue := func(key string) *string {
		if vs, ok := form.Value[key]; ok && len(vs) > 0 {
			return &vs[0]
		}
		return nil
	}

	var req service.UpdateTransactionRequest
	req.Type = formValue("type")
	req.Description = formValue("description")

	if raw := formValue("inventoryId"); raw != nil {
		parsed, err := uuid.Parse(*raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid inventory ID"})
		}
		req.InventoryID = &parsed
	}
	if raw := formValue("approvedId"); raw != nil {
		parsed, err := uuid.Parse(*raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid approver ID"})
		}
		req.ApprovedID = &parsed
	}
	if raw := formValue("good_stock"); raw != nil {
		parsed, err := strconv.Atoi(*raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid good_stock value"})
		}
		req.GoodStock = &parsed
	}

	docURL, err := h.saveAttachment(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}
	req.DocumentationURL = docURL

	if _, err := h.transactionService.UpdateTransaction(txID, &req); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Transaction updated"})
}

// DeleteTransaction removes a transaction and, best-effort, its stored file
// DELETE /api-warehouse/transaction/:id
func (h *TransactionHandler) DeleteTransaction(c *fiber.Ctx) error {
	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Transaction not found"})
	}

	if err := h.transactionService.DeleteTransaction(txID); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			return c.Status(404).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"message": "Server error"})
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}
