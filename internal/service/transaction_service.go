package service

import (
	"errors"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/storage"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/validator"

	"github.com/google/uuid"
)

var ErrTransactionNotFound = errors.New("Transaction not found")

type TransactionService interface {
	CreateTransaction(req *CreateTransactionRequest) (*model.Transaction, error)
	GetAllTransactions() ([]repository.TransactionView, error)
	GetTransactionByID(id uuid.UUID) (*repository.TransactionView, error)
	UpdateTransaction(id uuid.UUID, req *UpdateTransactionRequest) (*model.Transaction, error)
	DeleteTransaction(id uuid.UUID) error
}

type CreateTransactionRequest struct {
	ApprovedID  *uuid.UUID
	InventoryID uuid.UUID `validate:"uuid_required"`
	Type        string    `validate:"required"`
	GoodStock   int
	Description string
	// DocumentationURL is the derived URL of an already-stored upload, or
	// nil when the request carried no file.
	DocumentationURL *string
}

// UpdateTransactionRequest merges only the fields the caller supplied. A
// non-nil DocumentationURL supersedes the previous attachment; nil keeps it.
type UpdateTransactionRequest struct {
	ApprovedID       *uuid.UUID
	InventoryID      *uuid.UUID
	Type             *string
	GoodStock        *int
	Description      *string
	DocumentationURL *string
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	store           *storage.Store
	hub             *ws.Hub
}

func NewTransactionService(transactionRepo repository.TransactionRepository, store *storage.Store, hub *ws.Hub) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		store:           store,
		hub:             hub,
	}
}

func (s *transactionService) CreateTransaction(req *CreateTransactionRequest) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	tx := &model.Transaction{
		ApprovedID:    req.ApprovedID,
		InventoryID:   req.InventoryID,
		Type:          req.Type,
		GoodStock:     req.GoodStock,
		Documentation: req.DocumentationURL,
		Description:   req.Description,
	}
	if err := s.transactionRepo.Create(tx); err != nil {
		return nil, err
	}

	s.hub.Publish("transaction_created", tx)
	return tx, nil
}

func (s *transactionService) GetAllTransactions() ([]repository.TransactionView, error) {
	return s.transactionRepo.FindAllProjected()
}

func (s *transactionService) GetTransactionByID(id uuid.UUID) (*repository.TransactionView, error) {
	view, err := s.transactionRepo.FindByIDProjected(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return view, nil
}

func (s *transactionService) UpdateTransaction(id uuid.UUID, req *UpdateTransactionRequest) (*model.Transaction, error) {
	tx, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}

	// A fresh upload retires the old attachment. Cleanup is best-effort and
	// never blocks or fails the update.
	if req.DocumentationURL != nil {
		if tx.Documentation != nil {
			s.store.RemoveAsync(s.store.FilenameFromURL(*tx.Documentation))
		}
		tx.Documentation = req.DocumentationURL
	}

	if req.ApprovedID != nil {
		tx.ApprovedID = req.ApprovedID
	}
	if req.InventoryID != nil {
		tx.InventoryID = *req.InventoryID
	}
	if req.Type != nil {
		tx.Type = *req.Type
	}
	if req.GoodStock != nil {
		tx.GoodStock = *req.GoodStock
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}
	tx.Touch()

	if err := s.transactionRepo.Update(tx); err != nil {
		return nil, err
	}

	s.hub.Publish("transaction_updated", tx)
	return tx, nil
}

func (s *transactionService) DeleteTransaction(id uuid.UUID) error {
	tx, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return ErrTransactionNotFound
	}
	if err := s.transactionRepo.Delete(id); err != nil {
		return err
	}

	if tx.Documentation != nil {
		s.store.RemoveAsync(s.store.FilenameFromURL(*tx.Documentation))
	}

	s.hub.Publish("transaction_deleted", map[string]interface{}{"id": tx.ID})
	return nil
}
