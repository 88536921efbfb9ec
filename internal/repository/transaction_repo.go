package repository

import (
	"time"

	"go-warehouse-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionView is the projected read of a Transaction: display names
// resolved from the referenced User and Inventory, raw foreign keys excluded.
// ApprovalName and ProductName are nil when the reference dangles.
type TransactionView struct {
	ID            uuid.UUID  `json:"id"`
	ApprovalName  *string    `json:"approval_name"`
	ProductName   *string    `json:"product_name"`
	Type          string     `json:"type"`
	Documentation *string    `json:"documentation"`
	Description   string     `json:"description"`
	GoodStock     int        `json:"good_stock"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

type TransactionRepository interface {
	FindByID(id uuid.UUID) (*model.Transaction, error)
	FindAllProjected() ([]TransactionView, error)
	FindByIDProjected(id uuid.UUID) (*TransactionView, error)
	Create(tx *model.Transaction) error
	Update(tx *model.Transaction) error
	Delete(id uuid.UUID) error
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

const transactionViewColumns = "transactions.id, users.username AS approval_name, " +
	"inventories.product_name AS product_name, transactions.type, transactions.documentation, " +
	"transactions.description, transactions.good_stock, transactions.created_at, transactions.updated_at"

func (r *transactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	var tx model.Transaction
	if err := r.db.First(&tx, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepo) FindAllProjected() ([]TransactionView, error) {
	var views []TransactionView
	err := r.db.Model(&model.Transaction{}).
		Select(transactionViewColumns).
		Joins("LEFT JOIN users ON users.id = transactions.approved_id").
		Joins("LEFT JOIN inventories ON inventories.id = transactions.inventory_id").
		Order("transactions.created_at DESC").
		Scan(&views).Error
	return views, err
}

func (r *transactionRepo) FindByIDProjected(id uuid.UUID) (*TransactionView, error) {
	var view TransactionView
	err := r.db.Model(&model.Transaction{}).
		Select(transactionViewColumns).
		Joins("LEFT JOIN users ON users.id = transactions.approved_id").
		Joins("LEFT JOIN inventories ON inventories.id = transactions.inventory_id").
		Where("transactions.id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *transactionRepo) Create(tx *model.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepo) Update(tx *model.Transaction) error {
	return r.db.Save(tx).Error
}

func (r *transactionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Transaction{}, "id = ?", id).Error
}
