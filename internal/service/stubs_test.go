package service

import (
	"errors"
	"sort"
	"time"

	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"

	"github.com/google/uuid"
)

// In-memory repository stubs. Create stamps ID and CreatedAt the way the
// GORM hooks would.

var errNotFound = errors.New("record not found")

func stamp(base *model.BaseModel) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = time.Now()
	}
}

// ── Users ─────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *stubUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (r *stubUserRepo) FindAll() ([]model.User, error) {
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUserRepo) Create(user *model.User) error {
	stamp(&user.BaseModel)
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

// ── Locations ─────────────────────────────────────────────────────────────

type stubLocationRepo struct {
	locations map[uuid.UUID]*model.Location
}

func newStubLocationRepo() *stubLocationRepo {
	return &stubLocationRepo{locations: make(map[uuid.UUID]*model.Location)}
}

func (r *stubLocationRepo) FindByName(name string) (*model.Location, error) {
	for _, l := range r.locations {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, errNotFound
}

func (r *stubLocationRepo) FindByID(id uuid.UUID) (*model.Location, error) {
	if l, ok := r.locations[id]; ok {
		return l, nil
	}
	return nil, errNotFound
}

func (r *stubLocationRepo) FindAll() ([]model.Location, error) {
	locations := make([]model.Location, 0, len(r.locations))
	for _, l := range r.locations {
		locations = append(locations, *l)
	}
	return locations, nil
}

func (r *stubLocationRepo) Create(location *model.Location) error {
	stamp(&location.BaseModel)
	r.locations[location.ID] = location
	return nil
}

func (r *stubLocationRepo) Update(location *model.Location) error {
	r.locations[location.ID] = location
	return nil
}

func (r *stubLocationRepo) Delete(id uuid.UUID) error {
	delete(r.locations, id)
	return nil
}

// ── Inventory ─────────────────────────────────────────────────────────────

type stubInventoryRepo struct {
	items     map[uuid.UUID]*model.Inventory
	locations *stubLocationRepo
}

func newStubInventoryRepo(locations *stubLocationRepo) *stubInventoryRepo {
	return &stubInventoryRepo{items: make(map[uuid.UUID]*model.Inventory), locations: locations}
}

func (r *stubInventoryRepo) FindByProductName(name string) (*model.Inventory, error) {
	for _, i := range r.items {
		if i.ProductName == name {
			return i, nil
		}
	}
	return nil, errNotFound
}

func (r *stubInventoryRepo) FindByID(id uuid.UUID) (*model.Inventory, error) {
	if i, ok := r.items[id]; ok {
		return i, nil
	}
	return nil, errNotFound
}

func (r *stubInventoryRepo) view(item *model.Inventory) repository.InventoryView {
	view := repository.InventoryView{
		ID:           item.ID,
		LocationID:   item.LocationID,
		ProductName:  item.ProductName,
		QuantityGood: item.QuantityGood,
		Description:  item.Description,
		ExpiredDate:  item.ExpiredDate,
		Status:       item.Status,
		Unit:         item.Unit,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	if locID, err := uuid.Parse(item.LocationID); err == nil {
		if loc, err := r.locations.FindByID(locID); err == nil {
			view.LocationName = &loc.Name
		}
	}
	return view
}

func (r *stubInventoryRepo) FindAllWithLocation() ([]repository.InventoryView, error) {
	views := make([]repository.InventoryView, 0, len(r.items))
	for _, i := range r.items {
		views = append(views, r.view(i))
	}
	sort.Slice(views, func(a, b int) bool {
		return views[a].CreatedAt.After(views[b].CreatedAt)
	})
	return views, nil
}

func (r *stubInventoryRepo) FindByIDWithLocation(id uuid.UUID) (*repository.InventoryView, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, errNotFound
	}
	view := r.view(item)
	return &view, nil
}

func (r *stubInventoryRepo) Create(item *model.Inventory) error {
	stamp(&item.BaseModel)
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) Update(item *model.Inventory) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) Delete(id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

// ── Transactions ──────────────────────────────────────────────────────────

type stubTransactionRepo struct {
	transactions map[uuid.UUID]*model.Transaction
	users        *stubUserRepo
	inventory    *stubInventoryRepo
}

func newStubTransactionRepo(users *stubUserRepo, inventory *stubInventoryRepo) *stubTransactionRepo {
	return &stubTransactionRepo{
		transactions: make(map[uuid.UUID]*model.Transaction),
		users:        users,
		inventory:    inventory,
	}
}

func (r *stubTransactionRepo) FindByID(id uuid.UUID) (*model.Transaction, error) {
	if tx, ok := r.transactions[id]; ok {
		return tx, nil
	}
	return nil, errNotFound
}

func (r *stubTransactionRepo) view(tx *model.Transaction) repository.TransactionView {
	view := repository.TransactionView{
		ID:            tx.ID,
		Type:          tx.Type,
		Documentation: tx.Documentation,
		Description:   tx.Description,
		GoodStock:     tx.GoodStock,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}
	if tx.ApprovedID != nil {
		if u, err := r.users.FindByID(*tx.ApprovedID); err == nil {
			view.ApprovalName = &u.Username
		}
	}
	if item, err := r.inventory.FindByID(tx.InventoryID); err == nil {
		view.ProductName = &item.ProductName
	}
	return view
}

func (r *stubTransactionRepo) FindAllProjected() ([]repository.TransactionView, error) {
	views := make([]repository.TransactionView, 0, len(r.transactions))
	for _, tx := range r.transactions {
		views = append(views, r.view(tx))
	}
	sort.Slice(views, func(a, b int) bool {
		return views[a].CreatedAt.After(views[b].CreatedAt)
	})
	return views, nil
}

func (r *stubTransactionRepo) FindByIDProjected(id uuid.UUID) (*repository.TransactionView, error) {
	tx, ok := r.transactions[id]
	if !ok {
		return nil, errNotFound
	}
	view := r.view(tx)
	return &view, nil
}

func (r *stubTransactionRepo) Create(tx *model.Transaction) error {
	stamp(&tx.BaseModel)
	r.transactions[tx.ID] = tx
	return nil
}

func (r *stubTransactionRepo) Update(tx *model.Transaction) error {
	r.transactions[tx.ID] = tx
	return nil
}

func (r *stubTransactionRepo) Delete(id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}
