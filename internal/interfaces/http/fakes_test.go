package http_test

import (
	"sort"
	"strings"

	"github.com/gulfwms/wms-api/internal/domain"
	"github.com/gulfwms/wms-api/internal/domain/entity"
	"github.com/gulfwms/wms-api/internal/domain/repository"
)

// In-memory repositories for handler tests. They mirror the store contract:
// field-level uniqueness raises domain.ConflictError, Replace/Delete of an
// unknown id return domain.ErrNotFound, customer listing is newest first.

type fakeCustomerRepo struct {
	records map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{records: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	for _, existing := range r.records {
		if existing.Email == c.Email {
			return domain.Conflict("email")
		}
	}
	clone := *c
	r.records[c.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeCustomerRepo) List(search string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.records))
	for _, c := range r.records {
		if search == "" || containsFold(search, c.FullName, c.CompanyName, c.EmiratesID, c.TradeLicense, c.TRNNumber, c.Email, c.Mobile) {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCustomerRepo) Replace(c *entity.Customer) error {
	if _, ok := r.records[c.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.records {
		if id != c.ID && existing.Email == c.Email {
			return domain.Conflict("email")
		}
	}
	clone := *c
	r.records[c.ID] = &clone
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *fakeCustomerRepo) Stats() (*repository.CustomerStats, error) {
	stats := &repository.CustomerStats{
		ByType:    map[string]int{},
		ByEmirate: map[string]int{},
		KYC:       map[bool]int{},
	}
	all, _ := r.List("")
	stats.Total = len(all)
	for _, c := range all {
		stats.ByType[c.CustomerType]++
		stats.ByEmirate[c.Emirate]++
		stats.KYC[c.KYCVerified]++
	}
	for i, c := range all {
		if i == 5 {
			break
		}
		stats.Recent = append(stats.Recent, repository.RecentCustomer{
			ID:           c.ID,
			Name:         c.DisplayName(),
			CustomerType: c.CustomerType,
			CreatedAt:    c.CreatedAt,
		})
	}
	return stats, nil
}

type fakeSupplierRepo struct {
	records map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{records: map[string]*entity.Supplier{}}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	for _, existing := range r.records {
		if existing.TradeLicense == s.TradeLicense {
			return domain.Conflict("tradeLicense")
		}
		if existing.TRNNumber == s.TRNNumber {
			return domain.Conflict("trnNumber")
		}
	}
	clone := *s
	r.records[s.ID] = &clone
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *fakeSupplierRepo) List(search string) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.records))
	for _, s := range r.records {
		if search == "" || containsFold(search, s.Name, s.ContactPerson, s.Email) {
			clone := *s
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeSupplierRepo) Replace(s *entity.Supplier) error {
	if _, ok := r.records[s.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *s
	r.records[s.ID] = &clone
	return nil
}

func (r *fakeSupplierRepo) Delete(id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeWarehouseRepo struct {
	records map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{records: map[string]*entity.Warehouse{}}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	for _, existing := range r.records {
		if existing.Code == w.Code {
			return domain.Conflict("code")
		}
	}
	clone := *w
	r.records[w.ID] = &clone
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	clone := *w
	return &clone, nil
}

func (r *fakeWarehouseRepo) List(search string) ([]*entity.Warehouse, error) {
	out := make([]*entity.Warehouse, 0, len(r.records))
	for _, w := range r.records {
		if search == "" || containsFold(search, w.Name, w.Code, w.Location) {
			clone := *w
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeWarehouseRepo) Replace(w *entity.Warehouse) error {
	if _, ok := r.records[w.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *w
	r.records[w.ID] = &clone
	return nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeItemRepo struct {
	records map[string]*entity.InventoryItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{records: map[string]*entity.InventoryItem{}}
}

func (r *fakeItemRepo) Create(i *entity.InventoryItem) error {
	for _, existing := range r.records {
		if existing.SKU == i.SKU {
			return domain.Conflict("sku")
		}
	}
	clone := *i
	r.records[i.ID] = &clone
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	i, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	clone := *i
	return &clone, nil
}

func (r *fakeItemRepo) List(search string) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.records))
	for _, i := range r.records {
		if search == "" || containsFold(search, i.Name, i.SKU, i.Barcode, i.WarehouseName) {
			clone := *i
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out, nil
}

func (r *fakeItemRepo) Replace(i *entity.InventoryItem) error {
	if _, ok := r.records[i.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *i
	r.records[i.ID] = &clone
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	if _, ok := r.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeUserRepo struct {
	records map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{records: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.records[u.Username]; ok {
		return domain.Conflict("username")
	}
	clone := *u
	r.records[u.Username] = &clone
	return nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.records[username]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func containsFold(needle string, haystacks ...string) bool {
	needle = strings.ToLower(needle)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

var (
	_ repository.CustomerRepository  = (*fakeCustomerRepo)(nil)
	_ repository.SupplierRepository  = (*fakeSupplierRepo)(nil)
	_ repository.WarehouseRepository = (*fakeWarehouseRepo)(nil)
	_ repository.ItemRepository      = (*fakeItemRepo)(nil)
	_ repository.UserRepository      = (*fakeUserRepo)(nil)
)
