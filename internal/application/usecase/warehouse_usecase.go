package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/gulfwms/wms-api/internal/application/dto"
	"github.com/gulfwms/wms-api/internal/domain/entity"
	"github.com/gulfwms/wms-api/internal/domain/repository"
	"github.com/gulfwms/wms-api/internal/domain/validate"
)

// WarehouseUseCase CRUD use cases for warehouses. usedCapacity is never taken
// from the payload: zero at creation, preserved on replace.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create validates and persists a new warehouse.
func (uc *WarehouseUseCase) Create(in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	now := time.Now()
	warehouse := warehouseFromRequest(in)
	warehouse.ID = uuid.New().String()
	warehouse.UsedCapacity = 0
	warehouse.CreatedAt = now
	warehouse.LastUpdated = now
	if err := validate.Warehouse(warehouse); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// Update fully replaces an existing warehouse, keeping the stored
// usedCapacity. Returns (nil, nil) for an unknown id.
func (uc *WarehouseUseCase) Update(id string, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	warehouse := warehouseFromRequest(in)
	warehouse.ID = id
	warehouse.UsedCapacity = existing.UsedCapacity
	warehouse.CreatedAt = existing.CreatedAt
	warehouse.LastUpdated = time.Now()
	if err := validate.Warehouse(warehouse); err != nil {
		return nil, err
	}
	if err := uc.repo.Replace(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List returns warehouses, optionally filtered by a free-text search.
func (uc *WarehouseUseCase) List(search string) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.List(search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, *toWarehouseResponse(w))
	}
	return out, nil
}

// Delete removes a warehouse; domain.ErrNotFound passes through.
func (uc *WarehouseUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func warehouseFromRequest(in dto.WarehouseRequest) *entity.Warehouse {
	return &entity.Warehouse{
		Code:          in.Code,
		Name:          in.Name,
		Location:      in.Location,
		Address:       in.Address,
		ContactPerson: in.ContactPerson,
		ContactNumber: in.ContactNumber,
		TotalCapacity: in.TotalCapacity,
		Type:          in.Type,
		Status:        in.Status,
	}
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:            w.ID,
		Code:          w.Code,
		Name:          w.Name,
		Location:      w.Location,
		Address:       w.Address,
		ContactPerson: w.ContactPerson,
		ContactNumber: w.ContactNumber,
		TotalCapacity: w.TotalCapacity,
		UsedCapacity:  w.UsedCapacity,
		Type:          w.Type,
		Status:        w.Status,
		CreatedAt:     w.CreatedAt,
		LastUpdated:   w.LastUpdated,
	}
}
