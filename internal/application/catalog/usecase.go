package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/filtros-erp/internal/application/dto"
	"github.com/jhoicas/filtros-erp/internal/domain"
	"github.com/jhoicas/filtros-erp/internal/domain/entity"
	"github.com/jhoicas/filtros-erp/internal/domain/repository"
)

// UseCase CRUD del catálogo de productos y materiales. Stock no se toca aquí:
// todo cambio de cantidad pasa por el caso de uso de inventario.
type UseCase struct {
	itemRepo repository.ItemRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(itemRepo repository.ItemRepository) *UseCase {
	return &UseCase{itemRepo: itemRepo}
}

// DisplayName arma el nombre de presentación: categoría + eficiencia + nombre.
// Es solo para mostrar; los campos estructurados nunca se parsean de vuelta.
func DisplayName(item *entity.Item) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{item.Category, item.Efficiency, item.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Create da de alta un ítem. El stock inicial es siempre cero: las existencias
// entran después con un movimiento de entrada que queda en el kardex.
func (uc *UseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Kind != entity.ItemKindProduct && in.Kind != entity.ItemKindMaterial {
		return nil, fmt.Errorf("%w: clase %q", domain.ErrInvalidInput, in.Kind)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
	}
	if in.SafetyStock < 0 {
		return nil, fmt.Errorf("%w: safety_stock negativo", domain.ErrInvalidInput)
	}

	item := &entity.Item{
		ID:          uuid.New().String(),
		Kind:        in.Kind,
		Category:    in.Category,
		Efficiency:  in.Efficiency,
		Name:        strings.TrimSpace(in.Name),
		Stock:       0,
		SafetyStock: in.SafetyStock,
		ImageURL:    in.ImageURL,
		Notes:       in.Notes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Get devuelve un ítem por ID.
func (uc *UseCase) Get(id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List lista el catálogo con filtros de clase, categoría, eficiencia, búsqueda
// libre y bandera de inventario bajo.
func (uc *UseCase) List(filter repository.ItemFilter, limit, offset int) (*dto.ItemListResponse, error) {
	items, err := uc.itemRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return &dto.ItemListResponse{Items: out, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Update modifica los campos descriptivos del ítem. Kind y Stock no son
// editables: la clase es fija desde el alta y el stock solo cambia vía
// movimientos.
func (uc *UseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Efficiency != nil {
		item.Efficiency = *in.Efficiency
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: nombre requerido", domain.ErrInvalidInput)
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.SafetyStock != nil {
		if *in.SafetyStock < 0 {
			return nil, fmt.Errorf("%w: safety_stock negativo", domain.ErrInvalidInput)
		}
		item.SafetyStock = *in.SafetyStock
	}
	if in.ImageURL != nil {
		item.ImageURL = *in.ImageURL
	}
	if in.Notes != nil {
		item.Notes = *in.Notes
	}
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Delete elimina el ítem del catálogo.
func (uc *UseCase) Delete(id string) error {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// LowStockItems lista los ítems en o por debajo de su stock de seguridad.
func (uc *UseCase) LowStockItems(limit int) ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.List(repository.ItemFilter{LowStock: true}, limit, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          item.ID,
		Kind:        item.Kind,
		Category:    item.Category,
		Efficiency:  item.Efficiency,
		Name:        item.Name,
		DisplayName: DisplayName(item),
		Stock:       item.Stock,
		SafetyStock: item.SafetyStock,
		LowStock:    item.LowStock(),
		ImageURL:    item.ImageURL,
		Notes:       item.Notes,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
