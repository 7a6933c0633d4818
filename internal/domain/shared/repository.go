package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the contract every aggregate repository implements.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context, filter Filter) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter Filter) (int64, error)
}

// EstateRepository narrows queries to records owned by one estate.
type EstateRepository[T any] interface {
	Repository[T]
	FindByIDForEstate(ctx context.Context, estateID, id uuid.UUID) (*T, error)
	FindAllForEstate(ctx context.Context, estateID uuid.UUID, filter Filter) ([]T, error)
	CountForEstate(ctx context.Context, estateID uuid.UUID, filter Filter) (int64, error)
}

// Filter carries pagination, ordering and field filters into list queries.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
}

func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}
}

// Paginated is a page of results together with total counts.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	pages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		pages++
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: pages,
	}
}
