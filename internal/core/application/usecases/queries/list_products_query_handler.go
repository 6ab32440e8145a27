package queries

import (
	"context"
	"encoding/json"

	"storefront/internal/core/domain/model/kernel"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

// Handle returns the matching products. Ties on price are broken by name.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	builder := sq.Select("id", "name", "description", "category", "price", "available", "extras").
		From("products").
		PlaceholderFormat(sq.Dollar)
	if query.Category() != "" {
		builder = builder.Where(sq.Eq{"category": query.Category()})
	}
	if query.OnlyAvailable() {
		builder = builder.Where(sq.Eq{"available": true})
	}
	if query.OrderBy() == ProductsByPrice {
		builder = builder.OrderBy("price ASC", "name ASC")
	} else {
		builder = builder.OrderBy("name ASC")
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var (
			p      ProductView
			id     uuid.UUID
			extras []byte
		)
		if err = rows.Scan(&id, &p.Name, &p.Description, &p.Category, &p.Price, &p.Available, &extras); err != nil {
			return nil, err
		}
		if p.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if p.Extras, err = decodeExtras(extras); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

func decodeExtras(raw []byte) ([]ExtraView, error) {
	extras := make([]ExtraView, 0)
	if len(raw) == 0 {
		return extras, nil
	}
	if err := json.Unmarshal(raw, &extras); err != nil {
		return nil, err
	}
	if extras == nil {
		extras = make([]ExtraView, 0)
	}
	return extras, nil
}
