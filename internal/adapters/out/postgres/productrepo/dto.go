// Package productrepo persists catalog products.
package productrepo

import (
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ProductDTO is the products row. Extras are stored as a JSON array.
type ProductDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text;not null"`
	Category    string     `gorm:"type:varchar(100);not null;index"`
	Price       float64    `gorm:"type:numeric(10,2);not null"`
	Available   bool       `gorm:"not null"`
	Extras      []ExtraDTO `gorm:"type:jsonb;serializer:json"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// ExtraDTO is the JSON form of a product add-on.
type ExtraDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func fromDomain(p *catalog.Product) ProductDTO {
	extras := make([]ExtraDTO, 0, len(p.Extras()))
	for _, e := range p.Extras() {
		extras = append(extras, ExtraDTO{Name: e.Name, Price: e.Price})
	}
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
		Available:   p.IsAvailable(),
		Extras:      extras,
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	extras := make([]catalog.Extra, 0, len(dto.Extras))
	for _, e := range dto.Extras {
		extras = append(extras, catalog.Extra{Name: e.Name, Price: e.Price})
	}
	return catalog.RestoreProduct(id, dto.Name, dto.Description, dto.Category, dto.Price, dto.Available, extras)
}
