// Package orderrepo persists order aggregates and their line items.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the orders row. Line items live in order_items.
type OrderDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	DeliveryFee   float64        `gorm:"type:numeric(10,2);not null"`
	PaymentMethod string         `gorm:"type:varchar(20);not null"`
	Pickup        bool           `gorm:"not null"`
	Address       AddressDTO     `gorm:"embedded;embeddedPrefix:address_"`
	Status        string         `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time      `gorm:"not null"`
	Items         []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO is the delivery address, empty for pickup orders.
type AddressDTO struct {
	Street       string `gorm:"type:varchar(255)"`
	Number       string `gorm:"type:varchar(20)"`
	Complement   string `gorm:"type:varchar(255)"`
	Neighborhood string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(255)"`
	ZipCode      string `gorm:"type:varchar(20)"`
}

// OrderItemDTO is one line of an order. Name and prices are copied from the
// catalog at checkout.
type OrderItemDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Position  int        `gorm:"not null"`
	ProductID uuid.UUID  `gorm:"type:uuid;not null"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Quantity  int        `gorm:"not null"`
	UnitPrice float64    `gorm:"type:numeric(10,2);not null"`
	Extras    []ExtraDTO `gorm:"type:jsonb;serializer:json"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// ExtraDTO is the JSON form of a chosen add-on.
type ExtraDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		extras := make([]ExtraDTO, 0, len(item.Extras()))
		for _, e := range item.Extras() {
			extras = append(extras, ExtraDTO{Name: e.Name, Price: e.Price})
		}
		items = append(items, OrderItemDTO{
			ID:        uuid.New(),
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Extras:    extras,
		})
	}

	a := o.Address()
	return OrderDTO{
		ID:            orderID,
		CustomerID:    o.CustomerID().Bytes(),
		DeliveryFee:   o.DeliveryFee(),
		PaymentMethod: string(o.PaymentMethod()),
		Pickup:        a.IsPickup(),
		Address: AddressDTO{
			Street:       a.Street(),
			Number:       a.Number(),
			Complement:   a.Complement(),
			Neighborhood: a.Neighborhood(),
			City:         a.City(),
			ZipCode:      a.ZipCode(),
		},
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
		Items:     items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(it.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		extras := make([]order.Extra, 0, len(it.Extras))
		for _, e := range it.Extras {
			extras = append(extras, order.Extra{Name: e.Name, Price: e.Price})
		}
		item, itemErr := order.NewLineItem(productID, it.Name, it.Quantity, it.UnitPrice, extras)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address := kernel.PickupAddress()
	if !dto.Pickup {
		address, err = kernel.NewAddress(dto.Address.Street, dto.Address.Number, dto.Address.Complement,
			dto.Address.Neighborhood, dto.Address.City, dto.Address.ZipCode)
		if err != nil {
			return nil, err
		}
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, items, dto.DeliveryFee, method, address, status, dto.CreatedAt)
}
