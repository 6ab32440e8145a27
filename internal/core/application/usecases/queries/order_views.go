package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderView is an order as listed on the orders board and the customer's
// order history. Totals are computed from the stored line items.
type OrderView struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	Status        order.Status
	PaymentMethod order.PaymentMethod
	Pickup        bool
	Address       *AddressView
	Items         []LineItemView
	Subtotal      float64
	DeliveryFee   float64
	Total         float64
	CreatedAt     time.Time
}

// AddressView is the delivery address; nil for pickup orders.
type AddressView struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	ZipCode      string
}

type LineItemView struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice float64
	Extras    []ExtraView
	Total     float64
}

// loadOrders runs a select over orders and attaches line items with a
// second query, preserving the row order of the first.
func loadOrders(ctx context.Context, db *gorm.DB, builder sq.SelectBuilder) ([]OrderView, error) {
	query, args, err := builder.
		Columns("id", "customer_id", "delivery_fee", "payment_method", "pickup",
			"address_street", "address_number", "address_complement",
			"address_neighborhood", "address_city", "address_zip_code",
			"status", "created_at").
		From("orders").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			v                   OrderView
			a                   AddressView
			id, customerID      uuid.UUID
			paymentMethod, code string
		)
		if err = rows.Scan(&id, &customerID, &v.DeliveryFee, &paymentMethod, &v.Pickup,
			&a.Street, &a.Number, &a.Complement, &a.Neighborhood, &a.City, &a.ZipCode,
			&code, &v.CreatedAt); err != nil {
			return nil, err
		}
		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if v.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if v.Status, err = order.ParseStatus(code); err != nil {
			return nil, err
		}
		v.PaymentMethod = order.PaymentMethod(paymentMethod)
		if !v.Pickup {
			v.Address = &a
		}
		v.Items = make([]LineItemView, 0)
		index[id] = len(views)
		views = append(views, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(views) == 0 {
		return views, nil
	}
	if err = attachItems(ctx, db, views, index); err != nil {
		return nil, err
	}
	return views, nil
}

func attachItems(ctx context.Context, db *gorm.DB, views []OrderView, index map[uuid.UUID]int) error {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	query, args, err := sq.Select("order_id", "product_id", "name", "quantity", "unit_price", "extras").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID, productID uuid.UUID
			item               LineItemView
			extras             []byte
		)
		if err = rows.Scan(&orderID, &productID, &item.Name, &item.Quantity, &item.UnitPrice, &extras); err != nil {
			return err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return err
		}
		if item.Extras, err = decodeExtras(extras); err != nil {
			return err
		}
		if item.Total, err = lineTotal(item); err != nil {
			return err
		}

		v := &views[index[orderID]]
		v.Items = append(v.Items, item)
		v.Subtotal += item.Total
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range views {
		views[i].Subtotal = kernel.RoundAmount(views[i].Subtotal)
		views[i].Total = kernel.RoundAmount(views[i].Subtotal + views[i].DeliveryFee)
	}
	return nil
}

// lineTotal prices the line the same way the order aggregate does.
func lineTotal(item LineItemView) (float64, error) {
	extras := make([]order.Extra, 0, len(item.Extras))
	for _, e := range item.Extras {
		extras = append(extras, order.Extra{Name: e.Name, Price: e.Price})
	}
	line, err := order.NewLineItem(item.ProductID, item.Name, item.Quantity, item.UnitPrice, extras)
	if err != nil {
		return 0, err
	}
	return line.Total(), nil
}
