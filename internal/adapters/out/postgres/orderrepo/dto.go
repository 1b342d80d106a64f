// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Orders span two tables: the order row and its line
// items, loaded and saved together so the aggregate is always complete.
package orderrepo

import (
	"time"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by user for order history queries and by status for the stale
// order sweep.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null"`
	OrderDate       time.Time `gorm:"index;not null"`
	Status          string    `gorm:"index;not null"`
	ShippingAddress string    `gorm:"not null"`
	BillingAddress  string    `gorm:"not null"`
	TotalAmount     float64   `gorm:"not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line item row. Seq preserves the sequence
// in which items were added to the order.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index;not null"`
	BookID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity int       `gorm:"not null"`
	Price    float64   `gorm:"not null"`
	Seq      int       `gorm:"not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			BookID:   item.BookID().Bytes(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
			Seq:      i,
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID().Bytes(),
		OrderDate:       aggregate.OrderDate(),
		Status:          aggregate.Status().String(),
		ShippingAddress: aggregate.ShippingAddress(),
		BillingAddress:  aggregate.BillingAddress(),
		TotalAmount:     aggregate.TotalAmount(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder. Items arrive ordered by Seq.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		bookID, itemErr := kernel.UUIDFromBytes(itemDTO.BookID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, bookID, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		userID,
		dto.OrderDate,
		status,
		dto.ShippingAddress,
		dto.BillingAddress,
		dto.TotalAmount,
		items,
	)
}
