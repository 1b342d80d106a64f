package queries

import (
	"context"
	"database/sql"
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items.
// Returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			order_date,
			status,
			shipping_address,
			billing_address,
			total_amount
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = items

	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var response OrderResponse
	var id, userID uuid.UUID

	err := row.Scan(
		&id,
		&userID,
		&response.OrderDate,
		&response.Status,
		&response.ShippingAddress,
		&response.BillingAddress,
		&response.TotalAmount,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			book_id,
			quantity,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var id, bookID uuid.UUID

		if err = rows.Scan(&id, &bookID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.BookID, err = kernel.UUIDFromBytes(bookID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
