package models

import (
	"time"

	"trinh-cafe/internal/apperr"
)

// Order represents a customer order against one table. Total is stored in
// minor currency units and is computed once at creation.
type Order struct {
	ID        int         `json:"id"`
	TableID   int         `json:"table_id"`
	Status    OrderStatus `json:"status"`
	Total     int64       `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem is one line of an order with the catalog price snapshotted at
// creation time.
type OrderItem struct {
	ID       int    `json:"id,omitempty"`
	OrderID  int    `json:"order_id,omitempty"`
	ItemID   int    `json:"item_id"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// OrderLine is a priced line ready to be persisted.
type OrderLine struct {
	ItemID   int
	Quantity int
	Price    int64
}

// Subtotal returns price multiplied by quantity.
func (l OrderLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// OrderView is the joined order+table+location view carried by events and
// list endpoints.
type OrderView struct {
	ID              int         `json:"id"`
	TableID         int         `json:"table_id"`
	Status          OrderStatus `json:"status"`
	Total           int64       `json:"total"`
	CreatedAt       time.Time   `json:"created_at"`
	TableNumber     int         `json:"table_number"`
	LocationName    string      `json:"location_name"`
	LocationAddress string      `json:"location_address"`
}

// OrderDetail is an order view plus its line items.
type OrderDetail struct {
	OrderView
	Items []OrderItem `json:"items"`
}

// CreateOrderRequest is the create-order input payload
type CreateOrderRequest struct {
	TableID int                `json:"table_id"`
	Items   []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested line; the price is resolved server-side.
type OrderItemRequest struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// Validate checks the create-order request
func (req *CreateOrderRequest) Validate() error {
	if req.TableID <= 0 {
		return apperr.New(apperr.KindInvalidArgument, "table_id is required")
	}
	if len(req.Items) == 0 {
		return apperr.New(apperr.KindInvalidArgument, "items cannot be empty")
	}
	for i, item := range req.Items {
		if item.ItemID <= 0 {
			return apperr.Newf(apperr.KindInvalidArgument, "items[%d].item_id is required", i)
		}
		if item.Quantity <= 0 {
			return apperr.Newf(apperr.KindInvalidArgument, "items[%d].quantity must be greater than 0", i)
		}
	}
	return nil
}

// CreateOrderResponse is the create-order output payload
type CreateOrderResponse struct {
	ID    int   `json:"id"`
	Total int64 `json:"total"`
}

// UpdateStatusRequest is the status-update input payload
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatusResponse is the status-update output payload
type UpdateStatusResponse struct {
	OK        bool        `json:"ok"`
	OrderID   int         `json:"orderId"`
	OldStatus OrderStatus `json:"oldStatus"`
	NewStatus OrderStatus `json:"newStatus"`
}
