package models

import (
	"strings"

	"trinh-cafe/internal/apperr"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusPaid      OrderStatus = "paid"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every recognized status value.
var OrderStatuses = []OrderStatus{
	StatusPending, StatusPreparing, StatusReady, StatusServed, StatusPaid, StatusCancelled,
}

// ParseOrderStatus validates a raw status string.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	for _, known := range OrderStatuses {
		if status == known {
			return status, nil
		}
	}
	return "", apperr.Newf(apperr.KindInvalidArgument,
		"invalid status %q, must be one of: %s", s, statusList(OrderStatuses))
}

// Terminal reports whether no further transitions are expected from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// Payable reports whether an order in status s may be paid.
func (s OrderStatus) Payable() bool {
	return s == StatusServed || s == StatusReady
}

// PayableStatuses is the human-readable form used in invalid-state errors.
const PayableStatuses = "served or ready"

// CanTransition is the single transition policy for the generic status-update
// path. Staff may move an order between any non-terminal statuses, including
// backwards, but terminal statuses are frozen and "paid" is reachable only
// through payment finalization.
func CanTransition(from, to OrderStatus) error {
	if from.Terminal() {
		return apperr.InvalidState(
			"order is in a terminal status and can no longer change",
			string(from), statusList(nonTerminal()))
	}
	if to == StatusPaid {
		return apperr.InvalidState(
			"orders are marked paid through payment, not a status update",
			string(from), PayableStatuses)
	}
	return nil
}

func nonTerminal() []OrderStatus {
	var out []OrderStatus
	for _, s := range OrderStatuses {
		if !s.Terminal() {
			out = append(out, s)
		}
	}
	return out
}

func statusList(statuses []OrderStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

// TableStatus represents the occupancy status of a café table
type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableOccupied    TableStatus = "occupied"
	TableReserved    TableStatus = "reserved"
	TableMaintenance TableStatus = "maintenance"
)

// ParseTableStatus validates a raw table status string.
func ParseTableStatus(s string) (TableStatus, error) {
	switch status := TableStatus(s); status {
	case TableAvailable, TableOccupied, TableReserved, TableMaintenance:
		return status, nil
	default:
		return "", apperr.Newf(apperr.KindInvalidArgument,
			"invalid table status %q, must be one of: available, occupied, reserved, maintenance", s)
	}
}

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	MethodCash    PaymentMethod = "cash"
	MethodCard    PaymentMethod = "card"
	MethodEwallet PaymentMethod = "ewallet"
)

// ParsePaymentMethod validates a raw payment method string.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch method := PaymentMethod(s); method {
	case MethodCash, MethodCard, MethodEwallet:
		return method, nil
	default:
		return "", apperr.Newf(apperr.KindInvalidArgument,
			"invalid payment method %q, must be one of: cash, card, ewallet", s)
	}
}
