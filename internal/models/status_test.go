package models

import (
	"testing"

	"trinh-cafe/internal/apperr"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OrderStatus
		wantErr bool
	}{
		{"pending", "pending", StatusPending, false},
		{"preparing", "preparing", StatusPreparing, false},
		{"ready", "ready", StatusReady, false},
		{"served", "served", StatusServed, false},
		{"paid", "paid", StatusPaid, false},
		{"cancelled", "cancelled", StatusCancelled, false},
		{"unknown", "done", "", true},
		{"empty", "", "", true},
		{"case sensitive", "Pending", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOrderStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOrderStatus(%q) expected error, got %q", tt.input, got)
				}
				if !apperr.IsKind(err, apperr.KindInvalidArgument) {
					t.Errorf("expected invalid_argument, got %s", apperr.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOrderStatus(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseOrderStatus(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		wantErr bool
	}{
		{"pending to preparing", StatusPending, StatusPreparing, false},
		{"preparing to ready", StatusPreparing, StatusReady, false},
		{"ready to served", StatusReady, StatusServed, false},
		{"backwards ready to preparing", StatusReady, StatusPreparing, false},
		{"pending to cancelled", StatusPending, StatusCancelled, false},
		{"served to cancelled", StatusServed, StatusCancelled, false},
		{"paid is frozen", StatusPaid, StatusPending, true},
		{"cancelled is frozen", StatusCancelled, StatusPreparing, true},
		{"paid unreachable via update", StatusServed, StatusPaid, true},
		{"paid unreachable from pending", StatusPending, StatusPaid, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.wantErr && err == nil {
				t.Fatalf("CanTransition(%s, %s) expected error", tt.from, tt.to)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("CanTransition(%s, %s) unexpected error: %v", tt.from, tt.to, err)
			}
			if tt.wantErr && !apperr.IsKind(err, apperr.KindInvalidState) {
				t.Errorf("expected invalid_state, got %s", apperr.KindOf(err))
			}
		})
	}
}

func TestPayable(t *testing.T) {
	payable := map[OrderStatus]bool{
		StatusPending:   false,
		StatusPreparing: false,
		StatusReady:     true,
		StatusServed:    true,
		StatusPaid:      false,
		StatusCancelled: false,
	}
	for status, want := range payable {
		if got := status.Payable(); got != want {
			t.Errorf("%s.Payable() = %v, want %v", status, got, want)
		}
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"cash", "card", "ewallet"} {
		if _, err := ParsePaymentMethod(valid); err != nil {
			t.Errorf("ParsePaymentMethod(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParsePaymentMethod("bitcoin"); err == nil {
		t.Error("ParsePaymentMethod(\"bitcoin\") expected error")
	}
}

func TestParseTableStatus(t *testing.T) {
	for _, valid := range []string{"available", "occupied", "reserved", "maintenance"} {
		if _, err := ParseTableStatus(valid); err != nil {
			t.Errorf("ParseTableStatus(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseTableStatus("broken"); err == nil {
		t.Error("ParseTableStatus(\"broken\") expected error")
	}
}
