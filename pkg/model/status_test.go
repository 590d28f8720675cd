package model

import (
	"testing"
)

func TestParseDeliveryStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DeliveryStatus
		wantErr bool
	}{
		{name: "plain value", input: "assigned", want: DeliveryStatusAssigned},
		{name: "uppercase is normalized", input: "DELIVERED", want: DeliveryStatusDelivered},
		{name: "surrounding spaces are trimmed", input: "  picked ", want: DeliveryStatusPicked},
		{name: "legacy on-the-way maps to in-transit", input: "on-the-way", want: DeliveryStatusInTransit},
		{name: "legacy spelling normalized too", input: " On-The-Way ", want: DeliveryStatusInTransit},
		{name: "unknown value rejected", input: "teleported", wantErr: true},
		{name: "empty value rejected", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeliveryStatus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDeliveryStatus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDeliveryStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	if _, err := ParseOrderStatus("Dispatched"); err != nil {
		t.Errorf("ParseOrderStatus(Dispatched) unexpected error: %v", err)
	}
	if _, err := ParseOrderStatus("on-the-way"); err == nil {
		t.Error("ParseOrderStatus(on-the-way) expected error, delivery synonyms are not order statuses")
	}
}

func TestDeliveryStatusOrderProjection(t *testing.T) {
	tests := []struct {
		status DeliveryStatus
		want   OrderStatus
		ok     bool
	}{
		{DeliveryStatusAssigned, OrderStatusDispatched, true},
		{DeliveryStatusAccepted, OrderStatusAccepted, true},
		{DeliveryStatusPicked, OrderStatusDispatched, true},
		{DeliveryStatusInTransit, OrderStatusInTransit, true},
		{DeliveryStatusArrived, OrderStatusArrived, true},
		{DeliveryStatusDelivered, OrderStatusDelivered, true},
		{DeliveryStatusPending, "", false},
		{DeliveryStatusRejected, "", false},
		{DeliveryStatusFailed, "", false},
	}
	for _, tt := range tests {
		got, ok := tt.status.OrderStatus()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%v.OrderStatus() = (%v, %v), want (%v, %v)", tt.status, got, ok, tt.want, tt.ok)
		}
	}
}
