package model

import (
	"fmt"
	"strings"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusAccepted   OrderStatus = "accepted"
	OrderStatusPacked     OrderStatus = "packed"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusDispatched OrderStatus = "dispatched"
	OrderStatusInTransit  OrderStatus = "in-transit"
	OrderStatusArrived    OrderStatus = "arrived"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRejected   OrderStatus = "rejected"
)

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusAssigned  DeliveryStatus = "assigned"
	DeliveryStatusAccepted  DeliveryStatus = "accepted"
	DeliveryStatusPicked    DeliveryStatus = "picked"
	DeliveryStatusInTransit DeliveryStatus = "in-transit"
	DeliveryStatusArrived   DeliveryStatus = "arrived"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusRejected  DeliveryStatus = "rejected"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

var orderStatuses = map[OrderStatus]bool{
	OrderStatusPending:    true,
	OrderStatusAccepted:   true,
	OrderStatusPacked:     true,
	OrderStatusPaid:       true,
	OrderStatusDispatched: true,
	OrderStatusInTransit:  true,
	OrderStatusArrived:    true,
	OrderStatusDelivered:  true,
	OrderStatusCancelled:  true,
	OrderStatusRejected:   true,
}

var deliveryStatuses = map[DeliveryStatus]bool{
	DeliveryStatusPending:   true,
	DeliveryStatusAssigned:  true,
	DeliveryStatusAccepted:  true,
	DeliveryStatusPicked:    true,
	DeliveryStatusInTransit: true,
	DeliveryStatusArrived:   true,
	DeliveryStatusDelivered: true,
	DeliveryStatusRejected:  true,
	DeliveryStatusFailed:    true,
}

// ParseDeliveryStatus normalizes the incoming value and rejects anything
// outside the closed set. "on-the-way" is a legacy spelling of "in-transit".
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	v := DeliveryStatus(strings.ToLower(strings.TrimSpace(s)))
	if v == "on-the-way" {
		v = DeliveryStatusInTransit
	}
	if !deliveryStatuses[v] {
		return "", fmt.Errorf("unknown delivery status: %s", s)
	}
	return v, nil
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	v := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	if !orderStatuses[v] {
		return "", fmt.Errorf("unknown order status: %s", s)
	}
	return v, nil
}

// OrderStatus projects a delivery status onto the owning order. The second
// return is false for statuses that leave the order untouched (pending,
// rejected, failed).
func (s DeliveryStatus) OrderStatus() (OrderStatus, bool) {
	switch s {
	case DeliveryStatusAssigned:
		return OrderStatusDispatched, true
	case DeliveryStatusAccepted:
		return OrderStatusAccepted, true
	case DeliveryStatusPicked:
		return OrderStatusDispatched, true
	case DeliveryStatusInTransit:
		return OrderStatusInTransit, true
	case DeliveryStatusArrived:
		return OrderStatusArrived, true
	case DeliveryStatusDelivered:
		return OrderStatusDelivered, true
	}
	return "", false
}
