package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	ProductID   primitive.ObjectID `json:"product_id" bson:"productId"`
	ProductName string             `json:"product_name" bson:"productName"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Price       float64            `json:"price" bson:"price"`
	FarmerID    primitive.ObjectID `json:"farmer_id" bson:"farmerId"`
}

type Order struct {
	BaseModel    `bson:",inline"`
	CustomerID   primitive.ObjectID `json:"customer_id" bson:"customerId"`
	CustomerName string             `json:"customer_name" bson:"customerName"`
	// FarmerID is the order-level "primary" farmer; items carry their own
	// farmerId and farmer-scoped queries must match both.
	FarmerID        primitive.ObjectID `json:"farmer_id" bson:"farmerId"`
	DeliveryID      string             `json:"delivery_id,omitempty" bson:"deliveryId,omitempty"`
	Items           []OrderItem        `json:"items" bson:"items"`
	TotalAmount     float64            `json:"total_amount" bson:"totalAmount"`
	Status          OrderStatus        `json:"status" bson:"status"`
	PaymentStatus   PaymentStatus      `json:"payment_status" bson:"paymentStatus"`
	ShippingAddress string             `json:"shipping_address" bson:"shippingAddress"`
	OrderDate       time.Time          `json:"order_date" bson:"orderDate"`
	DeliveryDate    *time.Time         `json:"delivery_date,omitempty" bson:"deliveryDate,omitempty"`
}

type OrderBody struct {
	CustomerID      string      `json:"customer_id" valid:"Required"`
	CustomerName    string      `json:"customer_name"`
	FarmerID        string      `json:"farmer_id"`
	Items           []OrderItem `json:"items" valid:"Required"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address"`
}

// UpdateOrderReq carries the PUT /orders/:id partial update.
type UpdateOrderReq struct {
	Status          *string  `json:"status"`
	PaymentStatus   *string  `json:"payment_status"`
	ShippingAddress *string  `json:"shipping_address"`
	TotalAmount     *float64 `json:"total_amount"`
	DeliveryID      *string  `json:"delivery_id"`
}

// OrderUpdate is the store-level partial write derived from the requests above.
type OrderUpdate struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	DeliveryID    *string
	DeliveryDate  *time.Time
	ShippingAddr  *string
	TotalAmount   *float64
}

type OrderActionReq struct {
	OrderID string `json:"order_id" valid:"Required"`
}

// OrderListResponse pairs a page of orders with the unfiltered match count.
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int64   `json:"total"`
}

type OrderParam struct {
	CustomerID string `json:"customer_id" form:"customer_id"`
	FarmerID   string `json:"farmer_id" form:"farmer_id"`
	Status     string `json:"status" form:"status"`
}
