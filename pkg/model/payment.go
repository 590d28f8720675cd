package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	BaseModel     `bson:",inline"`
	OrderID       primitive.ObjectID `json:"order_id" bson:"orderId"`
	CustomerID    primitive.ObjectID `json:"customer_id" bson:"customerId"`
	Amount        float64            `json:"amount" bson:"amount"`
	Method        string             `json:"method" bson:"method"`
	Status        PaymentStatus      `json:"status" bson:"status"`
	Reference     string             `json:"reference" bson:"reference"`
	TransactionID string             `json:"transaction_id,omitempty" bson:"transactionId,omitempty"`
	PaidAt        *time.Time         `json:"paid_at,omitempty" bson:"paidAt,omitempty"`
}

type PaymentBody struct {
	OrderID    string  `json:"order_id" valid:"Required"`
	CustomerID string  `json:"customer_id" valid:"Required"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
}

type UpdatePaymentReq struct {
	PaymentID     string `json:"payment_id" valid:"Required"`
	Status        string `json:"status" valid:"Required"`
	TransactionID string `json:"transaction_id"`
}

// PaymentUpdate is the store-level partial write.
type PaymentUpdate struct {
	Status        *PaymentStatus
	TransactionID *string
	PaidAt        *time.Time
}
