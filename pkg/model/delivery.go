package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AgentUnassigned is the display-name sentinel for a delivery with no agent;
// the id side of the sentinel is the zero ObjectID.
const AgentUnassigned = "Unassigned"

type Delivery struct {
	BaseModel        `bson:",inline"`
	OrderID          primitive.ObjectID `json:"order_id" bson:"orderId"`
	DeliveryAgentID  primitive.ObjectID `json:"delivery_agent_id" bson:"deliveryAgentId"`
	AgentName        string             `json:"agent_name" bson:"agentName"`
	CustomerName     string             `json:"customer_name" bson:"customerName"`
	Status           DeliveryStatus     `json:"status" bson:"status"`
	PickupLocation   string             `json:"pickup_location" bson:"pickupLocation"`
	DeliveryLocation string             `json:"delivery_location" bson:"deliveryLocation"`
	CurrentLat       *float64           `json:"current_lat,omitempty" bson:"currentLat,omitempty"`
	CurrentLng       *float64           `json:"current_lng,omitempty" bson:"currentLng,omitempty"`
	ETA              time.Time          `json:"eta" bson:"eta"`
	DeliveredAt      *time.Time         `json:"delivered_at,omitempty" bson:"deliveredAt,omitempty"`
	Remarks          string             `json:"remarks,omitempty" bson:"remarks,omitempty"`
}

type AssignDeliveryReq struct {
	OrderID          string `json:"order_id" valid:"Required"`
	DeliveryAgentID  string `json:"delivery_agent_id" valid:"Required"`
	AgentName        string `json:"agent_name"`
	CustomerName     string `json:"customer_name"`
	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`
}

type UpdateDeliveryStatusReq struct {
	DeliveryID string   `json:"delivery_id" valid:"Required"`
	Status     string   `json:"status" valid:"Required"`
	CurrentLat *float64 `json:"current_lat"`
	CurrentLng *float64 `json:"current_lng"`
	Remarks    string   `json:"remarks"`
}

// UpdateDeliveryReq carries the PUT /deliveries/:id partial update.
type UpdateDeliveryReq struct {
	AgentID          *string    `json:"agent_id"`
	AgentName        *string    `json:"agent_name"`
	Status           *string    `json:"status"`
	PickupLocation   *string    `json:"pickup_location"`
	DeliveryLocation *string    `json:"delivery_location"`
	ETA              *time.Time `json:"eta"`
	Remarks          *string    `json:"remarks"`
}

// DeliveryUpdate is the store-level partial write.
type DeliveryUpdate struct {
	AgentID          *primitive.ObjectID
	AgentName        *string
	Status           *DeliveryStatus
	PickupLocation   *string
	DeliveryLocation *string
	CurrentLat       *float64
	CurrentLng       *float64
	ETA              *time.Time
	DeliveredAt      *time.Time
	Remarks          *string
}

type DeliveryParam struct {
	AgentID string `json:"agent_id" form:"agent_id"`
	Status  string `json:"status" form:"status"`
}
