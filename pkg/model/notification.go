package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	BaseModel `bson:",inline"`
	UserID    primitive.ObjectID `json:"user_id" bson:"userId"`
	Title     string             `json:"title" bson:"title"`
	Message   string             `json:"message" bson:"message"`
	Type      string             `json:"type" bson:"type"`
	Read      bool               `json:"read" bson:"read"`
}

const (
	NOTIFY_TYPE_INFO    = "info"
	NOTIFY_TYPE_SUCCESS = "success"
	NOTIFY_TYPE_WARNING = "warning"
	NOTIFY_TYPE_ERROR   = "error"
)

type NotificationBody struct {
	UserID  string `json:"user_id" valid:"Required"`
	Title   string `json:"title" valid:"Required"`
	Message string `json:"message" valid:"Required"`
	Type    string `json:"type"`
}

type MarkReadReq struct {
	Read bool `json:"read"`
}

type NotificationParam struct {
	UserID string `json:"user_id" form:"user_id"`
	Role   string `json:"role" form:"role"`
}
