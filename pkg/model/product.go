package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	BaseModel   `bson:",inline"`
	FarmerID    primitive.ObjectID `json:"farmer_id" bson:"farmerId"`
	FarmerName  string             `json:"farmer_name" bson:"farmerName"`
	Name        string             `json:"name" bson:"name" valid:"Required"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Quantity    int                `json:"quantity" bson:"quantity"`
	Unit        string             `json:"unit" bson:"unit"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	InStock     bool               `json:"in_stock" bson:"inStock"`
}

type ProductBody struct {
	FarmerID    string  `json:"farmer_id" valid:"Required"`
	FarmerName  string  `json:"farmer_name"`
	Name        string  `json:"name" valid:"Required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit"`
	Image       string  `json:"image"`
}

type UpdateProductReq struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Unit        *string  `json:"unit"`
	Image       *string  `json:"image"`
	InStock     *bool    `json:"in_stock"`
}

type ProductParam struct {
	FarmerID string `json:"farmer_id" form:"farmer_id"`
	Category string `json:"category" form:"category"`
	Search   string `json:"search" form:"search"`
}
