package service

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

func TestProductService_CreateProduct(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()
	svc := NewProductService(store)
	farmerID := primitive.NewObjectID()

	rs, err := svc.CreateProduct(ctx, model.ProductBody{
		FarmerID:    farmerID.Hex(),
		FarmerName:  "Green Valley",
		Name:        "Tomatoes",
		Category:    "vegetables",
		Description: "Vine ripened",
		Price:       40,
		Quantity:    12,
		Unit:        "kg",
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if rs.FarmerID != farmerID {
		t.Errorf("farmer id = %v, want %v", rs.FarmerID.Hex(), farmerID.Hex())
	}
	if rs.Name != "Tomatoes" || rs.Category != "vegetables" || rs.Price != 40 || rs.Quantity != 12 || rs.Unit != "kg" {
		t.Errorf("product fields not carried over: %+v", rs)
	}
	if !rs.InStock {
		t.Error("product with quantity should be in stock")
	}

	saved, err := store.GetOneProduct(ctx, rs.ID)
	if err != nil {
		t.Fatalf("GetOneProduct: %v", err)
	}
	if saved.FarmerName != "Green Valley" || saved.Description != "Vine ripened" {
		t.Errorf("saved product = %+v, want farmer name and description persisted", saved)
	}

	empty, err := svc.CreateProduct(ctx, model.ProductBody{FarmerID: farmerID.Hex(), Name: "Out of season"})
	if err != nil {
		t.Fatalf("CreateProduct zero quantity: %v", err)
	}
	if empty.InStock {
		t.Error("zero-quantity product marked in stock")
	}

	if _, err = svc.CreateProduct(ctx, model.ProductBody{FarmerID: "bad-id", Name: "X"}); err == nil {
		t.Error("expected error for malformed farmer id")
	}
}
