package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agrifresh/ms-marketplace/pkg/model"
)

func (r *RepoMongo) CreateProduct(ctx context.Context, product *model.Product) error {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	rs, err := r.DB.Collection(CollectionProducts).InsertOne(ctx, product)
	if err != nil {
		return err
	}
	product.ID = rs.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) GetOneProduct(ctx context.Context, id primitive.ObjectID) (rs model.Product, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	err = r.DB.Collection(CollectionProducts).FindOne(ctx, bson.M{"_id": id}).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}

func (r *RepoMongo) GetProducts(ctx context.Context, param model.ProductParam) (rs []model.Product, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if param.FarmerID != "" {
		if oid, e := primitive.ObjectIDFromHex(param.FarmerID); e == nil {
			filter["farmerId"] = oid
		} else {
			filter["farmerId"] = param.FarmerID
		}
	}
	if param.Category != "" {
		filter["category"] = param.Category
	}
	if param.Search != "" {
		filter["name"] = bson.M{"$regex": param.Search, "$options": "i"}
	}

	cur, err := r.DB.Collection(CollectionProducts).Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	err = cur.All(ctx, &rs)
	return rs, err
}

func (r *RepoMongo) UpdateProduct(ctx context.Context, id primitive.ObjectID, req model.UpdateProductReq) (rs model.Product, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Quantity != nil {
		set["quantity"] = *req.Quantity
		set["inStock"] = *req.Quantity > 0
	}
	if req.Unit != nil {
		set["unit"] = *req.Unit
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if req.InStock != nil {
		set["inStock"] = *req.InStock
	}

	err = r.DB.Collection(CollectionProducts).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}

func (r *RepoMongo) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	rs, err := r.DB.Collection(CollectionProducts).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if rs.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
