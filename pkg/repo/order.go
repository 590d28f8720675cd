package repo

import (
	"context"
	"errors"
	"time"

	"gitlab.com/goxp/cloud0/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"agrifresh/ms-marketplace/pkg/model"
)

func (r *RepoMongo) CreateOrder(ctx context.Context, order *model.Order) error {
	log := logger.WithCtx(ctx, "RepoMongo.CreateOrder")
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.OrderDate.IsZero() {
		order.OrderDate = now
	}
	rs, err := r.DB.Collection(CollectionOrders).InsertOne(ctx, order)
	if err != nil {
		log.WithError(err).Error("error_500: insert order in CreateOrder - RepoMongo")
		return err
	}
	order.ID = rs.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) GetOneOrder(ctx context.Context, id primitive.ObjectID) (rs model.Order, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	err = r.DB.Collection(CollectionOrders).FindOne(ctx, bson.M{"_id": id}).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}

func orderFilter(param model.OrderParam) bson.M {
	filter := bson.M{}
	if param.CustomerID != "" {
		if oid, err := primitive.ObjectIDFromHex(param.CustomerID); err == nil {
			filter["customerId"] = oid
		} else {
			filter["customerId"] = param.CustomerID
		}
	}
	if param.Status != "" {
		filter["status"] = param.Status
	}
	// an order belongs to a farmer when either the order-level farmerId or
	// any line item's farmerId matches
	if param.FarmerID != "" {
		var farmerID interface{} = param.FarmerID
		if oid, err := primitive.ObjectIDFromHex(param.FarmerID); err == nil {
			farmerID = oid
		}
		filter["$or"] = bson.A{
			bson.M{"farmerId": farmerID},
			bson.M{"items.farmerId": farmerID},
		}
	}
	return filter
}

func (r *RepoMongo) GetOrders(ctx context.Context, param model.OrderParam) (rs []model.Order, total int64, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	filter := orderFilter(param)
	collection := r.DB.Collection(CollectionOrders)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		cur, err := collection.Find(egCtx, filter, options.Find().SetSort(bson.M{"createdAt": 1}))
		if err != nil {
			return err
		}
		return cur.All(egCtx, &rs)
	})
	eg.Go(func() error {
		var err error
		total, err = collection.CountDocuments(egCtx, filter)
		return err
	})
	if err = eg.Wait(); err != nil {
		return nil, 0, err
	}
	return rs, total, nil
}

func (r *RepoMongo) UpdateOrder(ctx context.Context, id primitive.ObjectID, update model.OrderUpdate) (rs model.Order, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.PaymentStatus != nil {
		set["paymentStatus"] = *update.PaymentStatus
	}
	if update.DeliveryID != nil {
		set["deliveryId"] = *update.DeliveryID
	}
	if update.DeliveryDate != nil {
		set["deliveryDate"] = *update.DeliveryDate
	}
	if update.ShippingAddr != nil {
		set["shippingAddress"] = *update.ShippingAddr
	}
	if update.TotalAmount != nil {
		set["totalAmount"] = *update.TotalAmount
	}

	err = r.DB.Collection(CollectionOrders).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}
