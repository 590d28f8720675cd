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

	"agrifresh/ms-marketplace/pkg/model"
)

func (r *RepoMongo) CreateDelivery(ctx context.Context, delivery *model.Delivery) error {
	log := logger.WithCtx(ctx, "RepoMongo.CreateDelivery")
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	delivery.CreatedAt = now
	delivery.UpdatedAt = now
	rs, err := r.DB.Collection(CollectionDeliveries).InsertOne(ctx, delivery)
	if err != nil {
		log.WithError(err).Error("error_500: insert delivery in CreateDelivery - RepoMongo")
		return err
	}
	delivery.ID = rs.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) GetOneDelivery(ctx context.Context, id primitive.ObjectID) (rs model.Delivery, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	err = r.DB.Collection(CollectionDeliveries).FindOne(ctx, bson.M{"_id": id}).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}

func (r *RepoMongo) GetDeliveryByOrderID(ctx context.Context, orderID primitive.ObjectID) (rs model.Delivery, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	err = r.DB.Collection(CollectionDeliveries).FindOne(ctx, bson.M{"orderId": orderID}).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}

func (r *RepoMongo) GetDeliveries(ctx context.Context, param model.DeliveryParam) (rs []model.Delivery, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if param.AgentID != "" {
		if oid, e := primitive.ObjectIDFromHex(param.AgentID); e == nil {
			filter["deliveryAgentId"] = oid
		} else {
			filter["deliveryAgentId"] = param.AgentID
		}
	}
	if param.Status != "" {
		filter["status"] = param.Status
	}

	cur, err := r.DB.Collection(CollectionDeliveries).Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	err = cur.All(ctx, &rs)
	return rs, err
}

func (r *RepoMongo) UpdateDelivery(ctx context.Context, id primitive.ObjectID, update model.DeliveryUpdate) (rs model.Delivery, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.AgentID != nil {
		set["deliveryAgentId"] = *update.AgentID
	}
	if update.AgentName != nil {
		set["agentName"] = *update.AgentName
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.PickupLocation != nil {
		set["pickupLocation"] = *update.PickupLocation
	}
	if update.DeliveryLocation != nil {
		set["deliveryLocation"] = *update.DeliveryLocation
	}
	if update.CurrentLat != nil {
		set["currentLat"] = *update.CurrentLat
	}
	if update.CurrentLng != nil {
		set["currentLng"] = *update.CurrentLng
	}
	if update.ETA != nil {
		set["eta"] = *update.ETA
	}
	if update.DeliveredAt != nil {
		set["deliveredAt"] = *update.DeliveredAt
	}
	if update.Remarks != nil {
		set["remarks"] = *update.Remarks
	}

	err = r.DB.Collection(CollectionDeliveries).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}
