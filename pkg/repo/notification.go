package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
)

func (r *RepoMongo) CreateNotification(ctx context.Context, notification *model.Notification) error {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	notification.CreatedAt = now
	notification.UpdatedAt = now
	notification.Read = false
	rs, err := r.DB.Collection(CollectionNotifications).InsertOne(ctx, notification)
	if err != nil {
		return err
	}
	notification.ID = rs.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) GetNotifications(ctx context.Context, param model.NotificationParam) (rs []model.Notification, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if param.UserID != "" {
		if oid, e := primitive.ObjectIDFromHex(param.UserID); e == nil {
			filter["userId"] = oid
		} else {
			filter["userId"] = param.UserID
		}
	}

	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(conf.LoadEnv().NotificationLimit)
	cur, err := r.DB.Collection(CollectionNotifications).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	err = cur.All(ctx, &rs)
	return rs, err
}

func (r *RepoMongo) UpdateNotificationRead(ctx context.Context, id primitive.ObjectID, read bool) error {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	rs, err := r.DB.Collection(CollectionNotifications).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"read": read, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if rs.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
