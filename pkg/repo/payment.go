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

func (r *RepoMongo) CreatePayment(ctx context.Context, payment *model.Payment) error {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	rs, err := r.DB.Collection(CollectionPayments).InsertOne(ctx, payment)
	if err != nil {
		return err
	}
	payment.ID = rs.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) UpdatePayment(ctx context.Context, id primitive.ObjectID, update model.PaymentUpdate) (rs model.Payment, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.TransactionID != nil {
		set["transactionId"] = *update.TransactionID
	}
	if update.PaidAt != nil {
		set["paidAt"] = *update.PaidAt
	}

	err = r.DB.Collection(CollectionPayments).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}
