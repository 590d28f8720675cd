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

func (r *RepoMongo) CreateUser(ctx context.Context, user *model.User) error {
	log := logger.WithCtx(ctx, "RepoMongo.CreateUser")
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	rs, err := r.DB.Collection(CollectionUsers).InsertOne(ctx, user)
	if err != nil {
		if isDupError(err) {
			return ErrDuplicateKey
		}
		log.WithError(err).Error("error_500: insert user in CreateUser - RepoMongo")
		return err
	}
	user.ID = rs.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RepoMongo) GetOneUserByEmail(ctx context.Context, email string) (rs model.User, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	err = r.DB.Collection(CollectionUsers).FindOne(ctx, bson.M{"email": email}).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}

func (r *RepoMongo) GetOneUserByID(ctx context.Context, id primitive.ObjectID) (rs model.User, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	err = r.DB.Collection(CollectionUsers).FindOne(ctx, bson.M{"_id": id}).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}

func (r *RepoMongo) GetUsers(ctx context.Context, param model.UserParam) (rs []model.User, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if param.Role != "" {
		filter["role"] = param.Role
	}
	if param.Status != "" {
		filter["status"] = param.Status
	}
	if param.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": param.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": param.Search, "$options": "i"}},
		}
	}

	cur, err := r.DB.Collection(CollectionUsers).Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}
	err = cur.All(ctx, &rs)
	return rs, err
}

func (r *RepoMongo) UpdateUser(ctx context.Context, id primitive.ObjectID, req model.UpdateUserReq) (rs model.User, err error) {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Phone != nil {
		set["phone"] = *req.Phone
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.FarmName != nil {
		set["farmName"] = *req.FarmName
	}
	if req.Verified != nil {
		set["verified"] = *req.Verified
	}

	err = r.DB.Collection(CollectionUsers).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rs, ErrRecordNotFound
	}
	return rs, err
}

func (r *RepoMongo) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	rs, err := r.DB.Collection(CollectionUsers).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if rs.DeletedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *RepoMongo) ApproveFarmer(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	rs, err := r.DB.Collection(CollectionUsers).UpdateOne(ctx,
		bson.M{"_id": id, "role": model.ROLE_FARMER},
		bson.M{"$set": bson.M{"verified": true, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if rs.MatchedCount == 0 {
		return ErrRecordNotFound
	}
	return nil
}
