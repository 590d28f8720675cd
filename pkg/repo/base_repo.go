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

const (
	CollectionUsers         = "users"
	CollectionProducts      = "products"
	CollectionOrders        = "orders"
	CollectionDeliveries    = "deliveries"
	CollectionNotifications = "notifications"
	CollectionPayments      = "payments"

	generalQueryTimeout = 60 * time.Second
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// StoreInterface is the storage capability shared by the durable mongo store
// and the non-durable in-memory fallback. The implementation is selected once
// at process start.
type StoreInterface interface {
	// user
	CreateUser(ctx context.Context, user *model.User) error
	GetOneUserByEmail(ctx context.Context, email string) (model.User, error)
	GetOneUserByID(ctx context.Context, id primitive.ObjectID) (model.User, error)
	GetUsers(ctx context.Context, param model.UserParam) ([]model.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req model.UpdateUserReq) (model.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	ApproveFarmer(ctx context.Context, id primitive.ObjectID) error

	// product
	CreateProduct(ctx context.Context, product *model.Product) error
	GetOneProduct(ctx context.Context, id primitive.ObjectID) (model.Product, error)
	GetProducts(ctx context.Context, param model.ProductParam) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, req model.UpdateProductReq) (model.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error

	// order
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOneOrder(ctx context.Context, id primitive.ObjectID) (model.Order, error)
	GetOrders(ctx context.Context, param model.OrderParam) ([]model.Order, int64, error)
	UpdateOrder(ctx context.Context, id primitive.ObjectID, update model.OrderUpdate) (model.Order, error)

	// delivery
	CreateDelivery(ctx context.Context, delivery *model.Delivery) error
	GetOneDelivery(ctx context.Context, id primitive.ObjectID) (model.Delivery, error)
	GetDeliveryByOrderID(ctx context.Context, orderID primitive.ObjectID) (model.Delivery, error)
	GetDeliveries(ctx context.Context, param model.DeliveryParam) ([]model.Delivery, error)
	UpdateDelivery(ctx context.Context, id primitive.ObjectID, update model.DeliveryUpdate) (model.Delivery, error)

	// notification
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetNotifications(ctx context.Context, param model.NotificationParam) ([]model.Notification, error)
	UpdateNotificationRead(ctx context.Context, id primitive.ObjectID, read bool) error

	// payment
	CreatePayment(ctx context.Context, payment *model.Payment) error
	UpdatePayment(ctx context.Context, id primitive.ObjectID, update model.PaymentUpdate) (model.Payment, error)
}

func NewMongoRepo(db *mongo.Database) StoreInterface {
	return &RepoMongo{DB: db}
}

type RepoMongo struct {
	DB *mongo.Database
}

// ConnectMongo opens and pings the client once at startup.
func ConnectMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(dbName), nil
}

func (r *RepoMongo) DBWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, generalQueryTimeout)
}

// EnsureIndexes prepares the collections the service relies on.
func (r *RepoMongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	_, err := r.DB.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func isDupError(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return false
}
