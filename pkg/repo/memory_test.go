package repo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/valid"
)

func TestRepoMem_UserDuplicateEmail(t *testing.T) {
	conf.SetEnv()
	ctx := context.Background()
	store := NewMemRepo()

	first := model.User{Name: "Asha", Email: "asha@example.com"}
	if err := store.CreateUser(ctx, &first); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	dup := model.User{Name: "Other", Email: "asha@example.com"}
	if err := store.CreateUser(ctx, &dup); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("duplicate email error = %v, want ErrDuplicateKey", err)
	}
}

// Farmer-scoped order listing matches both the order-level farmer id and the
// per-item farmer ids.
func TestRepoMem_GetOrders_FarmerFilter(t *testing.T) {
	conf.SetEnv()
	ctx := context.Background()
	store := NewMemRepo()

	primary := primitive.NewObjectID()
	secondary := primitive.NewObjectID()
	other := primitive.NewObjectID()

	orders := []model.Order{
		{FarmerID: primary, Items: []model.OrderItem{{ProductName: "Tomatoes", FarmerID: primary}}},
		{FarmerID: primary, Items: []model.OrderItem{
			{ProductName: "Spinach", FarmerID: primary},
			{ProductName: "Honey", FarmerID: secondary},
		}},
		{FarmerID: other, Items: []model.OrderItem{{ProductName: "Milk", FarmerID: other}}},
	}
	for i := range orders {
		if err := store.CreateOrder(ctx, &orders[i]); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	rs, total, err := store.GetOrders(ctx, model.OrderParam{FarmerID: secondary.Hex()})
	if err != nil {
		t.Fatalf("GetOrders: %v", err)
	}
	if len(rs) != 1 || total != 1 {
		t.Fatalf("got %v orders (total %v), want 1 matched through item farmer id", len(rs), total)
	}
	if rs[0].ID != orders[1].ID {
		t.Errorf("matched order %v, want %v", rs[0].ID.Hex(), orders[1].ID.Hex())
	}

	if rs, _, err = store.GetOrders(ctx, model.OrderParam{FarmerID: primary.Hex()}); err != nil || len(rs) != 2 {
		t.Errorf("primary farmer got %v orders (err %v), want 2", len(rs), err)
	}
}

func TestRepoMem_UpdateDelivery(t *testing.T) {
	conf.SetEnv()
	ctx := context.Background()
	store := NewMemRepo()

	delivery := model.Delivery{
		OrderID:         primitive.NewObjectID(),
		DeliveryAgentID: primitive.NewObjectID(),
		AgentName:       "Ravi",
		Status:          model.DeliveryStatusAssigned,
	}
	if err := store.CreateDelivery(ctx, &delivery); err != nil {
		t.Fatalf("CreateDelivery: %v", err)
	}

	cleared := primitive.NilObjectID
	status := model.DeliveryStatusRejected
	rs, err := store.UpdateDelivery(ctx, delivery.ID, model.DeliveryUpdate{
		Status:    &status,
		AgentID:   &cleared,
		AgentName: valid.StringPointer(model.AgentUnassigned),
	})
	if err != nil {
		t.Fatalf("UpdateDelivery: %v", err)
	}
	if !rs.DeliveryAgentID.IsZero() || rs.AgentName != model.AgentUnassigned {
		t.Errorf("agent = %v/%v, want cleared", rs.DeliveryAgentID.Hex(), rs.AgentName)
	}
	if rs.Status != model.DeliveryStatusRejected {
		t.Errorf("status = %v, want rejected", rs.Status)
	}

	if _, err = store.UpdateDelivery(ctx, primitive.NewObjectID(), model.DeliveryUpdate{Status: &status}); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("unknown delivery error = %v, want ErrRecordNotFound", err)
	}
}

func TestRepoMem_GetNotifications_NewestFirst(t *testing.T) {
	conf.SetEnv()
	ctx := context.Background()
	store := NewMemRepo()
	userID := primitive.NewObjectID()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		n := model.Notification{UserID: userID, Title: title, Message: "m", Type: model.NOTIFY_TYPE_INFO}
		if err := store.CreateNotification(ctx, &n); err != nil {
			t.Fatalf("CreateNotification: %v", err)
		}
	}
	// a different user's notification must not leak in
	foreign := model.Notification{UserID: primitive.NewObjectID(), Title: "other", Message: "m", Type: model.NOTIFY_TYPE_INFO}
	if err := store.CreateNotification(ctx, &foreign); err != nil {
		t.Fatalf("CreateNotification: %v", err)
	}

	rs, err := store.GetNotifications(ctx, model.NotificationParam{UserID: userID.Hex()})
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(rs) != 3 {
		t.Fatalf("got %v notifications, want 3", len(rs))
	}
	for i, want := range []string{"third", "second", "first"} {
		if rs[i].Title != want {
			t.Errorf("rs[%v].Title = %v, want %v", i, rs[i].Title, want)
		}
	}
}

func TestRepoMem_UpdateProductQuantityTracksStock(t *testing.T) {
	conf.SetEnv()
	ctx := context.Background()
	store := NewMemRepo()

	product := model.Product{FarmerID: primitive.NewObjectID(), Name: "Tomatoes", Quantity: 5, InStock: true}
	if err := store.CreateProduct(ctx, &product); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	zero := 0
	rs, err := store.UpdateProduct(ctx, product.ID, model.UpdateProductReq{Quantity: &zero})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if rs.InStock {
		t.Error("product still in stock after quantity dropped to zero")
	}
}
