package service

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

func TestOrderService_CreateOrder(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	store := repo.NewMemRepo()
	svc := NewOrderService(store)
	farmerID := primitive.NewObjectID()

	rs, err := svc.CreateOrder(context.Background(), model.OrderBody{
		CustomerID:   primitive.NewObjectID().Hex(),
		CustomerName: "Asha Rao",
		Items: []model.OrderItem{
			{ProductName: "Tomatoes", Quantity: 2, Price: 40, FarmerID: farmerID},
			{ProductName: "Spinach", Quantity: 1, Price: 25, FarmerID: farmerID},
		},
		ShippingAddress: "12 Lake View Road",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if rs.Status != model.OrderStatusPending || rs.PaymentStatus != model.PaymentStatusPending {
		t.Errorf("new order statuses = %v/%v, want pending/pending", rs.Status, rs.PaymentStatus)
	}
	if rs.TotalAmount != 105 {
		t.Errorf("total = %v, want 105 summed from items", rs.TotalAmount)
	}
	if rs.FarmerID != farmerID {
		t.Errorf("order farmer id = %v, want taken from first item", rs.FarmerID.Hex())
	}

	if _, err = svc.CreateOrder(context.Background(), model.OrderBody{CustomerID: primitive.NewObjectID().Hex()}); err == nil {
		t.Error("expected error for order without items")
	}
	if _, err = svc.CreateOrder(context.Background(), model.OrderBody{CustomerID: "nope", Items: rs.Items}); err == nil {
		t.Error("expected error for malformed customer id")
	}
}

func TestOrderService_MarkOrderPaid(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()
	svc := NewOrderService(store)

	admin := model.User{Name: "Ops", Email: "ops@example.com", Role: model.ROLE_ADMIN}
	if err := store.CreateUser(ctx, &admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	customerID := primitive.NewObjectID()
	order := model.Order{
		CustomerID:   customerID,
		CustomerName: "Asha Rao",
		Items:        []model.OrderItem{{ProductName: "Tomatoes", Quantity: 1, Price: 40}},
		TotalAmount:  40,
		Status:       model.OrderStatusPending,
		OrderDate:    time.Now().UTC(),
	}
	if err := store.CreateOrder(ctx, &order); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	rs, err := svc.MarkOrderPaid(ctx, model.OrderActionReq{OrderID: order.ID.Hex()})
	if err != nil {
		t.Fatalf("MarkOrderPaid: %v", err)
	}
	if rs.Status != model.OrderStatusPaid || rs.PaymentStatus != model.PaymentStatusPaid {
		t.Errorf("order = %v/%v, want paid/paid", rs.Status, rs.PaymentStatus)
	}

	adminNotifs, err := store.GetNotifications(ctx, model.NotificationParam{UserID: admin.ID.Hex()})
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(adminNotifs) != 1 || adminNotifs[0].Title != utils.TITLE_ORDER_READY {
		t.Errorf("admin notifications = %+v, want one %q", adminNotifs, utils.TITLE_ORDER_READY)
	}
	customerNotifs, err := store.GetNotifications(ctx, model.NotificationParam{UserID: customerID.Hex()})
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(customerNotifs) != 1 || customerNotifs[0].Title != utils.TITLE_PAYMENT_CONFIRMED {
		t.Errorf("customer notifications = %+v, want one %q", customerNotifs, utils.TITLE_PAYMENT_CONFIRMED)
	}
}

// An unknown order is a 404 and must leave no notifications behind.
func TestOrderService_MarkOrderPaid_NotFound(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()
	svc := NewOrderService(store)

	admin := model.User{Name: "Ops", Email: "ops@example.com", Role: model.ROLE_ADMIN}
	if err := store.CreateUser(ctx, &admin); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	if _, err := svc.MarkOrderPaid(ctx, model.OrderActionReq{OrderID: primitive.NewObjectID().Hex()}); err == nil {
		t.Fatal("expected error for unknown order")
	}
	notifs, err := store.GetNotifications(ctx, model.NotificationParam{UserID: admin.ID.Hex()})
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	if len(notifs) != 0 {
		t.Errorf("notifications = %+v, want none after a failed mark-paid", notifs)
	}
}

func TestOrderService_UpdateOrder_DeliveredSyncsDelivery(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()
	svc := NewOrderService(store)

	order := model.Order{
		CustomerID:  primitive.NewObjectID(),
		Items:       []model.OrderItem{{ProductName: "Tomatoes", Quantity: 1, Price: 40}},
		TotalAmount: 40,
		Status:      model.OrderStatusInTransit,
		OrderDate:   time.Now().UTC(),
	}
	if err := store.CreateOrder(ctx, &order); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	delivery := model.Delivery{
		OrderID:         order.ID,
		DeliveryAgentID: primitive.NewObjectID(),
		AgentName:       "Ravi Kumar",
		Status:          model.DeliveryStatusInTransit,
	}
	if err := store.CreateDelivery(ctx, &delivery); err != nil {
		t.Fatalf("seed delivery: %v", err)
	}

	status := string(model.OrderStatusDelivered)
	rs, err := svc.UpdateOrder(ctx, order.ID.Hex(), model.UpdateOrderReq{Status: &status})
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if rs.Status != model.OrderStatusDelivered {
		t.Errorf("order status = %v, want delivered", rs.Status)
	}
	if rs.DeliveryDate == nil {
		t.Error("order deliveryDate not stamped")
	}

	synced, err := store.GetDeliveryByOrderID(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetDeliveryByOrderID: %v", err)
	}
	if synced.Status != model.DeliveryStatusDelivered {
		t.Errorf("delivery status = %v, want delivered after order-side close", synced.Status)
	}
	if synced.DeliveredAt == nil {
		t.Error("delivery deliveredAt not stamped by sync")
	}
}

func TestOrderService_GetOrders_StatusValidated(t *testing.T) {
	conf.SetEnv()

	svc := NewOrderService(repo.NewMemRepo())
	if _, _, err := svc.GetOrders(context.Background(), model.OrderParam{Status: "bogus"}); err == nil {
		t.Error("expected error for unknown status filter")
	}
}
