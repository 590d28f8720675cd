package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/mocks"
	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

type deliveryFixture struct {
	store    repo.StoreInterface
	svc      DeliveryServiceInterface
	customer model.User
	farmer   model.User
	agent    model.User
	admin    model.User
	order    model.Order
}

func newDeliveryFixture(t *testing.T) *deliveryFixture {
	t.Helper()
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()

	f := &deliveryFixture{store: store, svc: NewDeliveryService(store)}
	f.customer = model.User{Name: "Asha Rao", Email: "asha@example.com", Role: model.ROLE_CUSTOMER}
	f.farmer = model.User{Name: "Green Valley", Email: "farm@example.com", Role: model.ROLE_FARMER}
	f.agent = model.User{Name: "Ravi Kumar", Email: "ravi@example.com", Role: model.ROLE_DELIVERY}
	f.admin = model.User{Name: "Ops", Email: "ops@example.com", Role: model.ROLE_ADMIN}
	for _, u := range []*model.User{&f.customer, &f.farmer, &f.agent, &f.admin} {
		if err := store.CreateUser(ctx, u); err != nil {
			t.Fatalf("seed user %v: %v", u.Email, err)
		}
	}

	f.order = model.Order{
		CustomerID:   f.customer.ID,
		CustomerName: f.customer.Name,
		FarmerID:     f.farmer.ID,
		Items: []model.OrderItem{
			{ProductName: "Tomatoes", Quantity: 2, Price: 40, FarmerID: f.farmer.ID},
		},
		TotalAmount:   80,
		Status:        model.OrderStatusPaid,
		PaymentStatus: model.PaymentStatusPaid,
		OrderDate:     time.Now().UTC(),
	}
	if err := store.CreateOrder(ctx, &f.order); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return f
}

func (f *deliveryFixture) assign(t *testing.T) model.Delivery {
	t.Helper()
	rs, err := f.svc.AssignDelivery(context.Background(), model.AssignDeliveryReq{
		OrderID:         f.order.ID.Hex(),
		DeliveryAgentID: f.agent.ID.Hex(),
		AgentName:       f.agent.Name,
	})
	if err != nil {
		t.Fatalf("AssignDelivery: %v", err)
	}
	return rs
}

func (f *deliveryFixture) notificationsFor(t *testing.T, userID primitive.ObjectID) []model.Notification {
	t.Helper()
	rs, err := f.store.GetNotifications(context.Background(), model.NotificationParam{UserID: userID.Hex()})
	if err != nil {
		t.Fatalf("GetNotifications: %v", err)
	}
	return rs
}

func (f *deliveryFixture) reloadOrder(t *testing.T) model.Order {
	t.Helper()
	order, err := f.store.GetOneOrder(context.Background(), f.order.ID)
	if err != nil {
		t.Fatalf("GetOneOrder: %v", err)
	}
	return order
}

func TestDeliveryService_AssignDelivery(t *testing.T) {
	f := newDeliveryFixture(t)

	delivery := f.assign(t)

	if delivery.Status != model.DeliveryStatusAssigned {
		t.Errorf("delivery status = %v, want assigned", delivery.Status)
	}
	if delivery.DeliveryAgentID != f.agent.ID {
		t.Errorf("agent id = %v, want %v", delivery.DeliveryAgentID.Hex(), f.agent.ID.Hex())
	}
	wantETA := time.Now().UTC().Add(48 * time.Hour)
	if diff := delivery.ETA.Sub(wantETA); diff > time.Minute || diff < -time.Minute {
		t.Errorf("ETA = %v, want about %v", delivery.ETA, wantETA)
	}

	order := f.reloadOrder(t)
	if order.Status != model.OrderStatusDispatched {
		t.Errorf("order status = %v, want dispatched", order.Status)
	}
	if order.DeliveryID != delivery.ID.Hex() {
		t.Errorf("order deliveryId = %v, want %v", order.DeliveryID, delivery.ID.Hex())
	}

	if got := f.notificationsFor(t, f.agent.ID); len(got) != 1 || got[0].Title != utils.TITLE_DELIVERY_ASSIGNED {
		t.Errorf("agent notifications = %+v, want one %q", got, utils.TITLE_DELIVERY_ASSIGNED)
	}
	if got := f.notificationsFor(t, f.customer.ID); len(got) != 1 || got[0].Title != utils.TITLE_AGENT_ASSIGNED {
		t.Errorf("customer notifications = %+v, want one %q", got, utils.TITLE_AGENT_ASSIGNED)
	}
}

func TestDeliveryService_UpdateDeliveryStatus_Workflow(t *testing.T) {
	f := newDeliveryFixture(t)
	delivery := f.assign(t)
	ctx := context.Background()

	steps := []struct {
		status        string
		wantOrder     model.OrderStatus
		notifyUser    primitive.ObjectID
		notifyTitle   string
		wantDelivered bool
	}{
		{status: "accepted", wantOrder: model.OrderStatusAccepted, notifyUser: f.customer.ID, notifyTitle: utils.TITLE_AGENT_ACCEPTED},
		{status: "picked", wantOrder: model.OrderStatusDispatched, notifyUser: f.farmer.ID, notifyTitle: utils.TITLE_PRODUCT_PICKED},
		{status: "on-the-way", wantOrder: model.OrderStatusInTransit},
		{status: "arrived", wantOrder: model.OrderStatusArrived, notifyUser: f.customer.ID, notifyTitle: utils.TITLE_AGENT_NEAR},
		{status: "delivered", wantOrder: model.OrderStatusDelivered, notifyUser: f.customer.ID, notifyTitle: utils.TITLE_ORDER_DELIVERED, wantDelivered: true},
	}
	for _, step := range steps {
		rs, err := f.svc.UpdateDeliveryStatus(ctx, model.UpdateDeliveryStatusReq{
			DeliveryID: delivery.ID.Hex(),
			Status:     step.status,
		})
		if err != nil {
			t.Fatalf("UpdateDeliveryStatus(%v): %v", step.status, err)
		}
		if step.status == "on-the-way" && rs.Status != model.DeliveryStatusInTransit {
			t.Errorf("on-the-way normalized to %v, want in-transit", rs.Status)
		}
		if order := f.reloadOrder(t); order.Status != step.wantOrder {
			t.Errorf("after %v order status = %v, want %v", step.status, order.Status, step.wantOrder)
		}
		if step.notifyTitle != "" {
			got := f.notificationsFor(t, step.notifyUser)
			if len(got) == 0 || got[0].Title != step.notifyTitle {
				t.Errorf("after %v latest notification = %+v, want %q", step.status, got, step.notifyTitle)
			}
		}
		if step.wantDelivered {
			if rs.DeliveredAt == nil {
				t.Error("deliveredAt not stamped on delivered")
			}
			if order := f.reloadOrder(t); order.DeliveryDate == nil {
				t.Error("order deliveryDate not stamped on delivered")
			}
		}
	}

	// the delivered fan-out also reaches the farmer and every admin
	if got := f.notificationsFor(t, f.farmer.ID); len(got) == 0 || got[0].Title != utils.TITLE_PRODUCT_DELIVERED {
		t.Errorf("farmer notifications = %+v, want latest %q", got, utils.TITLE_PRODUCT_DELIVERED)
	}
	if got := f.notificationsFor(t, f.admin.ID); len(got) != 1 || got[0].Title != utils.TITLE_DELIVERY_COMPLETED {
		t.Errorf("admin notifications = %+v, want one %q", got, utils.TITLE_DELIVERY_COMPLETED)
	}
}

func TestDeliveryService_UpdateDeliveryStatus_DeliveredOnce(t *testing.T) {
	f := newDeliveryFixture(t)
	delivery := f.assign(t)
	ctx := context.Background()

	first, err := f.svc.UpdateDeliveryStatus(ctx, model.UpdateDeliveryStatusReq{DeliveryID: delivery.ID.Hex(), Status: "delivered"})
	if err != nil {
		t.Fatalf("first delivered: %v", err)
	}
	second, err := f.svc.UpdateDeliveryStatus(ctx, model.UpdateDeliveryStatusReq{DeliveryID: delivery.ID.Hex(), Status: "delivered"})
	if err != nil {
		t.Fatalf("second delivered: %v", err)
	}
	if first.DeliveredAt == nil || second.DeliveredAt == nil {
		t.Fatal("deliveredAt missing")
	}
	if !first.DeliveredAt.Equal(*second.DeliveredAt) {
		t.Errorf("deliveredAt moved from %v to %v on repeat", first.DeliveredAt, second.DeliveredAt)
	}
}

func TestDeliveryService_UpdateDeliveryStatus_RejectedClearsAgent(t *testing.T) {
	f := newDeliveryFixture(t)
	delivery := f.assign(t)
	orderBefore := f.reloadOrder(t)

	rs, err := f.svc.UpdateDeliveryStatus(context.Background(), model.UpdateDeliveryStatusReq{
		DeliveryID: delivery.ID.Hex(),
		Status:     "rejected",
		Remarks:    "vehicle breakdown",
	})
	if err != nil {
		t.Fatalf("UpdateDeliveryStatus(rejected): %v", err)
	}
	if !rs.DeliveryAgentID.IsZero() {
		t.Errorf("agent id = %v, want cleared", rs.DeliveryAgentID.Hex())
	}
	if rs.AgentName != model.AgentUnassigned {
		t.Errorf("agent name = %v, want %v", rs.AgentName, model.AgentUnassigned)
	}
	if rs.Remarks != "vehicle breakdown" {
		t.Errorf("remarks = %v, want vehicle breakdown", rs.Remarks)
	}
	if orderAfter := f.reloadOrder(t); orderAfter.Status != orderBefore.Status {
		t.Errorf("rejection changed order status from %v to %v", orderBefore.Status, orderAfter.Status)
	}
}

func TestDeliveryService_UpdateDeliveryStatus_Invalid(t *testing.T) {
	f := newDeliveryFixture(t)
	delivery := f.assign(t)
	ctx := context.Background()

	if _, err := f.svc.UpdateDeliveryStatus(ctx, model.UpdateDeliveryStatusReq{DeliveryID: "not-a-hex-id", Status: "delivered"}); err == nil {
		t.Error("expected error for malformed delivery id")
	}
	if _, err := f.svc.UpdateDeliveryStatus(ctx, model.UpdateDeliveryStatusReq{DeliveryID: primitive.NewObjectID().Hex(), Status: "delivered"}); err == nil {
		t.Error("expected error for unknown delivery id")
	}
	if _, err := f.svc.UpdateDeliveryStatus(ctx, model.UpdateDeliveryStatusReq{DeliveryID: delivery.ID.Hex(), Status: "teleported"}); err == nil {
		t.Error("expected error for unknown status")
	}
}

func TestDeliveryService_UpdateDelivery_Reassign(t *testing.T) {
	f := newDeliveryFixture(t)
	delivery := f.assign(t)

	newAgent := primitive.NewObjectID().Hex()
	name := "Sunil"
	rs, err := f.svc.UpdateDelivery(context.Background(), delivery.ID.Hex(), model.UpdateDeliveryReq{
		AgentID:   &newAgent,
		AgentName: &name,
	})
	if err != nil {
		t.Fatalf("UpdateDelivery: %v", err)
	}
	if rs.DeliveryAgentID.Hex() != newAgent {
		t.Errorf("agent id = %v, want %v", rs.DeliveryAgentID.Hex(), newAgent)
	}
	if rs.AgentName != name {
		t.Errorf("agent name = %v, want %v", rs.AgentName, name)
	}
	if rs.Status != model.DeliveryStatusAssigned {
		t.Errorf("status = %v, want untouched assigned", rs.Status)
	}
}

// A delivery created by assignment is found when listing by its agent id and
// stays invisible to any other agent id.
func TestDeliveryService_GetDeliveries_AgentFilter(t *testing.T) {
	f := newDeliveryFixture(t)
	delivery := f.assign(t)
	ctx := context.Background()

	rs, err := f.svc.GetDeliveries(ctx, model.DeliveryParam{AgentID: f.agent.ID.Hex()})
	if err != nil {
		t.Fatalf("GetDeliveries: %v", err)
	}
	if len(rs) != 1 || rs[0].ID != delivery.ID {
		t.Fatalf("agent listing = %+v, want exactly the assigned delivery %v", rs, delivery.ID.Hex())
	}

	other, err := f.svc.GetDeliveries(ctx, model.DeliveryParam{AgentID: primitive.NewObjectID().Hex()})
	if err != nil {
		t.Fatalf("GetDeliveries other agent: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("other agent sees %v deliveries, want none", len(other))
	}

	byStatus, err := f.svc.GetDeliveries(ctx, model.DeliveryParam{AgentID: f.agent.ID.Hex(), Status: "assigned"})
	if err != nil {
		t.Fatalf("GetDeliveries by status: %v", err)
	}
	if len(byStatus) != 1 {
		t.Errorf("agent+status listing = %v deliveries, want 1", len(byStatus))
	}
	if _, err = f.svc.GetDeliveries(ctx, model.DeliveryParam{Status: "teleported"}); err == nil {
		t.Error("expected error for unknown status filter")
	}
}

// A failed notification write must not fail the transition itself.
func TestDeliveryService_UpdateDeliveryStatus_NotificationFailureTolerated(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deliveryID := primitive.NewObjectID()
	orderID := primitive.NewObjectID()
	customerID := primitive.NewObjectID()
	status := model.DeliveryStatusArrived

	delivery := model.Delivery{
		BaseModel:       model.BaseModel{ID: deliveryID},
		OrderID:         orderID,
		DeliveryAgentID: primitive.NewObjectID(),
		AgentName:       "Ravi Kumar",
		Status:          model.DeliveryStatusInTransit,
	}
	updated := delivery
	updated.Status = status
	order := model.Order{
		BaseModel:  model.BaseModel{ID: orderID},
		CustomerID: customerID,
		Status:     model.OrderStatusInTransit,
	}
	projected := order
	projected.Status = model.OrderStatusArrived

	store := mocks.NewMockStoreInterface(ctrl)
	store.EXPECT().GetOneDelivery(gomock.Any(), deliveryID).Return(delivery, nil)
	store.EXPECT().UpdateDelivery(gomock.Any(), deliveryID, gomock.Any()).Return(updated, nil)
	store.EXPECT().GetOneOrder(gomock.Any(), orderID).Return(order, nil)
	store.EXPECT().UpdateOrder(gomock.Any(), orderID, gomock.Any()).Return(projected, nil)
	store.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(errors.New("notification store down"))

	svc := NewDeliveryService(store)
	rs, err := svc.UpdateDeliveryStatus(context.Background(), model.UpdateDeliveryStatusReq{
		DeliveryID: deliveryID.Hex(),
		Status:     "arrived",
	})
	if err != nil {
		t.Fatalf("UpdateDeliveryStatus returned %v, want success despite notification failure", err)
	}
	if rs.Status != status {
		t.Errorf("status = %v, want %v", rs.Status, status)
	}
}
