package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
)

// RepoMem is the non-durable fallback store used when the primary database is
// unreachable. It honors the same contract as RepoMongo; records live only for
// the lifetime of the process.
type RepoMem struct {
	mu            sync.Mutex
	users         []model.User
	products      []model.Product
	orders        []model.Order
	deliveries    []model.Delivery
	notifications []model.Notification
	payments      []model.Payment
}

func NewMemRepo() StoreInterface {
	return &RepoMem{}
}

// user

func (r *RepoMem) CreateUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == user.Email {
			return ErrDuplicateKey
		}
	}
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, *user)
	return nil
}

func (r *RepoMem) GetOneUserByEmail(ctx context.Context, email string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email {
			return r.users[i], nil
		}
	}
	return model.User{}, ErrRecordNotFound
}

func (r *RepoMem) GetOneUserByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			return r.users[i], nil
		}
	}
	return model.User{}, ErrRecordNotFound
}

func (r *RepoMem) GetUsers(ctx context.Context, param model.UserParam) (rs []model.User, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		u := r.users[i]
		if param.Role != "" && u.Role != param.Role {
			continue
		}
		if param.Status != "" && u.Status != param.Status {
			continue
		}
		if param.Search != "" {
			s := strings.ToLower(param.Search)
			if !strings.Contains(strings.ToLower(u.Name), s) && !strings.Contains(strings.ToLower(u.Email), s) {
				continue
			}
		}
		rs = append(rs, u)
	}
	return rs, nil
}

func (r *RepoMem) UpdateUser(ctx context.Context, id primitive.ObjectID, req model.UpdateUserReq) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		u := &r.users[i]
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		if req.Address != nil {
			u.Address = *req.Address
		}
		if req.Status != nil {
			u.Status = *req.Status
		}
		if req.FarmName != nil {
			u.FarmName = *req.FarmName
		}
		if req.Verified != nil {
			u.Verified = *req.Verified
		}
		u.UpdatedAt = time.Now().UTC()
		return *u, nil
	}
	return model.User{}, ErrRecordNotFound
}

func (r *RepoMem) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

func (r *RepoMem) ApproveFarmer(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id && r.users[i].Role == model.ROLE_FARMER {
			r.users[i].Verified = true
			r.users[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrRecordNotFound
}

// product

func (r *RepoMem) CreateProduct(ctx context.Context, product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, *product)
	return nil
}

func (r *RepoMem) GetOneProduct(ctx context.Context, id primitive.ObjectID) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			return r.products[i], nil
		}
	}
	return model.Product{}, ErrRecordNotFound
}

func (r *RepoMem) GetProducts(ctx context.Context, param model.ProductParam) (rs []model.Product, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		p := r.products[i]
		if param.FarmerID != "" && p.FarmerID.Hex() != param.FarmerID {
			continue
		}
		if param.Category != "" && p.Category != param.Category {
			continue
		}
		if param.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(param.Search)) {
			continue
		}
		rs = append(rs, p)
	}
	return rs, nil
}

func (r *RepoMem) UpdateProduct(ctx context.Context, id primitive.ObjectID, req model.UpdateProductReq) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}
		p := &r.products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Quantity != nil {
			p.Quantity = *req.Quantity
			p.InStock = *req.Quantity > 0
		}
		if req.Unit != nil {
			p.Unit = *req.Unit
		}
		if req.Image != nil {
			p.Image = *req.Image
		}
		if req.InStock != nil {
			p.InStock = *req.InStock
		}
		p.UpdatedAt = time.Now().UTC()
		return *p, nil
	}
	return model.Product{}, ErrRecordNotFound
}

func (r *RepoMem) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// order

func (r *RepoMem) CreateOrder(ctx context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.OrderDate.IsZero() {
		order.OrderDate = now
	}
	r.orders = append(r.orders, *order)
	return nil
}

func (r *RepoMem) GetOneOrder(ctx context.Context, id primitive.ObjectID) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			return r.orders[i], nil
		}
	}
	return model.Order{}, ErrRecordNotFound
}

func (r *RepoMem) GetOrders(ctx context.Context, param model.OrderParam) (rs []model.Order, total int64, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		o := r.orders[i]
		if param.CustomerID != "" && o.CustomerID.Hex() != param.CustomerID {
			continue
		}
		if param.Status != "" && string(o.Status) != param.Status {
			continue
		}
		if param.FarmerID != "" && !orderBelongsToFarmer(o, param.FarmerID) {
			continue
		}
		rs = append(rs, o)
	}
	return rs, int64(len(rs)), nil
}

func orderBelongsToFarmer(o model.Order, farmerID string) bool {
	if o.FarmerID.Hex() == farmerID {
		return true
	}
	for _, item := range o.Items {
		if item.FarmerID.Hex() == farmerID {
			return true
		}
	}
	return false
}

func (r *RepoMem) UpdateOrder(ctx context.Context, id primitive.ObjectID, update model.OrderUpdate) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID != id {
			continue
		}
		o := &r.orders[i]
		if update.Status != nil {
			o.Status = *update.Status
		}
		if update.PaymentStatus != nil {
			o.PaymentStatus = *update.PaymentStatus
		}
		if update.DeliveryID != nil {
			o.DeliveryID = *update.DeliveryID
		}
		if update.DeliveryDate != nil {
			o.DeliveryDate = update.DeliveryDate
		}
		if update.ShippingAddr != nil {
			o.ShippingAddress = *update.ShippingAddr
		}
		if update.TotalAmount != nil {
			o.TotalAmount = *update.TotalAmount
		}
		o.UpdatedAt = time.Now().UTC()
		return *o, nil
	}
	return model.Order{}, ErrRecordNotFound
}

// delivery

func (r *RepoMem) CreateDelivery(ctx context.Context, delivery *model.Delivery) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	delivery.ID = primitive.NewObjectID()
	delivery.CreatedAt = now
	delivery.UpdatedAt = now
	r.deliveries = append(r.deliveries, *delivery)
	return nil
}

func (r *RepoMem) GetOneDelivery(ctx context.Context, id primitive.ObjectID) (model.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.deliveries {
		if r.deliveries[i].ID == id {
			return r.deliveries[i], nil
		}
	}
	return model.Delivery{}, ErrRecordNotFound
}

func (r *RepoMem) GetDeliveryByOrderID(ctx context.Context, orderID primitive.ObjectID) (model.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.deliveries {
		if r.deliveries[i].OrderID == orderID {
			return r.deliveries[i], nil
		}
	}
	return model.Delivery{}, ErrRecordNotFound
}

func (r *RepoMem) GetDeliveries(ctx context.Context, param model.DeliveryParam) (rs []model.Delivery, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.deliveries {
		d := r.deliveries[i]
		if param.AgentID != "" && d.DeliveryAgentID.Hex() != param.AgentID {
			continue
		}
		if param.Status != "" && string(d.Status) != param.Status {
			continue
		}
		rs = append(rs, d)
	}
	return rs, nil
}

func (r *RepoMem) UpdateDelivery(ctx context.Context, id primitive.ObjectID, update model.DeliveryUpdate) (model.Delivery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.deliveries {
		if r.deliveries[i].ID != id {
			continue
		}
		d := &r.deliveries[i]
		if update.AgentID != nil {
			d.DeliveryAgentID = *update.AgentID
		}
		if update.AgentName != nil {
			d.AgentName = *update.AgentName
		}
		if update.Status != nil {
			d.Status = *update.Status
		}
		if update.PickupLocation != nil {
			d.PickupLocation = *update.PickupLocation
		}
		if update.DeliveryLocation != nil {
			d.DeliveryLocation = *update.DeliveryLocation
		}
		if update.CurrentLat != nil {
			d.CurrentLat = update.CurrentLat
		}
		if update.CurrentLng != nil {
			d.CurrentLng = update.CurrentLng
		}
		if update.ETA != nil {
			d.ETA = *update.ETA
		}
		if update.DeliveredAt != nil {
			d.DeliveredAt = update.DeliveredAt
		}
		if update.Remarks != nil {
			d.Remarks = *update.Remarks
		}
		d.UpdatedAt = time.Now().UTC()
		return *d, nil
	}
	return model.Delivery{}, ErrRecordNotFound
}

// notification

func (r *RepoMem) CreateNotification(ctx context.Context, notification *model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = now
	notification.UpdatedAt = now
	notification.Read = false
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *RepoMem) GetNotifications(ctx context.Context, param model.NotificationParam) (rs []model.Notification, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// creation order, most recent first
	limit := conf.LoadEnv().NotificationLimit
	for i := len(r.notifications) - 1; i >= 0; i-- {
		n := r.notifications[i]
		if param.UserID != "" && n.UserID.Hex() != param.UserID {
			continue
		}
		rs = append(rs, n)
		if limit > 0 && int64(len(rs)) >= limit {
			break
		}
	}
	return rs, nil
}

func (r *RepoMem) UpdateNotificationRead(ctx context.Context, id primitive.ObjectID, read bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = read
			r.notifications[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrRecordNotFound
}

// payment

func (r *RepoMem) CreatePayment(ctx context.Context, payment *model.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *RepoMem) UpdatePayment(ctx context.Context, id primitive.ObjectID, update model.PaymentUpdate) (model.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.payments {
		if r.payments[i].ID != id {
			continue
		}
		p := &r.payments[i]
		if update.Status != nil {
			p.Status = *update.Status
		}
		if update.TransactionID != nil {
			p.TransactionID = *update.TransactionID
		}
		if update.PaidAt != nil {
			p.PaidAt = update.PaidAt
		}
		p.UpdatedAt = time.Now().UTC()
		return *p, nil
	}
	return model.Payment{}, ErrRecordNotFound
}
