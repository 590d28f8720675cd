package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
	"agrifresh/ms-marketplace/pkg/valid"
)

type OrderService struct {
	repo repo.StoreInterface
}

func NewOrderService(repo repo.StoreInterface) OrderServiceInterface {
	return &OrderService{repo: repo}
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, req model.OrderBody) (rs model.Order, err error)
	GetOneOrder(ctx context.Context, id string) (rs model.Order, err error)
	GetOrders(ctx context.Context, param model.OrderParam) (rs []model.Order, total int64, err error)
	UpdateOrder(ctx context.Context, id string, req model.UpdateOrderReq) (rs model.Order, err error)
	MarkOrderPaid(ctx context.Context, req model.OrderActionReq) (rs model.Order, err error)
	PackOrder(ctx context.Context, req model.OrderActionReq) (rs model.Order, err error)
	DispatchOrder(ctx context.Context, req model.OrderActionReq) (rs model.Order, err error)
}

func (s *OrderService) CreateOrder(ctx context.Context, req model.OrderBody) (rs model.Order, err error) {
	log := logger.WithCtx(ctx, "OrderService.CreateOrder")

	customerID, err := primitive.ObjectIDFromHex(req.CustomerID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid customer id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid customer ID format")
	}
	if len(req.Items) == 0 {
		return rs, ginext.NewError(http.StatusBadRequest, "Order must contain at least one item")
	}

	order := model.Order{
		CustomerID:      customerID,
		CustomerName:    req.CustomerName,
		Items:           req.Items,
		TotalAmount:     req.TotalAmount,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		ShippingAddress: req.ShippingAddress,
		OrderDate:       time.Now().UTC(),
	}
	if req.FarmerID != "" {
		farmerID, err := primitive.ObjectIDFromHex(req.FarmerID)
		if err != nil {
			return rs, ginext.NewError(http.StatusBadRequest, "Invalid farmer ID format")
		}
		order.FarmerID = farmerID
	} else {
		// single-farm carts keep the order-level farmer id for cheap scoping
		order.FarmerID = req.Items[0].FarmerID
	}
	if order.TotalAmount == 0 {
		for _, item := range order.Items {
			order.TotalAmount += item.Price * float64(item.Quantity)
		}
	}
	if order.CustomerName == "" {
		if customer, err := s.repo.GetOneUserByID(ctx, customerID); err == nil {
			order.CustomerName = customer.Name
		}
	}

	if err = s.repo.CreateOrder(ctx, &order); err != nil {
		log.WithError(err).Error("error_500: create order in CreateOrder - OrderService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return order, nil
}

func (s *OrderService) GetOneOrder(ctx context.Context, id string) (rs model.Order, err error) {
	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid order ID format")
	}
	rs, err = s.repo.GetOneOrder(ctx, orderID)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return rs, ginext.NewError(http.StatusNotFound, "Order not found")
	}
	return rs, err
}

func (s *OrderService) GetOrders(ctx context.Context, param model.OrderParam) (rs []model.Order, total int64, err error) {
	if param.Status != "" {
		status, err := model.ParseOrderStatus(param.Status)
		if err != nil {
			return nil, 0, ginext.NewError(http.StatusBadRequest, err.Error())
		}
		param.Status = string(status)
	}
	return s.repo.GetOrders(ctx, param)
}

// UpdateOrder handles the admin PUT. A status change to "delivered" also
// stamps the order's delivery date and best-effort syncs the linked delivery
// record so the two documents agree.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, req model.UpdateOrderReq) (rs model.Order, err error) {
	log := logger.WithCtx(ctx, "OrderService.UpdateOrder")

	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid order ID format")
	}
	current, err := s.repo.GetOneOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Order not found")
		}
		return rs, err
	}

	update := model.OrderUpdate{
		ShippingAddr: req.ShippingAddress,
		TotalAmount:  req.TotalAmount,
		DeliveryID:   req.DeliveryID,
	}
	var status model.OrderStatus
	if req.Status != nil {
		status, err = model.ParseOrderStatus(*req.Status)
		if err != nil {
			return rs, ginext.NewError(http.StatusBadRequest, err.Error())
		}
		update.Status = &status
		if status == model.OrderStatusDelivered && current.DeliveryDate == nil {
			update.DeliveryDate = valid.TimePointer(time.Now().UTC())
		}
	}
	if req.PaymentStatus != nil {
		payment := model.PaymentStatus(*req.PaymentStatus)
		if payment != model.PaymentStatusPending && payment != model.PaymentStatusPaid && payment != model.PaymentStatusFailed {
			return rs, ginext.NewError(http.StatusBadRequest, fmt.Sprintf("unknown payment status: %s", *req.PaymentStatus))
		}
		update.PaymentStatus = &payment
	}

	rs, err = s.repo.UpdateOrder(ctx, orderID, update)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Order not found")
		}
		log.WithError(err).Error("error_500: update order in UpdateOrder - OrderService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	if req.Status != nil && status == model.OrderStatusDelivered {
		s.syncDeliveredDelivery(ctx, rs)
	}
	return rs, nil
}

// syncDeliveredDelivery marks the order's delivery record delivered when the
// order was closed from the admin side. Absence of a delivery record is fine.
func (s *OrderService) syncDeliveredDelivery(ctx context.Context, order model.Order) {
	log := logger.WithCtx(ctx, "OrderService.syncDeliveredDelivery")

	delivery, err := s.repo.GetDeliveryByOrderID(ctx, order.ID)
	if err != nil {
		if !errors.Is(err, repo.ErrRecordNotFound) {
			log.WithError(err).Errorf("Fail to load delivery for order %v", order.ID.Hex())
		}
		return
	}
	if delivery.Status == model.DeliveryStatusDelivered {
		return
	}
	status := model.DeliveryStatusDelivered
	update := model.DeliveryUpdate{Status: &status}
	if delivery.DeliveredAt == nil {
		update.DeliveredAt = valid.TimePointer(time.Now().UTC())
	}
	if _, err = s.repo.UpdateDelivery(ctx, delivery.ID, update); err != nil {
		log.WithError(err).Errorf("Fail to sync delivery %v to delivered", delivery.ID.Hex())
	}
}

// MarkOrderPaid confirms payment: the order moves to paid on both axes, the
// customer gets a confirmation and every admin gets an assignment prompt.
// An unknown order produces a 404 and no notifications.
func (s *OrderService) MarkOrderPaid(ctx context.Context, req model.OrderActionReq) (rs model.Order, err error) {
	log := logger.WithCtx(ctx, "OrderService.MarkOrderPaid")

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid order id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid order ID format")
	}

	status := model.OrderStatusPaid
	payment := model.PaymentStatusPaid
	rs, err = s.repo.UpdateOrder(ctx, orderID, model.OrderUpdate{Status: &status, PaymentStatus: &payment})
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Order not found")
		}
		log.WithError(err).Error("error_500: update order in MarkOrderPaid - OrderService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	orderRef := utils.ShortID(rs.ID.Hex())
	customerName := utils.FirstNonEmpty(rs.CustomerName, utils.DEFAULT_CUSTOMER_NAME)
	notifyAdmins(ctx, s.repo, utils.TITLE_ORDER_READY,
		fmt.Sprintf(utils.MESS_ORDER_READY, orderRef, customerName))
	if !rs.CustomerID.IsZero() {
		notifyUser(ctx, s.repo, rs.CustomerID, utils.TITLE_PAYMENT_CONFIRMED,
			fmt.Sprintf(utils.MESS_PAYMENT_CONFIRMED, orderRef), model.NOTIFY_TYPE_SUCCESS)
	}
	return rs, nil
}

func (s *OrderService) PackOrder(ctx context.Context, req model.OrderActionReq) (rs model.Order, err error) {
	return s.setOrderStatus(ctx, req.OrderID, model.OrderStatusPacked)
}

func (s *OrderService) DispatchOrder(ctx context.Context, req model.OrderActionReq) (rs model.Order, err error) {
	return s.setOrderStatus(ctx, req.OrderID, model.OrderStatusDispatched)
}

func (s *OrderService) setOrderStatus(ctx context.Context, id string, status model.OrderStatus) (rs model.Order, err error) {
	log := logger.WithCtx(ctx, "OrderService.setOrderStatus")

	orderID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid order ID format")
	}
	rs, err = s.repo.UpdateOrder(ctx, orderID, model.OrderUpdate{Status: &status})
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Order not found")
		}
		log.WithError(err).Errorf("error_500: fail to set order %v to %v", id, status)
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return rs, nil
}
