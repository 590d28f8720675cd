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

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
	"agrifresh/ms-marketplace/pkg/valid"
)

// DeliveryService owns the order/delivery/notification status-transition
// workflow: a delivery status change is the write of record, the order status
// is a projection of it, and notifications fan out to the affected parties.
type DeliveryService struct {
	repo repo.StoreInterface
}

func NewDeliveryService(repo repo.StoreInterface) DeliveryServiceInterface {
	return &DeliveryService{repo: repo}
}

type DeliveryServiceInterface interface {
	AssignDelivery(ctx context.Context, req model.AssignDeliveryReq) (rs model.Delivery, err error)
	UpdateDeliveryStatus(ctx context.Context, req model.UpdateDeliveryStatusReq) (rs model.Delivery, err error)
	UpdateDelivery(ctx context.Context, id string, req model.UpdateDeliveryReq) (rs model.Delivery, err error)
	GetDeliveries(ctx context.Context, param model.DeliveryParam) (rs []model.Delivery, err error)
	CreateDelivery(ctx context.Context, delivery model.Delivery) (rs model.Delivery, err error)
}

// AssignDelivery creates the delivery record for an order and cascades the
// "assigned" transition: order goes to dispatched, agent and customer are
// notified.
func (s *DeliveryService) AssignDelivery(ctx context.Context, req model.AssignDeliveryReq) (rs model.Delivery, err error) {
	log := logger.WithCtx(ctx, "DeliveryService.AssignDelivery")

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid order id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid order ID format")
	}
	agentID, err := primitive.ObjectIDFromHex(req.DeliveryAgentID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid delivery agent id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid delivery agent ID format")
	}

	order, err := s.repo.GetOneOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Order not found")
		}
		return rs, err
	}

	delivery := model.Delivery{
		OrderID:          orderID,
		DeliveryAgentID:  agentID,
		AgentName:        utils.FirstNonEmpty(req.AgentName, utils.DEFAULT_AGENT_NAME),
		CustomerName:     utils.FirstNonEmpty(req.CustomerName, order.CustomerName, utils.DEFAULT_CUSTOMER_NAME),
		Status:           model.DeliveryStatusAssigned,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		ETA:              time.Now().UTC().Add(time.Duration(conf.LoadEnv().DeliveryETAHours) * time.Hour),
	}
	if err = s.repo.CreateDelivery(ctx, &delivery); err != nil {
		log.WithError(err).Error("error_500: create delivery in AssignDelivery - DeliveryService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	s.projectOrder(ctx, order, delivery, model.DeliveryStatusAssigned)
	s.notifyTransition(ctx, order, delivery, model.DeliveryStatusAssigned)

	return delivery, nil
}

// UpdateDeliveryStatus is the coordinator entry point for agent-driven status
// changes. The delivery write is the write of record; the order projection
// and the notification fan-out follow it, and notification failures never
// fail the transition.
func (s *DeliveryService) UpdateDeliveryStatus(ctx context.Context, req model.UpdateDeliveryStatusReq) (rs model.Delivery, err error) {
	log := logger.WithCtx(ctx, "DeliveryService.UpdateDeliveryStatus")

	id, err := primitive.ObjectIDFromHex(req.DeliveryID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid delivery id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid delivery ID format")
	}
	status, err := model.ParseDeliveryStatus(req.Status)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid delivery status")
		return rs, ginext.NewError(http.StatusBadRequest, err.Error())
	}

	current, err := s.repo.GetOneDelivery(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Delivery not found")
		}
		return rs, err
	}

	update := model.DeliveryUpdate{Status: &status}
	if req.CurrentLat != nil && req.CurrentLng != nil {
		update.CurrentLat = req.CurrentLat
		update.CurrentLng = req.CurrentLng
	}
	if req.Remarks != "" {
		update.Remarks = valid.StringPointer(req.Remarks)
	}
	applyStatusSideEffects(&update, current, status)

	delivery, err := s.repo.UpdateDelivery(ctx, id, update)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Delivery not found")
		}
		log.WithError(err).Error("error_500: update delivery in UpdateDeliveryStatus - DeliveryService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	s.cascade(ctx, delivery, status)

	return delivery, nil
}

// UpdateDelivery handles the admin PUT: agent (re)assignment and field
// updates. A status change rides the same cascade as UpdateDeliveryStatus.
func (s *DeliveryService) UpdateDelivery(ctx context.Context, deliveryID string, req model.UpdateDeliveryReq) (rs model.Delivery, err error) {
	log := logger.WithCtx(ctx, "DeliveryService.UpdateDelivery")

	id, err := primitive.ObjectIDFromHex(deliveryID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid delivery id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid delivery ID format")
	}

	current, err := s.repo.GetOneDelivery(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Delivery not found")
		}
		return rs, err
	}

	update := model.DeliveryUpdate{
		AgentName:        req.AgentName,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		ETA:              req.ETA,
		Remarks:          req.Remarks,
	}
	if req.AgentID != nil {
		agentID, err := primitive.ObjectIDFromHex(*req.AgentID)
		if err != nil {
			return rs, ginext.NewError(http.StatusBadRequest, "Invalid delivery agent ID format")
		}
		update.AgentID = &agentID
	}

	var status model.DeliveryStatus
	if req.Status != nil {
		status, err = model.ParseDeliveryStatus(*req.Status)
		if err != nil {
			return rs, ginext.NewError(http.StatusBadRequest, err.Error())
		}
		update.Status = &status
		applyStatusSideEffects(&update, current, status)
	}

	delivery, err := s.repo.UpdateDelivery(ctx, id, update)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Delivery not found")
		}
		log.WithError(err).Error("error_500: update delivery in UpdateDelivery - DeliveryService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	if req.Status != nil {
		s.cascade(ctx, delivery, status)
	}

	return delivery, nil
}

func (s *DeliveryService) GetDeliveries(ctx context.Context, param model.DeliveryParam) ([]model.Delivery, error) {
	if param.Status != "" {
		status, err := model.ParseDeliveryStatus(param.Status)
		if err != nil {
			return nil, ginext.NewError(http.StatusBadRequest, err.Error())
		}
		param.Status = string(status)
	}
	return s.repo.GetDeliveries(ctx, param)
}

func (s *DeliveryService) CreateDelivery(ctx context.Context, delivery model.Delivery) (rs model.Delivery, err error) {
	log := logger.WithCtx(ctx, "DeliveryService.CreateDelivery")

	if delivery.Status == "" {
		delivery.Status = model.DeliveryStatusPending
	}
	if delivery.AgentName == "" {
		delivery.AgentName = model.AgentUnassigned
	}
	if err = s.repo.CreateDelivery(ctx, &delivery); err != nil {
		log.WithError(err).Error("error_500: create delivery in CreateDelivery - DeliveryService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return delivery, nil
}

// applyStatusSideEffects stamps deliveredAt exactly once and clears the agent
// assignment on rejection so the admin can re-assign.
func applyStatusSideEffects(update *model.DeliveryUpdate, current model.Delivery, status model.DeliveryStatus) {
	if status == model.DeliveryStatusDelivered && current.DeliveredAt == nil {
		update.DeliveredAt = valid.TimePointer(time.Now().UTC())
	}
	if status == model.DeliveryStatusRejected {
		unassigned := primitive.NilObjectID
		update.AgentID = &unassigned
		update.AgentName = valid.StringPointer(model.AgentUnassigned)
	}
}

// cascade projects the delivery status onto the owning order and fans out the
// notifications for it. Failures here are logged, never returned: the
// delivery write already happened and must not be rolled back by its
// followers.
func (s *DeliveryService) cascade(ctx context.Context, delivery model.Delivery, status model.DeliveryStatus) {
	log := logger.WithCtx(ctx, "DeliveryService.cascade")

	order, err := s.repo.GetOneOrder(ctx, delivery.OrderID)
	if err != nil {
		log.WithError(err).Errorf("Order %v not found while cascading delivery %v", delivery.OrderID.Hex(), delivery.ID.Hex())
		return
	}

	s.projectOrder(ctx, order, delivery, status)
	s.notifyTransition(ctx, order, delivery, status)
}

// projectOrder writes the derived order status when it differs from the
// current one; "delivered" also stamps the order's delivery date once.
func (s *DeliveryService) projectOrder(ctx context.Context, order model.Order, delivery model.Delivery, status model.DeliveryStatus) {
	log := logger.WithCtx(ctx, "DeliveryService.projectOrder")

	derived, ok := status.OrderStatus()
	if !ok || derived == order.Status {
		return
	}

	update := model.OrderUpdate{Status: &derived}
	if status == model.DeliveryStatusAssigned {
		update.DeliveryID = valid.StringPointer(delivery.ID.Hex())
	}
	if status == model.DeliveryStatusDelivered && order.DeliveryDate == nil {
		update.DeliveryDate = valid.TimePointer(time.Now().UTC())
	}
	if _, err := s.repo.UpdateOrder(ctx, order.ID, update); err != nil {
		log.WithError(err).Errorf("Fail to project status %v onto order %v", derived, order.ID.Hex())
	}
}

// notifyTransition fans out the notification set for a transition. Every
// write is independent and tolerated on failure.
func (s *DeliveryService) notifyTransition(ctx context.Context, order model.Order, delivery model.Delivery, status model.DeliveryStatus) {
	orderRef := utils.ShortID(order.ID.Hex())
	customerName := utils.FirstNonEmpty(delivery.CustomerName, order.CustomerName, utils.DEFAULT_CUSTOMER_NAME)
	agentName := utils.FirstNonEmpty(delivery.AgentName, utils.DEFAULT_AGENT_NAME)

	switch status {
	case model.DeliveryStatusAssigned:
		if !delivery.DeliveryAgentID.IsZero() {
			notifyUser(ctx, s.repo, delivery.DeliveryAgentID, utils.TITLE_DELIVERY_ASSIGNED,
				fmt.Sprintf(utils.MESS_DELIVERY_ASSIGNED, orderRef, customerName), model.NOTIFY_TYPE_INFO)
		}
		if !order.CustomerID.IsZero() {
			notifyUser(ctx, s.repo, order.CustomerID, utils.TITLE_AGENT_ASSIGNED,
				fmt.Sprintf(utils.MESS_AGENT_ASSIGNED, orderRef, agentName), model.NOTIFY_TYPE_INFO)
		}
	case model.DeliveryStatusAccepted:
		if !order.CustomerID.IsZero() {
			notifyUser(ctx, s.repo, order.CustomerID, utils.TITLE_AGENT_ACCEPTED,
				fmt.Sprintf(utils.MESS_AGENT_ACCEPTED, agentName, orderRef), model.NOTIFY_TYPE_INFO)
		}
	case model.DeliveryStatusPicked:
		if !order.FarmerID.IsZero() {
			notifyUser(ctx, s.repo, order.FarmerID, utils.TITLE_PRODUCT_PICKED,
				fmt.Sprintf(utils.MESS_PRODUCT_PICKED, orderRef, agentName), model.NOTIFY_TYPE_INFO)
		}
	case model.DeliveryStatusArrived:
		if !order.CustomerID.IsZero() {
			notifyUser(ctx, s.repo, order.CustomerID, utils.TITLE_AGENT_NEAR,
				fmt.Sprintf(utils.MESS_AGENT_NEAR, agentName, orderRef), model.NOTIFY_TYPE_INFO)
		}
	case model.DeliveryStatusDelivered:
		if !order.CustomerID.IsZero() {
			notifyUser(ctx, s.repo, order.CustomerID, utils.TITLE_ORDER_DELIVERED,
				fmt.Sprintf(utils.MESS_ORDER_DELIVERED, orderRef, agentName), model.NOTIFY_TYPE_SUCCESS)
		}
		if !order.FarmerID.IsZero() {
			notifyUser(ctx, s.repo, order.FarmerID, utils.TITLE_PRODUCT_DELIVERED,
				fmt.Sprintf(utils.MESS_PRODUCT_DELIVERED, customerName, orderRef), model.NOTIFY_TYPE_SUCCESS)
		}
		notifyAdmins(ctx, s.repo, utils.TITLE_DELIVERY_COMPLETED,
			fmt.Sprintf(utils.MESS_DELIVERY_COMPLETED, orderRef, customerName, agentName))
	}
}
