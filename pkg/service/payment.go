package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
	"agrifresh/ms-marketplace/pkg/valid"
)

type PaymentService struct {
	repo     repo.StoreInterface
	orderSvc OrderServiceInterface
}

func NewPaymentService(repo repo.StoreInterface, orderSvc OrderServiceInterface) PaymentServiceInterface {
	return &PaymentService{repo: repo, orderSvc: orderSvc}
}

type PaymentServiceInterface interface {
	CreatePayment(ctx context.Context, req model.PaymentBody) (rs model.Payment, err error)
	UpdatePayment(ctx context.Context, req model.UpdatePaymentReq) (rs model.Payment, err error)
}

// CreatePayment opens a pending payment for an order. The amount defaults to
// the order total when the caller leaves it zero.
func (s *PaymentService) CreatePayment(ctx context.Context, req model.PaymentBody) (rs model.Payment, err error) {
	log := logger.WithCtx(ctx, "PaymentService.CreatePayment")

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid order id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid order ID format")
	}
	customerID, err := primitive.ObjectIDFromHex(req.CustomerID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid customer id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid customer ID format")
	}

	order, err := s.repo.GetOneOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Order not found")
		}
		return rs, err
	}

	payment := model.Payment{
		OrderID:    orderID,
		CustomerID: customerID,
		Amount:     req.Amount,
		Method:     utils.FirstNonEmpty(req.Method, "cash"),
		Status:     model.PaymentStatusPending,
		Reference:  uuid.New().String(),
	}
	if payment.Amount == 0 {
		payment.Amount = order.TotalAmount
	}
	if err = s.repo.CreatePayment(ctx, &payment); err != nil {
		log.WithError(err).Error("error_500: create payment in CreatePayment - PaymentService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return payment, nil
}

// UpdatePayment settles or fails a payment. A payment that moves to paid
// stamps paidAt and marks the owning order paid, which runs that operation's
// notification fan-out.
func (s *PaymentService) UpdatePayment(ctx context.Context, req model.UpdatePaymentReq) (rs model.Payment, err error) {
	log := logger.WithCtx(ctx, "PaymentService.UpdatePayment")

	paymentID, err := primitive.ObjectIDFromHex(req.PaymentID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid payment id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid payment ID format")
	}
	status := model.PaymentStatus(req.Status)
	if status != model.PaymentStatusPending && status != model.PaymentStatusPaid && status != model.PaymentStatusFailed {
		return rs, ginext.NewError(http.StatusBadRequest, "unknown payment status: "+req.Status)
	}

	update := model.PaymentUpdate{Status: &status}
	if req.TransactionID != "" {
		update.TransactionID = valid.StringPointer(req.TransactionID)
	}
	if status == model.PaymentStatusPaid {
		update.PaidAt = valid.TimePointer(time.Now().UTC())
	}

	rs, err = s.repo.UpdatePayment(ctx, paymentID, update)
	if err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return rs, ginext.NewError(http.StatusNotFound, "Payment not found")
		}
		log.WithError(err).Error("error_500: update payment in UpdatePayment - PaymentService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	if status == model.PaymentStatusPaid {
		if _, err := s.orderSvc.MarkOrderPaid(ctx, model.OrderActionReq{OrderID: rs.OrderID.Hex()}); err != nil {
			log.WithError(err).Errorf("Fail to mark order %v paid after payment %v", rs.OrderID.Hex(), rs.ID.Hex())
		}
	}
	return rs, nil
}
