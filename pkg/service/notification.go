package service

import (
	"context"
	"errors"
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

type NotificationService struct {
	repo repo.StoreInterface
}

func NewNotificationService(repo repo.StoreInterface) NotificationServiceInterface {
	return &NotificationService{repo: repo}
}

type NotificationServiceInterface interface {
	CreateNotification(ctx context.Context, req model.NotificationBody) (rs model.Notification, err error)
	GetNotifications(ctx context.Context, param model.NotificationParam) (rs []model.Notification, err error)
	MarkNotificationRead(ctx context.Context, id string, req model.MarkReadReq) error
}

func (s *NotificationService) CreateNotification(ctx context.Context, req model.NotificationBody) (rs model.Notification, err error) {
	log := logger.WithCtx(ctx, "NotificationService.CreateNotification")

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid user id")
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid user ID format")
	}

	notification := model.Notification{
		UserID:  userID,
		Title:   req.Title,
		Message: req.Message,
		Type:    utils.FirstNonEmpty(req.Type, model.NOTIFY_TYPE_INFO),
	}
	if err = s.repo.CreateNotification(ctx, &notification); err != nil {
		log.WithError(err).Error("error_500: create notification in CreateNotification - NotificationService")
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return notification, nil
}

func (s *NotificationService) GetNotifications(ctx context.Context, param model.NotificationParam) ([]model.Notification, error) {
	return s.repo.GetNotifications(ctx, param)
}

func (s *NotificationService) MarkNotificationRead(ctx context.Context, id string, req model.MarkReadReq) error {
	notificationID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ginext.NewError(http.StatusBadRequest, "Invalid notification ID format")
	}
	err = s.repo.UpdateNotificationRead(ctx, notificationID, req.Read)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return ginext.NewError(http.StatusNotFound, "Notification not found")
	}
	return err
}
