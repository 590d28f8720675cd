package service

import (
	"context"

	"gitlab.com/goxp/cloud0/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

// notifyUser persists one notification and mirrors it to the webhook.
// Failures are logged and swallowed; a notification must never fail the
// business write that triggered it.
func notifyUser(ctx context.Context, store repo.StoreInterface, userID primitive.ObjectID, title, message, kind string) {
	log := logger.WithCtx(ctx, "service.notifyUser")

	notification := model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	}
	if err := store.CreateNotification(ctx, &notification); err != nil {
		log.WithError(err).Errorf("Fail to create notification %q for user %v", title, userID.Hex())
		return
	}
	utils.PushNotificationEvent(utils.NotificationEvent{
		UserID:  userID.Hex(),
		Title:   title,
		Message: message,
		Type:    kind,
	})
}

// notifyAdmins fans one message out to every admin account.
func notifyAdmins(ctx context.Context, store repo.StoreInterface, title, message string) {
	log := logger.WithCtx(ctx, "service.notifyAdmins")

	admins, err := store.GetUsers(ctx, model.UserParam{Role: model.ROLE_ADMIN})
	if err != nil {
		log.WithError(err).Error("Fail to list admins for notification fan-out")
		return
	}
	for _, admin := range admins {
		notifyUser(ctx, store, admin.ID, title, message, model.NOTIFY_TYPE_INFO)
	}
}
