package handlers

import (
	"net/http"

	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/service"
)

type NotificationHandlers struct {
	service service.NotificationServiceInterface
}

func NewNotificationHandlers(service service.NotificationServiceInterface) *NotificationHandlers {
	return &NotificationHandlers{service: service}
}

func (h *NotificationHandlers) CreateNotification(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "NotificationHandlers.CreateNotification")

	req := model.NotificationBody{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.CreateNotification(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *NotificationHandlers) GetNotifications(r *ginext.Request) (*ginext.Response, error) {
	param := model.NotificationParam{}
	if err := r.GinCtx.BindQuery(&param); err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.GetNotifications(r.Context(), param)
	if err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *NotificationHandlers) MarkNotificationRead(r *ginext.Request) (*ginext.Response, error) {
	// body is optional; an empty PATCH marks the notification read
	req := model.MarkReadReq{Read: true}
	_ = r.GinCtx.ShouldBindJSON(&req)

	if err := h.service.MarkNotificationRead(r.Context(), r.GinCtx.Param("id"), req); err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: "Notification updated",
		},
	}, nil
}
