package handlers

import (
	"net/http"

	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/service"
)

type DeliveryHandlers struct {
	service service.DeliveryServiceInterface
}

func NewDeliveryHandlers(service service.DeliveryServiceInterface) *DeliveryHandlers {
	return &DeliveryHandlers{service: service}
}

func (h *DeliveryHandlers) GetDeliveries(r *ginext.Request) (*ginext.Response, error) {
	param := model.DeliveryParam{}
	if err := r.GinCtx.BindQuery(&param); err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.GetDeliveries(r.Context(), param)
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

func (h *DeliveryHandlers) CreateDelivery(r *ginext.Request) (*ginext.Response, error) {
	delivery := model.Delivery{}
	r.MustBind(&delivery)

	rs, err := h.service.CreateDelivery(r.Context(), delivery)
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

// AssignDelivery binds an agent to an order and starts the delivery workflow.
func (h *DeliveryHandlers) AssignDelivery(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "DeliveryHandlers.AssignDelivery")

	req := model.AssignDeliveryReq{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.AssignDelivery(r.Context(), req)
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

// UpdateDeliveryStatus is the agent-side transition endpoint.
func (h *DeliveryHandlers) UpdateDeliveryStatus(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "DeliveryHandlers.UpdateDeliveryStatus")

	req := model.UpdateDeliveryStatusReq{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.UpdateDeliveryStatus(r.Context(), req)
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

func (h *DeliveryHandlers) UpdateDelivery(r *ginext.Request) (*ginext.Response, error) {
	req := model.UpdateDeliveryReq{}
	r.MustBind(&req)

	rs, err := h.service.UpdateDelivery(r.Context(), r.GinCtx.Param("id"), req)
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
