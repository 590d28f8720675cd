package handlers

import (
	"net/http"

	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/service"
)

type OrderHandlers struct {
	service service.OrderServiceInterface
}

func NewOrderHandlers(service service.OrderServiceInterface) *OrderHandlers {
	return &OrderHandlers{service: service}
}

func (h *OrderHandlers) CreateOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.CreateOrder")

	req := model.OrderBody{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.CreateOrder(r.Context(), req)
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

func (h *OrderHandlers) GetOrders(r *ginext.Request) (*ginext.Response, error) {
	param := model.OrderParam{}
	if err := r.GinCtx.BindQuery(&param); err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, total, err := h.service.GetOrders(r.Context(), param)
	if err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: model.OrderListResponse{Orders: rs, Total: total},
		},
	}, nil
}

func (h *OrderHandlers) GetOneOrder(r *ginext.Request) (*ginext.Response, error) {
	rs, err := h.service.GetOneOrder(r.Context(), r.GinCtx.Param("id"))
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

func (h *OrderHandlers) UpdateOrder(r *ginext.Request) (*ginext.Response, error) {
	req := model.UpdateOrderReq{}
	r.MustBind(&req)

	rs, err := h.service.UpdateOrder(r.Context(), r.GinCtx.Param("id"), req)
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

// MarkOrderPaid confirms payment for the order in the path.
func (h *OrderHandlers) MarkOrderPaid(r *ginext.Request) (*ginext.Response, error) {
	rs, err := h.service.MarkOrderPaid(r.Context(), model.OrderActionReq{OrderID: r.GinCtx.Param("id")})
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

func (h *OrderHandlers) PackOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.PackOrder")

	req := model.OrderActionReq{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.PackOrder(r.Context(), req)
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

func (h *OrderHandlers) DispatchOrder(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "OrderHandlers.DispatchOrder")

	req := model.OrderActionReq{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.DispatchOrder(r.Context(), req)
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
