package handlers

import (
	"net/http"

	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/service"
)

type ProductHandlers struct {
	service service.ProductServiceInterface
}

func NewProductHandlers(service service.ProductServiceInterface) *ProductHandlers {
	return &ProductHandlers{service: service}
}

func (h *ProductHandlers) CreateProduct(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "ProductHandlers.CreateProduct")

	req := model.ProductBody{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.CreateProduct(r.Context(), req)
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

func (h *ProductHandlers) GetProducts(r *ginext.Request) (*ginext.Response, error) {
	param := model.ProductParam{}
	if err := r.GinCtx.BindQuery(&param); err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.GetProducts(r.Context(), param)
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

func (h *ProductHandlers) GetOneProduct(r *ginext.Request) (*ginext.Response, error) {
	rs, err := h.service.GetOneProduct(r.Context(), r.GinCtx.Param("id"))
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

func (h *ProductHandlers) UpdateProduct(r *ginext.Request) (*ginext.Response, error) {
	req := model.UpdateProductReq{}
	r.MustBind(&req)

	rs, err := h.service.UpdateProduct(r.Context(), r.GinCtx.Param("id"), req)
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

func (h *ProductHandlers) DeleteProduct(r *ginext.Request) (*ginext.Response, error) {
	if err := h.service.DeleteProduct(r.Context(), r.GinCtx.Param("id")); err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: "Product deleted",
		},
	}, nil
}
