package handlers

import (
	"net/http"

	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/service"
)

type UserHandlers struct {
	service service.UserServiceInterface
}

func NewUserHandlers(service service.UserServiceInterface) *UserHandlers {
	return &UserHandlers{service: service}
}

// Register creates an account with email and password; role defaults to customer.
func (h *UserHandlers) Register(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "UserHandlers.Register")

	req := model.RegisterUserReq{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.Register(r.Context(), req)
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

func (h *UserHandlers) Login(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "UserHandlers.Login")

	req := model.LoginReq{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.Login(r.Context(), req)
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

func (h *UserHandlers) GetUsers(r *ginext.Request) (*ginext.Response, error) {
	param := model.UserParam{}
	if err := r.GinCtx.BindQuery(&param); err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	rs, err := h.service.GetUsers(r.Context(), param)
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

func (h *UserHandlers) GetOneUser(r *ginext.Request) (*ginext.Response, error) {
	id, err := primitive.ObjectIDFromHex(r.GinCtx.Param("id"))
	if err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid user ID format")
	}

	rs, err := h.service.GetOneUserByID(r.Context(), id)
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

func (h *UserHandlers) UpdateUser(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "UserHandlers.UpdateUser")

	id, err := primitive.ObjectIDFromHex(r.GinCtx.Param("id"))
	if err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid user ID format")
	}

	req := model.UpdateUserReq{}
	r.MustBind(&req)

	rs, err := h.service.UpdateUser(r.Context(), id, req)
	if err != nil {
		return nil, err
	}
	log.Infof("Updated user %v", id.Hex())

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: rs,
		},
	}, nil
}

func (h *UserHandlers) DeleteUser(r *ginext.Request) (*ginext.Response, error) {
	id, err := primitive.ObjectIDFromHex(r.GinCtx.Param("id"))
	if err != nil {
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid user ID format")
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: "User deleted",
		},
	}, nil
}

// ApproveFarmer flips a farmer account to verified so their products go live.
func (h *UserHandlers) ApproveFarmer(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "UserHandlers.ApproveFarmer")

	req := model.ApproveFarmerReq{}
	r.MustBind(&req)
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := h.service.ApproveFarmer(r.Context(), req.FarmerID); err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: "Farmer approved",
		},
	}, nil
}
