package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

type UserService struct {
	repo repo.StoreInterface
}

func NewUserService(repo repo.StoreInterface) UserServiceInterface {
	return &UserService{repo: repo}
}

type UserServiceInterface interface {
	Register(ctx context.Context, req model.RegisterUserReq) (rs model.AuthUser, err error)
	Login(ctx context.Context, req model.LoginReq) (rs model.LoginResponse, err error)
	ParseAccessToken(str string) (*model.AccessTokenClaims, error)
	GetOneUserByID(ctx context.Context, id primitive.ObjectID) (rs model.User, err error)
	GetUsers(ctx context.Context, param model.UserParam) (rs []model.User, err error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req model.UpdateUserReq) (rs model.User, err error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	ApproveFarmer(ctx context.Context, farmerID string) error
}

var validRoles = map[string]bool{
	model.ROLE_ADMIN:    true,
	model.ROLE_FARMER:   true,
	model.ROLE_CUSTOMER: true,
	model.ROLE_DELIVERY: true,
}

func (s *UserService) Register(ctx context.Context, req model.RegisterUserReq) (rs model.AuthUser, err error) {
	log := logger.WithCtx(ctx, "UserService.Register")

	email := utils.NormalizeEmail(req.Email)
	if ok := utils.ValidateEmail(email); !ok {
		log.Error("error_400: Email invalid")
		return rs, ginext.NewError(http.StatusBadRequest, "Email invalid")
	}

	if err = utils.VerifyPassword(req.Password); err != nil {
		log.Error("error_400: Password invalid in Register - UserService")
		return rs, ginext.NewError(http.StatusBadRequest, fmt.Sprintf("Password invalid: %v", err.Error()))
	}

	role := req.Role
	if role == "" {
		role = model.ROLE_CUSTOMER
	}
	if !validRoles[role] {
		log.Errorf("error_400: Invalid role %v", role)
		return rs, ginext.NewError(http.StatusBadRequest, "Invalid role selected")
	}

	user := model.User{
		Name:           req.Name,
		Email:          email,
		Phone:          req.Phone,
		Role:           role,
		Status:         model.USER_STATUS_ACTIVE,
		Verified:       false,
		FarmName:       req.FarmName,
		VehicleType:    req.VehicleType,
		VehicleLicense: req.VehicleLicense,
	}

	hashPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return rs, ginext.NewError(http.StatusBadRequest, "Cannot encode password")
	}
	user.Password = string(hashPass)

	if err = s.repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			log.Error("error_409: This account has been existed")
			return rs, ginext.NewError(http.StatusConflict, "Email already registered")
		}
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return model.AuthUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Phone: user.Phone,
	}, nil
}

func (s *UserService) Login(ctx context.Context, req model.LoginReq) (rs model.LoginResponse, err error) {
	log := logger.WithCtx(ctx, "UserService.Login")

	email := utils.NormalizeEmail(req.Email)
	user, err := s.repo.GetOneUserByEmail(ctx, email)
	if err != nil {
		log.WithError(err).Error("error_401: user not found in Login - UserService")
		return rs, ginext.NewError(http.StatusUnauthorized, "Invalid credentials")
	}

	if user.Password == "" {
		return rs, ginext.NewError(http.StatusUnauthorized, "Invalid credentials")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Error("error_401: Password incorrect in Login - UserService")
		return rs, ginext.NewError(http.StatusUnauthorized, "Invalid credentials")
	}

	if req.ExpectedRole != "" && user.Role != req.ExpectedRole {
		return rs, ginext.NewError(http.StatusForbidden,
			fmt.Sprintf("This account is registered as %v, not %v. Please select the correct role.", user.Role, req.ExpectedRole))
	}

	rs.Token, err = s.CreateToken(model.CreateTokenRequest{
		UserID:  user.ID.Hex(),
		Role:    user.Role,
		Email:   user.Email,
		NumHour: conf.LoadEnv().NumHourExpToken,
	})
	if err != nil {
		return rs, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	rs.User = model.AuthUser{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Phone: user.Phone,
	}
	return rs, nil
}

// CreateToken signs a short-lived HS256 access token
func (s *UserService) CreateToken(req model.CreateTokenRequest) (string, error) {
	now := time.Now()
	claims := &model.AccessTokenClaims{
		Role:  req.Role,
		Email: req.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "ms-marketplace",
			Subject:   req.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(req.NumHour) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(conf.LoadEnv().JWTSecret))
}

func (s *UserService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %s", token.Header["alg"])
	}
	return []byte(conf.LoadEnv().JWTSecret), nil
}

func (s *UserService) ParseAccessToken(str string) (*model.AccessTokenClaims, error) {
	token, err := jwt.ParseWithClaims(str, &model.AccessTokenClaims{}, s.keyFunc)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, _ := token.Claims.(*model.AccessTokenClaims)
	return claims, nil
}

func (s *UserService) GetOneUserByID(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	rs, err := s.repo.GetOneUserByID(ctx, id)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}
	return rs, err
}

func (s *UserService) GetUsers(ctx context.Context, param model.UserParam) ([]model.User, error) {
	return s.repo.GetUsers(ctx, param)
}

func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req model.UpdateUserReq) (model.User, error) {
	rs, err := s.repo.UpdateUser(ctx, id, req)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return rs, ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}
	return rs, err
}

func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	err := s.repo.DeleteUser(ctx, id)
	if errors.Is(err, repo.ErrRecordNotFound) {
		return ginext.NewError(http.StatusNotFound, utils.MessageError()[http.StatusNotFound])
	}
	return err
}

func (s *UserService) ApproveFarmer(ctx context.Context, farmerID string) error {
	log := logger.WithCtx(ctx, "UserService.ApproveFarmer")

	id, err := primitive.ObjectIDFromHex(farmerID)
	if err != nil {
		log.WithError(err).Error("error_400: Invalid farmer id")
		return ginext.NewError(http.StatusBadRequest, "Invalid farmer ID")
	}
	if err = s.repo.ApproveFarmer(ctx, id); err != nil {
		if errors.Is(err, repo.ErrRecordNotFound) {
			return ginext.NewError(http.StatusNotFound, "Farmer not found")
		}
		return err
	}
	return nil
}
