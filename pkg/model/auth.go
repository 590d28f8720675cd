package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type AccessTokenClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type LoginReq struct {
	Email        string `json:"email" valid:"Required"`
	Password     string `json:"password" valid:"Required"`
	ExpectedRole string `json:"expected_role"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// AuthUser is the trimmed-down user payload returned by auth endpoints.
type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
}

type CreateTokenRequest struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	Email   string `json:"email"`
	NumHour int    `json:"num_hour"`
}
