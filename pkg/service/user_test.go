package service

import (
	"context"
	"strings"
	"testing"

	"agrifresh/ms-marketplace/conf"
	"agrifresh/ms-marketplace/pkg/model"
	"agrifresh/ms-marketplace/pkg/repo"
	"agrifresh/ms-marketplace/pkg/utils"
)

func newUserService(t *testing.T) UserServiceInterface {
	t.Helper()
	conf.SetEnv()
	utils.LoadMessageError()
	return NewUserService(repo.NewMemRepo())
}

func TestUserService_Register(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()
	svc := NewUserService(store)

	rs, err := svc.Register(ctx, model.RegisterUserReq{
		Name:     "Asha Rao",
		Email:    "  Asha@Example.COM ",
		Password: "secret123",
		Phone:    "9876500001",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if rs.Email != "asha@example.com" {
		t.Errorf("email = %v, want normalized asha@example.com", rs.Email)
	}
	if rs.Role != model.ROLE_CUSTOMER {
		t.Errorf("role = %v, want default customer", rs.Role)
	}

	saved, err := store.GetOneUserByEmail(ctx, "asha@example.com")
	if err != nil {
		t.Fatalf("GetOneUserByEmail: %v", err)
	}
	if saved.Name != "Asha Rao" || saved.Phone != "9876500001" {
		t.Errorf("saved user = %v/%v, want Asha Rao/9876500001", saved.Name, saved.Phone)
	}
	if saved.Password == "" || saved.Password == "secret123" {
		t.Error("password stored in plain text or missing")
	}
	if saved.Status != model.USER_STATUS_ACTIVE || saved.Verified {
		t.Errorf("saved status/verified = %v/%v, want active/false", saved.Status, saved.Verified)
	}

	// same address again, different casing
	_, err = svc.Register(ctx, model.RegisterUserReq{Name: "Imposter", Email: "ASHA@example.com", Password: "secret123"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("duplicate register error = %v, want already registered", err)
	}

	if _, err = svc.Register(ctx, model.RegisterUserReq{Name: "X", Email: "not-an-email", Password: "secret123"}); err == nil {
		t.Error("expected error for invalid email")
	}
	if _, err = svc.Register(ctx, model.RegisterUserReq{Name: "X", Email: "x@example.com", Password: "short"}); err == nil {
		t.Error("expected error for short password")
	}
	if _, err = svc.Register(ctx, model.RegisterUserReq{Name: "X", Email: "y@example.com", Password: "secret123", Role: "superuser"}); err == nil {
		t.Error("expected error for unknown role")
	}
}

// Role-specific profile fields must make it into the stored document.
func TestUserService_Register_RoleFields(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()
	svc := NewUserService(store)

	if _, err := svc.Register(ctx, model.RegisterUserReq{
		Name:     "Green Valley",
		Email:    "farm@example.com",
		Password: "secret123",
		Role:     model.ROLE_FARMER,
		FarmName: "Green Valley Organics",
	}); err != nil {
		t.Fatalf("Register farmer: %v", err)
	}
	farmer, err := store.GetOneUserByEmail(ctx, "farm@example.com")
	if err != nil {
		t.Fatalf("GetOneUserByEmail: %v", err)
	}
	if farmer.FarmName != "Green Valley Organics" {
		t.Errorf("farm name = %q, want Green Valley Organics", farmer.FarmName)
	}

	if _, err := svc.Register(ctx, model.RegisterUserReq{
		Name:           "Ravi Kumar",
		Email:          "ravi@example.com",
		Password:       "secret123",
		Role:           model.ROLE_DELIVERY,
		VehicleType:    "bike",
		VehicleLicense: "KA-01-AB-1234",
	}); err != nil {
		t.Fatalf("Register agent: %v", err)
	}
	agent, err := store.GetOneUserByEmail(ctx, "ravi@example.com")
	if err != nil {
		t.Fatalf("GetOneUserByEmail: %v", err)
	}
	if agent.VehicleType != "bike" || agent.VehicleLicense != "KA-01-AB-1234" {
		t.Errorf("vehicle = %v/%v, want bike/KA-01-AB-1234", agent.VehicleType, agent.VehicleLicense)
	}
}

func TestUserService_Login(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, model.RegisterUserReq{
		Name:     "Green Valley",
		Email:    "farm@example.com",
		Password: "secret123",
		Role:     model.ROLE_FARMER,
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	rs, err := svc.Login(ctx, model.LoginReq{Email: "farm@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if rs.Token == "" {
		t.Fatal("login returned empty token")
	}
	if rs.User.Role != model.ROLE_FARMER {
		t.Errorf("user role = %v, want farmer", rs.User.Role)
	}

	claims, err := svc.ParseAccessToken(rs.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if claims.Role != model.ROLE_FARMER || claims.Email != "farm@example.com" {
		t.Errorf("claims = %+v, want farmer/farm@example.com", claims)
	}
	if claims.Subject != rs.User.ID {
		t.Errorf("token subject = %v, want %v", claims.Subject, rs.User.ID)
	}

	if _, err = svc.Login(ctx, model.LoginReq{Email: "farm@example.com", Password: "wrongpass"}); err == nil {
		t.Error("expected error for wrong password")
	}
	if _, err = svc.Login(ctx, model.LoginReq{Email: "ghost@example.com", Password: "secret123"}); err == nil {
		t.Error("expected error for unknown email")
	}

	_, err = svc.Login(ctx, model.LoginReq{Email: "farm@example.com", Password: "secret123", ExpectedRole: model.ROLE_CUSTOMER})
	if err == nil || !strings.Contains(err.Error(), "registered as farmer") {
		t.Errorf("role mismatch error = %v, want registered-as message", err)
	}
}

func TestUserService_ParseAccessToken_Garbage(t *testing.T) {
	svc := newUserService(t)
	if _, err := svc.ParseAccessToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestUserService_ApproveFarmer(t *testing.T) {
	conf.SetEnv()
	utils.LoadMessageError()

	ctx := context.Background()
	store := repo.NewMemRepo()
	svc := NewUserService(store)

	farmer := model.User{Name: "Green Valley", Email: "farm@example.com", Role: model.ROLE_FARMER}
	if err := store.CreateUser(ctx, &farmer); err != nil {
		t.Fatalf("seed farmer: %v", err)
	}

	if err := svc.ApproveFarmer(ctx, farmer.ID.Hex()); err != nil {
		t.Fatalf("ApproveFarmer: %v", err)
	}
	approved, err := store.GetOneUserByID(ctx, farmer.ID)
	if err != nil {
		t.Fatalf("GetOneUserByID: %v", err)
	}
	if !approved.Verified {
		t.Error("farmer not marked verified")
	}

	if err := svc.ApproveFarmer(ctx, "bad-id"); err == nil {
		t.Error("expected error for malformed id")
	}
}
