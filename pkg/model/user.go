package model

type User struct {
	BaseModel `bson:",inline"`
	Name      string   `json:"name" bson:"name" valid:"Required"`
	Email     string   `json:"email" bson:"email" valid:"Required"`
	Password  string   `json:"-" bson:"password"`
	Phone     string   `json:"phone" bson:"phone"`
	Role      string   `json:"role" bson:"role"`
	Status    string   `json:"status" bson:"status"`
	Verified  bool     `json:"verified" bson:"verified"`
	Address   string   `json:"address,omitempty" bson:"address,omitempty"`
	// farmer
	FarmName        string `json:"farm_name,omitempty" bson:"farmName,omitempty"`
	YearsExperience int    `json:"years_experience,omitempty" bson:"yearsExperience,omitempty"`
	// delivery agent
	VehicleType    string `json:"vehicle_type,omitempty" bson:"vehicleType,omitempty"`
	VehicleLicense string `json:"vehicle_license,omitempty" bson:"vehicleLicense,omitempty"`
	Area           string `json:"area,omitempty" bson:"area,omitempty"`
	// admin
	Permissions []string `json:"permissions,omitempty" bson:"permissions,omitempty"`
	Department  string   `json:"department,omitempty" bson:"department,omitempty"`
}

const (
	ROLE_ADMIN    = "admin"
	ROLE_FARMER   = "farmer"
	ROLE_CUSTOMER = "customer"
	ROLE_DELIVERY = "delivery"
)

const (
	USER_STATUS_ACTIVE   = "active"
	USER_STATUS_INACTIVE = "inactive"
)

// Define your request body here
type RegisterUserReq struct {
	Name     string `json:"name" valid:"Required"`
	Email    string `json:"email" valid:"Required"`
	Password string `json:"password" valid:"Required"`
	Phone    string `json:"phone" valid:"Required"`
	Role     string `json:"role"`
	FarmName string `json:"farm_name"`
	// delivery agent
	VehicleType    string `json:"vehicle_type"`
	VehicleLicense string `json:"vehicle_license"`
}

type UpdateUserReq struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Status   *string `json:"status"`
	FarmName *string `json:"farm_name"`
	Verified *bool   `json:"verified"`
}

type ApproveFarmerReq struct {
	FarmerID string `json:"farmer_id" valid:"Required"`
}

// Define your request param here
type UserParam struct {
	Role   string `json:"role" form:"role"`
	Status string `json:"status" form:"status"`
	Search string `json:"search" form:"search"`
}
