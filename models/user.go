package models

// UserTypeMerchant is the only user category allowed to obtain tokens.
const UserTypeMerchant = "merchant"

// MerchantUser is a credential subject linked to a merchant.
type MerchantUser struct {
	ID           string `bson:"id" json:"id"`
	Username     string `bson:"username" json:"username"`
	PasswordHash string `bson:"password_hash" json:"-"`
	NsEmployeeID string `bson:"ns_employee_id" json:"ns_employee_id"`
	FullName     string `bson:"full_name" json:"name"`
	Email        string `bson:"email" json:"email"`
	Phone        string `bson:"phone" json:"phone"`
	UserType     string `bson:"user_type" json:"user_type"`
	GiveAccess   bool   `bson:"give_access" json:"give_access"`
	MobileAccess bool   `bson:"mobile_access" json:"mobile_access"`
	MerchantNsID string `bson:"merchant_ns_id" json:"merchant_ns_id"`
	Inactive     bool   `bson:"inactive" json:"inactive"`
	Deleted      bool   `bson:"deleted" json:"deleted"`
}

// UserProfile is the password-free view returned on authentication.
type UserProfile struct {
	NsEmployeeID string `json:"ns_employee_id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	UserType     string `json:"user_type"`
	GiveAccess   bool   `json:"give_access"`
	MobileAccess bool   `json:"mobile_access"`
}

func (u MerchantUser) Profile() UserProfile {
	return UserProfile{
		NsEmployeeID: u.NsEmployeeID,
		Username:     u.Username,
		Name:         u.FullName,
		Email:        u.Email,
		Phone:        u.Phone,
		UserType:     u.UserType,
		GiveAccess:   u.GiveAccess,
		MobileAccess: u.MobileAccess,
	}
}
