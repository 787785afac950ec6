package domain

import (
	commondomain "github.com/Rapter1990/footballteamapi/internal/common/domain"
)

type UserType string

const (
	UserTypeAdmin UserType = "ADMIN"
	UserTypeUser  UserType = "USER"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusPassive   UserStatus = "PASSIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is the authentication aggregate and the source of every token's
// claim set.
type User struct {
	commondomain.BaseModel

	ID          string     `gorm:"column:id;primaryKey" json:"id"`
	Email       string     `gorm:"column:email;uniqueIndex" json:"email"`
	Password    string     `gorm:"column:password" json:"-"`
	FirstName   string     `gorm:"column:first_name" json:"firstName"`
	LastName    string     `gorm:"column:last_name" json:"lastName"`
	PhoneNumber string     `gorm:"column:phone_number;size:20" json:"phoneNumber"`
	UserType    UserType   `gorm:"column:user_type" json:"userType"`
	UserStatus  UserStatus `gorm:"column:user_status" json:"userStatus"`
}

func (User) TableName() string {
	return "users"
}

// Claims builds the custom claim set embedded in both token kinds at
// issuance time. The map is created fresh per call and never mutated after
// embedding.
func (u *User) Claims() map[string]any {
	return map[string]any{
		ClaimUserID:          u.ID,
		ClaimUserType:        string(u.UserType),
		ClaimUserStatus:      string(u.UserStatus),
		ClaimUserFirstName:   u.FirstName,
		ClaimUserLastName:    u.LastName,
		ClaimUserEmail:       u.Email,
		ClaimUserPhoneNumber: u.PhoneNumber,
	}
}
