package user

import "time"

type Role string

const (
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type SocialChannel string

const (
	ChannelGoogle SocialChannel = "google"
	ChannelApple  SocialChannel = "apple"
)

// User is created on first social sign-in and only ever soft-deleted.
type User struct {
	ID               string        `gorm:"primaryKey;size:24;column:id" json:"id"`
	Name             string        `gorm:"size:120" json:"name"`
	Email            string        `gorm:"size:255;index:idx_users_email" json:"email"`
	PIN              string        `gorm:"size:64" json:"-"`
	Role             Role          `gorm:"size:16;default:'owner'" json:"role"`
	SubID            string        `gorm:"size:64;index:idx_users_sub_id" json:"sub_id"`
	SocialChannel    SocialChannel `gorm:"size:16" json:"social_channel"`
	Token            string        `gorm:"type:text" json:"token"`
	ReferralCode     string        `gorm:"size:40" json:"referral_code"`
	ChosenLocationID string        `gorm:"size:24" json:"chosen_location_id"`
	IsDeleted        bool          `gorm:"index" json:"-"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u User) Deleted() bool { return u.IsDeleted }
