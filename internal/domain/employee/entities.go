package employee

import (
	"time"

	"bizlend-backend/internal/domain/business"
	"bizlend-backend/internal/domain/user"
)

type Status string

const (
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusHired        Status = "hired"
	StatusRejected     Status = "rejected"
)

// Employee is an application linking a user to a business.
type Employee struct {
	ID            string             `gorm:"primaryKey;size:24;column:id" json:"id"`
	UserID        string             `gorm:"size:24;index:idx_employees_user" json:"user_id"`
	User          *user.User         `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	BusinessID    string             `gorm:"size:24;index:idx_employees_business" json:"business_id"`
	Business      *business.Business `gorm:"foreignKey:BusinessID;references:ID" json:"business,omitempty"`
	CurrentStatus Status             `gorm:"size:16;default:'applied'" json:"current_status"`
	IsDeleted     bool               `gorm:"index" json:"-"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string { return "employees" }

func (e Employee) Deleted() bool { return e.IsDeleted }
