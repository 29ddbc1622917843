package loan

import (
	"strconv"
	"time"

	"bizlend-backend/internal/domain/business"
	"bizlend-backend/internal/domain/user"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusRepaid    Status = "repaid"
	StatusDefaulted Status = "defaulted"
)

type RepaymentStatus string

const (
	RepaymentPending RepaymentStatus = "pending"
	RepaymentPaid    RepaymentStatus = "paid"
	RepaymentMissed  RepaymentStatus = "missed"
)

// ScheduleEntry is one expected installment, tracked independently by ID.
type ScheduleEntry struct {
	ID         string          `json:"id"`
	DueDate    time.Time       `json:"due_date"`
	Amount     float64         `json:"amount"`
	Status     RepaymentStatus `json:"status"`
	PaidAmount float64         `json:"paid_amount"`
}

type Loan struct {
	ID                string             `gorm:"primaryKey;size:24;column:id" json:"id"`
	BusinessID        string             `gorm:"size:24;index:idx_loans_business" json:"business_id"`
	Business          *business.Business `gorm:"foreignKey:BusinessID;references:ID" json:"business,omitempty"`
	UserID            string             `gorm:"size:24;index:idx_loans_user" json:"user_id"`
	User              *user.User         `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	LoanAmount        float64            `json:"loan_amount"`
	Balance           float64            `json:"balance"`
	InterestRate      float64            `json:"interest_rate"`
	Duration          int                `json:"duration"`
	LoanStatus        Status             `gorm:"size:16;default:'active'" json:"loan_status"`
	RepaymentSchedule []ScheduleEntry    `gorm:"serializer:json" json:"repayment_schedule"`
	IsDeleted         bool               `gorm:"index" json:"-"`
	CreatedAt         time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

func (l Loan) Deleted() bool { return l.IsDeleted }

// NewSchedule divides amount into duration equal monthly installments, the
// first due one calendar month after from. Entry ids are "0".."duration-1".
func NewSchedule(amount float64, duration int, from time.Time) []ScheduleEntry {
	if duration <= 0 {
		return nil
	}
	monthly := amount / float64(duration)
	entries := make([]ScheduleEntry, duration)
	for i := range entries {
		entries[i] = ScheduleEntry{
			ID:      strconv.Itoa(i),
			DueDate: from.AddDate(0, i+1, 0),
			Amount:  monthly,
			Status:  RepaymentPending,
		}
	}
	return entries
}
