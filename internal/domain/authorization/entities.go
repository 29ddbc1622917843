package authorization

import "time"

// Authorization records one issued session token per user-creation event.
// Append-only: rows are never updated or deleted.
type Authorization struct {
	ID        string    `gorm:"primaryKey;size:24;column:id" json:"id"`
	UserID    string    `gorm:"size:24;index:idx_authorizations_user_id" json:"user_id"`
	Token     string    `gorm:"type:text" json:"token"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Authorization) TableName() string { return "authorizations" }
