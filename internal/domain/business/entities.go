package business

import (
	"time"

	"bizlend-backend/internal/domain/user"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusClosed    Status = "closed"
)

type Sector string

const (
	SectorTech          Sector = "tech"
	SectorAgriculture   Sector = "agriculture"
	SectorRetail        Sector = "retail"
	SectorManufacturing Sector = "manufacturing"
	SectorServices      Sector = "services"
	SectorFinance       Sector = "finance"
)

// Business is either a root business or a branch. A branch is a
// copy-on-create snapshot of its parent with ParentBranchID and LocationID
// overridden; the root's BranchCounter counts branches created from it.
type Business struct {
	ID             string     `gorm:"primaryKey;size:24;column:id" json:"id"`
	Name           string     `gorm:"size:160" json:"name"`
	Description    string     `gorm:"type:text" json:"description"`
	Avatar         string     `gorm:"size:255" json:"avatar"`
	Sector         Sector     `gorm:"size:24" json:"sector"`
	LocationID     string     `gorm:"size:24" json:"location_id"`
	OwnerID        string     `gorm:"size:24;index:idx_businesses_owner" json:"owner_id"`
	Owner          *user.User `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	CurrentStatus  Status     `gorm:"size:16;default:'pending'" json:"current_status"`
	ParentBranchID string     `gorm:"size:24;index:idx_businesses_parent" json:"parent_branch_id"`
	BranchCounter  int        `json:"branch_counter"`
	IsDeleted      bool       `gorm:"index" json:"-"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Business) TableName() string { return "businesses" }

func (b Business) Deleted() bool { return b.IsDeleted }
