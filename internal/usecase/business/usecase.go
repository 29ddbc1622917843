package business

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	domain "bizlend-backend/internal/domain/business"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/store"
	"bizlend-backend/pkg/id"
)

const (
	MsgBusinessCreated  = "Business created successfully"
	MsgBusinessUpdated  = "Business updated successfully"
	MsgBusinessNotFound = "Business not found"
	MsgBusinessDeleted  = "Business already deleted"
	MsgBranchCreated    = "Branch created successfully"
	MsgBranchesFound    = "Branches found"
)

var businessMessages = store.Messages{
	NotFound: MsgBusinessNotFound,
	Deleted:  MsgBusinessDeleted,
	Updated:  MsgBusinessUpdated,
}

// errRolledBack forces the surrounding transaction to roll back after a
// failed branch insert so the parent's counter increment is undone too.
var errRolledBack = errors.New("branch creation rolled back")

type Usecase struct {
	db         *gorm.DB
	businesses *store.Store[domain.Business]
}

func NewUsecase(db *gorm.DB) *Usecase {
	return &Usecase{db: db, businesses: store.New[domain.Business](db)}
}

func (u *Usecase) Create(ctx context.Context, b *domain.Business) respond.Envelope {
	_, env := u.businesses.CreateAndReturn(ctx, b, store.CreateOptions[domain.Business]{
		SuccessMessage: MsgBusinessCreated,
		BeforeSave: func(ctx context.Context, b *domain.Business) error {
			b.ID = id.NewID24()
			if b.CurrentStatus == "" {
				b.CurrentStatus = domain.StatusPending
			}
			return nil
		},
	})
	return env
}

func (u *Usecase) GetByID(ctx context.Context, businessID string) respond.Envelope {
	found, env := u.businesses.FindIfNotDeleted(ctx, businessID, businessMessages, "Owner")
	if env.OK() && found.Owner != nil {
		found.Owner.Token = ""
		found.Owner.SubID = ""
	}
	return env
}

type UpdateInput struct {
	Name          string
	Description   string
	Avatar        string
	Sector        string
	CurrentStatus string
}

func (u *Usecase) Update(ctx context.Context, businessID string, in UpdateInput) respond.Envelope {
	_, env := u.businesses.UpdateIfFound(ctx, businessID, func(cur *domain.Business) {
		if in.Name != "" {
			cur.Name = in.Name
		}
		if in.Description != "" {
			cur.Description = in.Description
		}
		if in.Avatar != "" {
			cur.Avatar = in.Avatar
		}
		if in.Sector != "" {
			cur.Sector = domain.Sector(in.Sector)
		}
		if in.CurrentStatus != "" {
			cur.CurrentStatus = domain.Status(in.CurrentStatus)
		}
	}, store.UpdateOptions[domain.Business]{Messages: businessMessages})
	return env
}

// CreateBranch snapshots the parent into a new business row with its own id,
// the parent's id as ParentBranchID and the given location. The parent's
// branch counter increments in the same transaction as the insert.
func (u *Usecase) CreateBranch(ctx context.Context, parentID, locationID string) respond.Envelope {
	var env respond.Envelope
	err := store.WithinTx(ctx, u.db, func(tx *gorm.DB) error {
		businesses := u.businesses.WithTx(tx)
		var parent *domain.Business

		branch := &domain.Business{}
		_, env = businesses.CreateAndReturn(ctx, branch, store.CreateOptions[domain.Business]{
			SuccessMessage: MsgBranchCreated,
			PreCreate: func(ctx context.Context, _ *domain.Business) (store.Decision, error) {
				p, e := businesses.FindIfNotDeleted(ctx, parentID, businessMessages)
				if !e.OK() {
					return store.ShortCircuit(e), nil
				}
				p.BranchCounter++
				if err := tx.WithContext(ctx).Save(p).Error; err != nil {
					return store.Decision{}, err
				}
				parent = p
				return store.Proceed(), nil
			},
			BeforeSave: func(ctx context.Context, b *domain.Business) error {
				*b = *parent
				b.ID = id.NewID24()
				b.ParentBranchID = parent.ID
				b.LocationID = locationID
				b.Owner = nil
				b.CreatedAt = time.Time{}
				b.UpdatedAt = time.Time{}
				return nil
			},
		})
		if env.Code == respond.CodeInternal {
			return errRolledBack
		}
		return nil
	})
	if err != nil && !errors.Is(err, errRolledBack) {
		log.Printf("business: create branch: %v", err)
		return respond.New(respond.MsgInternal, nil, respond.CodeInternal)
	}
	return env
}

// Branches pages through the live branches of a parent business.
func (u *Usecase) Branches(ctx context.Context, parentID string, page, limit int) respond.Envelope {
	_, env := u.businesses.Paginate(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("parent_branch_id = ?", parentID)
	}, page, limit, MsgBranchesFound)
	return env
}
