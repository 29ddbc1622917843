package user

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"bizlend-backend/internal/auth"
	"bizlend-backend/internal/domain/authorization"
	"bizlend-backend/internal/domain/location"
	domain "bizlend-backend/internal/domain/user"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/store"
	"bizlend-backend/pkg/id"
	"bizlend-backend/pkg/referral"
)

const (
	MsgUserExists     = "User already exists"
	MsgUserCreated    = "User created successfully"
	MsgUserUpdated    = "User updated successfully"
	MsgUserNotFound   = "User not found"
	MsgUserDeleted    = "User already deleted"
	MsgLocationChosen = "Location chosen successfully"
	MsgLocNotFound    = "Location not found"
	MsgLocDeleted     = "Location already deleted"
)

var userMessages = store.Messages{
	NotFound: MsgUserNotFound,
	Deleted:  MsgUserDeleted,
	Updated:  MsgUserUpdated,
}

type Usecase struct {
	db        *gorm.DB
	users     *store.Store[domain.User]
	locations *store.Store[location.Location]
	tokens    *auth.TokenService
}

func NewUsecase(db *gorm.DB, tokens *auth.TokenService) *Usecase {
	return &Usecase{
		db:        db,
		users:     store.New[domain.User](db),
		locations: store.New[location.Location](db),
		tokens:    tokens,
	}
}

// RegisterInput carries the verified social identity plus profile fields.
type RegisterInput struct {
	SubID   string
	Email   string
	Name    string
	Channel string
	PIN     string
}

// Register is idempotent on the external subject id: a second sign-in with
// the same subject returns the existing user. A new user and its
// authorization record are inserted in one transaction.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) respond.Envelope {
	var env respond.Envelope
	err := store.WithinTx(ctx, u.db, func(tx *gorm.DB) error {
		users := u.users.WithTx(tx)

		data := &domain.User{
			Name:          in.Name,
			Email:         in.Email,
			PIN:           in.PIN,
			Role:          domain.RoleOwner,
			SubID:         in.SubID,
			SocialChannel: domain.SocialChannel(in.Channel),
		}
		created, e := users.CreateAndReturn(ctx, data, store.CreateOptions[domain.User]{
			SuccessMessage: MsgUserCreated,
			PreCreate: func(ctx context.Context, data *domain.User) (store.Decision, error) {
				var existing domain.User
				err := tx.WithContext(ctx).Where("sub_id = ?", data.SubID).First(&existing).Error
				if err == nil {
					return store.ShortCircuit(respond.New(MsgUserExists, &existing, respond.CodeSuccess)), nil
				}
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return store.Decision{}, err
				}
				return store.Proceed(), nil
			},
			BeforeSave: func(ctx context.Context, nu *domain.User) error {
				nu.ID = id.NewID24()
				token, err := u.tokens.Generate(nu.ID)
				if err != nil {
					return err
				}
				nu.Token = token
				nu.ReferralCode = referral.NewCode()
				return nil
			},
		})
		env = e
		if created == nil {
			// Short-circuited (already exists) or failed before insert.
			return nil
		}

		authz := &authorization.Authorization{
			ID:     id.NewID24(),
			UserID: created.ID,
			Token:  created.Token,
		}
		return tx.WithContext(ctx).Create(authz).Error
	})
	if err != nil {
		log.Printf("user: register: %v", err)
		return respond.New(respond.MsgInternal, nil, respond.CodeInternal)
	}
	return env
}

func (u *Usecase) GetByID(ctx context.Context, userID string) respond.Envelope {
	_, env := u.users.FindIfNotDeleted(ctx, userID, userMessages)
	return env
}

type UpdateInput struct {
	Name  string
	Email string
	PIN   string
}

func (u *Usecase) UpdateProfile(ctx context.Context, userID string, in UpdateInput) respond.Envelope {
	_, env := u.users.UpdateIfFound(ctx, userID, func(cur *domain.User) {
		if in.Name != "" {
			cur.Name = in.Name
		}
		if in.Email != "" {
			cur.Email = in.Email
		}
		if in.PIN != "" {
			cur.PIN = in.PIN
		}
	}, store.UpdateOptions[domain.User]{Messages: userMessages})
	return env
}

// ChooseLocation validates that the location is live before pointing the
// user at it.
func (u *Usecase) ChooseLocation(ctx context.Context, userID, locationID string) respond.Envelope {
	_, locEnv := u.locations.FindIfNotDeleted(ctx, locationID, store.Messages{
		NotFound: MsgLocNotFound,
		Deleted:  MsgLocDeleted,
	})
	if !locEnv.OK() {
		return locEnv
	}
	_, env := u.users.UpdateIfFound(ctx, userID, func(cur *domain.User) {
		cur.ChosenLocationID = locationID
	}, store.UpdateOptions[domain.User]{
		Messages: store.Messages{
			NotFound: MsgUserNotFound,
			Deleted:  MsgUserDeleted,
			Updated:  MsgLocationChosen,
		},
	})
	return env
}

// FindBySession loads the live user a verified session token points at.
// Used by the auth middleware; a missing or deleted user is an auth failure.
func (u *Usecase) FindBySession(ctx context.Context, userID string) (*domain.User, error) {
	found, env := u.users.FindIfNotDeleted(ctx, userID, userMessages)
	if !env.OK() {
		return nil, errors.New(env.Message)
	}
	return found, nil
}
