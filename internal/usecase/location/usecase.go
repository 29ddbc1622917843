package location

import (
	"context"

	"gorm.io/gorm"

	domain "bizlend-backend/internal/domain/location"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/store"
	"bizlend-backend/pkg/id"
)

const (
	MsgLocationCreated  = "Location created successfully"
	MsgLocationUpdated  = "Location updated successfully"
	MsgLocationsFound   = "Locations found"
	MsgLocationNotFound = "Location not found"
	MsgLocationDeleted  = "Location already deleted"
)

var locationMessages = store.Messages{
	NotFound: MsgLocationNotFound,
	Deleted:  MsgLocationDeleted,
	Updated:  MsgLocationUpdated,
}

type Usecase struct {
	locations *store.Store[domain.Location]
}

func NewUsecase(db *gorm.DB) *Usecase {
	return &Usecase{locations: store.New[domain.Location](db)}
}

func (u *Usecase) Create(ctx context.Context, l *domain.Location) respond.Envelope {
	_, env := u.locations.CreateAndReturn(ctx, l, store.CreateOptions[domain.Location]{
		SuccessMessage: MsgLocationCreated,
		BeforeSave: func(ctx context.Context, l *domain.Location) error {
			l.ID = id.NewID24()
			return nil
		},
	})
	return env
}

func (u *Usecase) List(ctx context.Context, page, limit int) respond.Envelope {
	_, env := u.locations.Paginate(ctx, nil, page, limit, MsgLocationsFound)
	return env
}

func (u *Usecase) GetByID(ctx context.Context, locationID string) respond.Envelope {
	_, env := u.locations.FindIfNotDeleted(ctx, locationID, locationMessages)
	return env
}

// Update replaces whole factor groups when present; scalar fields patch
// individually.
func (u *Usecase) Update(ctx context.Context, locationID string, apply func(*domain.Location)) respond.Envelope {
	_, env := u.locations.UpdateIfFound(ctx, locationID, apply, store.UpdateOptions[domain.Location]{Messages: locationMessages})
	return env
}
