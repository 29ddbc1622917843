package employee

import (
	"context"

	"gorm.io/gorm"

	"bizlend-backend/internal/domain/business"
	domain "bizlend-backend/internal/domain/employee"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/store"
	"bizlend-backend/pkg/id"
)

const (
	MsgApplicationCreated = "Application submitted successfully"
	MsgEmployeesFound     = "Employees found"
	MsgEmployeeUpdated    = "Employee updated successfully"
	MsgEmployeeNotFound   = "Employee not found"
	MsgEmployeeDeleted    = "Employee already deleted"
	MsgBusinessNotFound   = "Business not found"
	MsgBusinessDeleted    = "Business already deleted"
)

var employeeMessages = store.Messages{
	NotFound: MsgEmployeeNotFound,
	Deleted:  MsgEmployeeDeleted,
	Updated:  MsgEmployeeUpdated,
}

type Usecase struct {
	employees  *store.Store[domain.Employee]
	businesses *store.Store[business.Business]
}

func NewUsecase(db *gorm.DB) *Usecase {
	return &Usecase{
		employees:  store.New[domain.Employee](db),
		businesses: store.New[business.Business](db),
	}
}

// ApplyForJob files an application for the authenticated user against a live
// business. The status always starts at "applied" regardless of input.
func (u *Usecase) ApplyForJob(ctx context.Context, userID, businessID string) respond.Envelope {
	data := &domain.Employee{UserID: userID, BusinessID: businessID}
	_, env := u.employees.CreateAndReturn(ctx, data, store.CreateOptions[domain.Employee]{
		SuccessMessage: MsgApplicationCreated,
		PreCreate: func(ctx context.Context, data *domain.Employee) (store.Decision, error) {
			_, e := u.businesses.FindIfNotDeleted(ctx, data.BusinessID, store.Messages{
				NotFound: MsgBusinessNotFound,
				Deleted:  MsgBusinessDeleted,
			})
			if !e.OK() {
				return store.ShortCircuit(e), nil
			}
			return store.Proceed(), nil
		},
		BeforeSave: func(ctx context.Context, e *domain.Employee) error {
			e.ID = id.NewID24()
			e.CurrentStatus = domain.StatusApplied
			return nil
		},
	})
	return env
}

// FetchAll pages through a business's applications in a given status.
func (u *Usecase) FetchAll(ctx context.Context, businessID string, status domain.Status, page, limit int) respond.Envelope {
	_, env := u.employees.Paginate(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("business_id = ? AND current_status = ?", businessID, status)
	}, page, limit, MsgEmployeesFound)
	return env
}

func (u *Usecase) UpdateStatus(ctx context.Context, employeeID string, status domain.Status) respond.Envelope {
	_, env := u.employees.UpdateIfFound(ctx, employeeID, func(cur *domain.Employee) {
		cur.CurrentStatus = status
	}, store.UpdateOptions[domain.Employee]{Messages: employeeMessages})
	return env
}
