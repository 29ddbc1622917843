package loan

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "bizlend-backend/internal/domain/loan"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/store"
	"bizlend-backend/pkg/id"
)

const (
	MsgLoanCreated  = "Loan created successfully"
	MsgLoanUpdated  = "Loan updated successfully"
	MsgLoanRepaid   = "Repayment recorded successfully"
	MsgLoanNotFound = "Loan not found"
	MsgLoanDeleted  = "Loan already deleted"
)

var loanMessages = store.Messages{
	NotFound: MsgLoanNotFound,
	Deleted:  MsgLoanDeleted,
	Updated:  MsgLoanUpdated,
}

type Usecase struct {
	loans *store.Store[domain.Loan]
	// now is swappable so schedule generation is deterministic in tests.
	now func() time.Time
}

func NewUsecase(db *gorm.DB) *Usecase {
	return &Usecase{loans: store.New[domain.Loan](db), now: time.Now}
}

// Apply opens a loan: the balance starts at the full amount and the
// repayment schedule divides it into equal monthly installments.
func (u *Usecase) Apply(ctx context.Context, l *domain.Loan) respond.Envelope {
	_, env := u.loans.CreateAndReturn(ctx, l, store.CreateOptions[domain.Loan]{
		SuccessMessage: MsgLoanCreated,
		BeforeSave: func(ctx context.Context, l *domain.Loan) error {
			l.ID = id.NewID24()
			l.Balance = l.LoanAmount
			l.RepaymentSchedule = domain.NewSchedule(l.LoanAmount, l.Duration, u.now().UTC())
			if l.LoanStatus == "" {
				l.LoanStatus = domain.StatusActive
			}
			return nil
		},
	})
	return env
}

// Repay records one installment payment: the balance drops by the entry's
// amount and the matching schedule entry is replaced wholesale. Entries that
// match nothing leave the schedule untouched.
func (u *Usecase) Repay(ctx context.Context, loanID string, entry domain.ScheduleEntry) respond.Envelope {
	_, env := u.loans.UpdateIfFound(ctx, loanID, func(cur *domain.Loan) {
		cur.Balance -= entry.Amount
		for i := range cur.RepaymentSchedule {
			if cur.RepaymentSchedule[i].ID == entry.ID {
				cur.RepaymentSchedule[i] = entry
			}
		}
	}, store.UpdateOptions[domain.Loan]{
		Messages: store.Messages{
			NotFound: MsgLoanNotFound,
			Deleted:  MsgLoanDeleted,
			Updated:  MsgLoanRepaid,
		},
	})
	return env
}

func (u *Usecase) GetByID(ctx context.Context, loanID string) respond.Envelope {
	found, env := u.loans.FindIfNotDeleted(ctx, loanID, loanMessages, "User", "Business")
	if env.OK() {
		if found.User != nil {
			found.User.Token = ""
			found.User.SubID = ""
		}
		if found.Business != nil {
			found.Business.Owner = nil
		}
	}
	return env
}

func (u *Usecase) UpdateStatus(ctx context.Context, loanID string, status domain.Status) respond.Envelope {
	_, env := u.loans.UpdateIfFound(ctx, loanID, func(cur *domain.Loan) {
		cur.LoanStatus = status
	}, store.UpdateOptions[domain.Loan]{Messages: loanMessages})
	return env
}
