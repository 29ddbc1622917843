package loan

import (
	"context"
	"math"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bizlend-backend/internal/domain/business"
	domain "bizlend-backend/internal/domain/loan"
	"bizlend-backend/internal/domain/user"
	"bizlend-backend/internal/respond"
	"bizlend-backend/pkg/id"
)

func newUsecase(t *testing.T) (*Usecase, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &business.Business{}, &domain.Loan{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return NewUsecase(db), db
}

func TestApply_BuildsBalanceAndSchedule(t *testing.T) {
	uc, _ := newUsecase(t)
	opened := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return opened }

	env := uc.Apply(context.Background(), &domain.Loan{
		BusinessID:   id.NewID24(),
		UserID:       id.NewID24(),
		LoanAmount:   1200,
		InterestRate: 0.1,
		Duration:     12,
	})
	if env.Code != respond.CodeCreated {
		t.Fatalf("code = %d (%q)", env.Code, env.Message)
	}
	got := env.Data.(*domain.Loan)
	if got.Balance != 1200 {
		t.Errorf("balance = %v, want full amount", got.Balance)
	}
	if got.LoanStatus != domain.StatusActive {
		t.Errorf("status = %q, want active", got.LoanStatus)
	}
	if len(got.RepaymentSchedule) != 12 {
		t.Fatalf("schedule entries = %d, want 12", len(got.RepaymentSchedule))
	}
	for i, e := range got.RepaymentSchedule {
		if e.Amount != 100 {
			t.Errorf("entry %d amount = %v, want 100", i, e.Amount)
		}
		if e.Status != domain.RepaymentPending {
			t.Errorf("entry %d status = %q", i, e.Status)
		}
		wantDue := opened.AddDate(0, i+1, 0)
		if !e.DueDate.Equal(wantDue) {
			t.Errorf("entry %d due = %v, want %v", i, e.DueDate, wantDue)
		}
	}
	if got.RepaymentSchedule[0].ID != "0" || got.RepaymentSchedule[11].ID != "11" {
		t.Error("schedule entry ids are not positional")
	}
}

func TestApply_UnevenDivision(t *testing.T) {
	uc, _ := newUsecase(t)

	env := uc.Apply(context.Background(), &domain.Loan{LoanAmount: 1000, Duration: 3})
	got := env.Data.(*domain.Loan)
	var sum float64
	for _, e := range got.RepaymentSchedule {
		sum += e.Amount
	}
	if math.Abs(sum-1000) > 1e-9 {
		t.Errorf("schedule sums to %v, want 1000", sum)
	}
}

func TestRepay_AdjustsBalanceAndReplacesEntry(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	created := uc.Apply(ctx, &domain.Loan{LoanAmount: 1200, Duration: 12}).Data.(*domain.Loan)

	paidAt := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	entry := created.RepaymentSchedule[0]
	entry.Status = domain.RepaymentPaid
	entry.PaidAmount = entry.Amount
	entry.DueDate = paidAt

	env := uc.Repay(ctx, created.ID, entry)
	if env.Code != respond.CodeSuccess || env.Message != MsgLoanRepaid {
		t.Fatalf("code=%d message=%q", env.Code, env.Message)
	}
	got := env.Data.(*domain.Loan)
	if got.Balance != 1100 {
		t.Errorf("balance = %v, want 1100", got.Balance)
	}
	if got.RepaymentSchedule[0].Status != domain.RepaymentPaid || got.RepaymentSchedule[0].PaidAmount != 100 {
		t.Errorf("entry 0 not replaced: %+v", got.RepaymentSchedule[0])
	}
	for i := 1; i < len(got.RepaymentSchedule); i++ {
		if got.RepaymentSchedule[i].Status != domain.RepaymentPending {
			t.Errorf("entry %d changed", i)
		}
	}

	var reloaded domain.Loan
	if err := db.First(&reloaded, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Balance != 1100 || reloaded.RepaymentSchedule[0].Status != domain.RepaymentPaid {
		t.Error("repayment not persisted")
	}
}

func TestRepay_UnknownEntryStillDebitsBalance(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	created := uc.Apply(ctx, &domain.Loan{LoanAmount: 600, Duration: 6}).Data.(*domain.Loan)

	env := uc.Repay(ctx, created.ID, domain.ScheduleEntry{ID: "no-such-entry", Amount: 50})
	got := env.Data.(*domain.Loan)
	if got.Balance != 550 {
		t.Errorf("balance = %v, want 550", got.Balance)
	}
	for i, e := range got.RepaymentSchedule {
		if e.Status != domain.RepaymentPending {
			t.Errorf("entry %d changed", i)
		}
	}
}

func TestGetByID_PreloadsRelations(t *testing.T) {
	uc, db := newUsecase(t)
	ctx := context.Background()

	borrower := &user.User{ID: id.NewID24(), Name: "Borrower", Token: "tok", SubID: "sub"}
	shop := &business.Business{ID: id.NewID24(), Name: "Shop", OwnerID: borrower.ID}
	db.Create(borrower)
	db.Create(shop)

	created := uc.Apply(ctx, &domain.Loan{UserID: borrower.ID, BusinessID: shop.ID, LoanAmount: 100, Duration: 1}).Data.(*domain.Loan)

	env := uc.GetByID(ctx, created.ID)
	if env.Code != respond.CodeSuccess {
		t.Fatalf("code = %d (%q)", env.Code, env.Message)
	}
	got := env.Data.(*domain.Loan)
	if got.User == nil || got.User.Name != "Borrower" {
		t.Error("user not preloaded")
	}
	if got.User.Token != "" || got.User.SubID != "" {
		t.Error("borrower credentials leaked")
	}
	if got.Business == nil || got.Business.Name != "Shop" {
		t.Error("business not preloaded")
	}
}

func TestUpdateStatus_Overwrites(t *testing.T) {
	uc, _ := newUsecase(t)
	ctx := context.Background()

	created := uc.Apply(ctx, &domain.Loan{LoanAmount: 100, Duration: 1}).Data.(*domain.Loan)

	env := uc.UpdateStatus(ctx, created.ID, domain.StatusRepaid)
	if env.Code != respond.CodeSuccess {
		t.Fatalf("code = %d", env.Code)
	}
	if env.Data.(*domain.Loan).LoanStatus != domain.StatusRepaid {
		t.Error("status not overwritten")
	}

	if env := uc.UpdateStatus(ctx, id.NewID24(), domain.StatusDefaulted); env.Message != MsgLoanNotFound {
		t.Errorf("absent: message = %q", env.Message)
	}
}
