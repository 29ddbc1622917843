package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"bizlend-backend/internal/adapter/middleware"
	domain "bizlend-backend/internal/domain/loan"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/usecase/loan"
	"bizlend-backend/pkg/id"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	BusinessID   string  `json:"business_id" validate:"required,hex24"`
	LoanAmount   float64 `json:"loan_amount" validate:"required,gt=0"`
	InterestRate float64 `json:"interest_rate" validate:"omitempty,gte=0"`
	Duration     int     `json:"duration" validate:"required,gt=0"`
}

// Apply opens a loan for the authenticated user against a business.
func (h *LoanHandler) Apply(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return write(c, respond.New(respond.MsgUnauthorized, nil, respond.CodeUnauthorized))
	}
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.Apply(c.Request().Context(), &domain.Loan{
		BusinessID:   req.BusinessID,
		UserID:       current.ID,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Duration:     req.Duration,
	})
	return write(c, env)
}

type repayReq struct {
	ID         string    `json:"id" validate:"required"`
	DueDate    time.Time `json:"due_date"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	Status     string    `json:"status" validate:"omitempty,oneof=pending paid missed"`
	PaidAmount float64   `json:"paid_amount" validate:"omitempty,gte=0"`
}

// Repay records one installment payment against the loan's schedule.
func (h *LoanHandler) Repay(c echo.Context) error {
	loanID := c.Param("loanId")
	if !id.Valid(loanID) {
		return badRequest(c, "Invalid loan id")
	}
	var req repayReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	status := domain.RepaymentStatus(req.Status)
	if status == "" {
		status = domain.RepaymentPaid
	}
	env := h.uc.Repay(c.Request().Context(), loanID, domain.ScheduleEntry{
		ID:         req.ID,
		DueDate:    req.DueDate,
		Amount:     req.Amount,
		Status:     status,
		PaidAmount: req.PaidAmount,
	})
	return write(c, env)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID := c.Param("loanId")
	if !id.Valid(loanID) {
		return badRequest(c, "Invalid loan id")
	}
	return write(c, h.uc.GetByID(c.Request().Context(), loanID))
}

type loanStatusReq struct {
	LoanStatus string `json:"loan_status" validate:"required,oneof=active repaid defaulted"`
}

func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	loanID := c.Param("loanId")
	if !id.Valid(loanID) {
		return badRequest(c, "Invalid loan id")
	}
	var req loanStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.UpdateStatus(c.Request().Context(), loanID, domain.Status(req.LoanStatus))
	return write(c, env)
}
