package http

import (
	"github.com/labstack/echo/v4"

	"bizlend-backend/internal/adapter/middleware"
	domain "bizlend-backend/internal/domain/employee"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/usecase/employee"
	"bizlend-backend/pkg/id"
)

type EmployeeHandler struct{ uc *employee.Usecase }

func NewEmployeeHandler(uc *employee.Usecase) *EmployeeHandler { return &EmployeeHandler{uc: uc} }

var employeeStatuses = map[domain.Status]bool{
	domain.StatusApplied:      true,
	domain.StatusInterviewing: true,
	domain.StatusHired:        true,
	domain.StatusRejected:     true,
}

// ApplyForJob files an application by the authenticated user.
func (h *EmployeeHandler) ApplyForJob(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return write(c, respond.New(respond.MsgUnauthorized, nil, respond.CodeUnauthorized))
	}
	businessID := c.Param("businessId")
	if !id.Valid(businessID) {
		return badRequest(c, "Invalid business id")
	}
	env := h.uc.ApplyForJob(c.Request().Context(), current.ID, businessID)
	return write(c, env)
}

// FetchAll lists a business's applications filtered by the status path
// segment.
func (h *EmployeeHandler) FetchAll(c echo.Context) error {
	businessID := c.Param("businessId")
	if !id.Valid(businessID) {
		return badRequest(c, "Invalid business id")
	}
	status := domain.Status(c.Param("status"))
	if !employeeStatuses[status] {
		return badRequest(c, "Invalid employee status")
	}
	page, limit := pageParams(c)
	return write(c, h.uc.FetchAll(c.Request().Context(), businessID, status, page, limit))
}

type updateEmployeeReq struct {
	CurrentStatus string `json:"current_status" validate:"required,oneof=applied interviewing hired rejected"`
}

func (h *EmployeeHandler) UpdateStatus(c echo.Context) error {
	employeeID := c.Param("employeeId")
	if !id.Valid(employeeID) {
		return badRequest(c, "Invalid employee id")
	}
	var req updateEmployeeReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.UpdateStatus(c.Request().Context(), employeeID, domain.Status(req.CurrentStatus))
	return write(c, env)
}
