package http

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Health   *Handler
	User     *UserHandler
	Business *BusinessHandler
	Employee *EmployeeHandler
	Loan     *LoanHandler
	Location *LocationHandler
}

// RegisterRoutes mounts the API surface. Registration sits behind the social
// gate, health is open, everything else requires a session.
func RegisterRoutes(e *echo.Echo, h Handlers, session, social echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	u := e.Group("/user")
	u.POST("/register", h.User.Register, social)
	u.GET("/:userId", h.User.GetUser, session)
	u.PATCH("/update", h.User.Update, session)
	u.PATCH("/choose-location", h.User.ChooseLocation, session)

	b := e.Group("/business", session)
	b.POST("/create", h.Business.Create)
	b.GET("/:id", h.Business.GetBusiness)
	b.PATCH("/:id", h.Business.Update)
	b.POST("/:id/branch", h.Business.CreateBranch)
	b.GET("/:id/branches", h.Business.Branches)

	emp := e.Group("/employee", session)
	emp.POST("/:businessId/apply-for-job", h.Employee.ApplyForJob)
	emp.GET("/:businessId/:status", h.Employee.FetchAll)
	emp.PATCH("/:employeeId", h.Employee.UpdateStatus)

	l := e.Group("/loan", session)
	l.POST("/apply", h.Loan.Apply)
	l.PATCH("/repay/:loanId", h.Loan.Repay)
	l.GET("/:loanId", h.Loan.GetLoan)
	l.PATCH("/status/:loanId", h.Loan.UpdateStatus)

	loc := e.Group("/location", session)
	loc.POST("/", h.Location.Create)
	loc.GET("/", h.Location.List)
	loc.GET("/:id", h.Location.GetLocation)
	loc.PATCH("/:id", h.Location.Update)
}
