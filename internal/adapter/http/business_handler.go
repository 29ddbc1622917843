package http

import (
	"github.com/labstack/echo/v4"

	"bizlend-backend/internal/adapter/middleware"
	domain "bizlend-backend/internal/domain/business"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/usecase/business"
	"bizlend-backend/pkg/id"
)

type BusinessHandler struct{ uc *business.Usecase }

func NewBusinessHandler(uc *business.Usecase) *BusinessHandler { return &BusinessHandler{uc: uc} }

type createBusinessReq struct {
	Name        string `json:"name" validate:"required,min=2,max=160"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Avatar      string `json:"avatar" validate:"omitempty,url"`
	Sector      string `json:"sector" validate:"required,oneof=tech agriculture retail manufacturing services finance"`
	LocationID  string `json:"location_id" validate:"omitempty,hex24"`
}

// Create registers a business owned by the authenticated user.
func (h *BusinessHandler) Create(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return write(c, respond.New(respond.MsgUnauthorized, nil, respond.CodeUnauthorized))
	}
	var req createBusinessReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.Create(c.Request().Context(), &domain.Business{
		Name:        req.Name,
		Description: req.Description,
		Avatar:      req.Avatar,
		Sector:      domain.Sector(req.Sector),
		LocationID:  req.LocationID,
		OwnerID:     current.ID,
	})
	return write(c, env)
}

func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	businessID := c.Param("id")
	if !id.Valid(businessID) {
		return badRequest(c, "Invalid business id")
	}
	return write(c, h.uc.GetByID(c.Request().Context(), businessID))
}

type updateBusinessReq struct {
	Name          string `json:"name" validate:"omitempty,min=2,max=160"`
	Description   string `json:"description" validate:"omitempty,max=2000"`
	Avatar        string `json:"avatar" validate:"omitempty,url"`
	Sector        string `json:"sector" validate:"omitempty,oneof=tech agriculture retail manufacturing services finance"`
	CurrentStatus string `json:"current_status" validate:"omitempty,oneof=pending active suspended closed"`
}

func (h *BusinessHandler) Update(c echo.Context) error {
	businessID := c.Param("id")
	if !id.Valid(businessID) {
		return badRequest(c, "Invalid business id")
	}
	var req updateBusinessReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.Update(c.Request().Context(), businessID, business.UpdateInput(req))
	return write(c, env)
}

type createBranchReq struct {
	LocationID string `json:"location_id" validate:"required,hex24"`
}

func (h *BusinessHandler) CreateBranch(c echo.Context) error {
	parentID := c.Param("id")
	if !id.Valid(parentID) {
		return badRequest(c, "Invalid business id")
	}
	var req createBranchReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.CreateBranch(c.Request().Context(), parentID, req.LocationID)
	return write(c, env)
}

func (h *BusinessHandler) Branches(c echo.Context) error {
	parentID := c.Param("id")
	if !id.Valid(parentID) {
		return badRequest(c, "Invalid business id")
	}
	page, limit := pageParams(c)
	return write(c, h.uc.Branches(c.Request().Context(), parentID, page, limit))
}
