package http

import (
	"github.com/labstack/echo/v4"

	domain "bizlend-backend/internal/domain/location"
	"bizlend-backend/internal/usecase/location"
	"bizlend-backend/pkg/id"
)

type LocationHandler struct{ uc *location.Usecase }

func NewLocationHandler(uc *location.Usecase) *LocationHandler { return &LocationHandler{uc: uc} }

type locationReq struct {
	Name             string                          `json:"name" validate:"required,min=2,max=160"`
	GovernmentType   string                          `json:"government_type" validate:"omitempty,oneof=Democracy Authoritarian"`
	Economic         domain.EconomicFactors          `json:"economic_factors"`
	Legal            domain.LegalEnvironment         `json:"legal_environment"`
	Cultural         domain.CulturalFactors          `json:"cultural_factors"`
	Geopolitical     domain.GeopoliticalFactors      `json:"geopolitical_factors"`
	NaturalResources domain.NaturalResources         `json:"natural_resources"`
	MarketSize       domain.MarketSize               `json:"market_size"`
	Technological    domain.TechnologicalDevelopment `json:"technological_development"`
	Security         domain.Security                 `json:"security"`
}

func (r locationReq) toEntity() *domain.Location {
	return &domain.Location{
		Name:             r.Name,
		GovernmentType:   domain.GovernmentType(r.GovernmentType),
		Economic:         r.Economic,
		Legal:            r.Legal,
		Cultural:         r.Cultural,
		Geopolitical:     r.Geopolitical,
		NaturalResources: r.NaturalResources,
		MarketSize:       r.MarketSize,
		Technological:    r.Technological,
		Security:         r.Security,
	}
}

func (h *LocationHandler) Create(c echo.Context) error {
	var req locationReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	return write(c, h.uc.Create(c.Request().Context(), req.toEntity()))
}

func (h *LocationHandler) List(c echo.Context) error {
	page, limit := pageParams(c)
	return write(c, h.uc.List(c.Request().Context(), page, limit))
}

func (h *LocationHandler) GetLocation(c echo.Context) error {
	locationID := c.Param("id")
	if !id.Valid(locationID) {
		return badRequest(c, "Invalid location id")
	}
	return write(c, h.uc.GetByID(c.Request().Context(), locationID))
}

type updateLocationReq struct {
	Name             string                           `json:"name" validate:"omitempty,min=2,max=160"`
	GovernmentType   string                           `json:"government_type" validate:"omitempty,oneof=Democracy Authoritarian"`
	Economic         *domain.EconomicFactors          `json:"economic_factors"`
	Legal            *domain.LegalEnvironment         `json:"legal_environment"`
	Cultural         *domain.CulturalFactors          `json:"cultural_factors"`
	Geopolitical     *domain.GeopoliticalFactors      `json:"geopolitical_factors"`
	NaturalResources *domain.NaturalResources         `json:"natural_resources"`
	MarketSize       *domain.MarketSize               `json:"market_size"`
	Technological    *domain.TechnologicalDevelopment `json:"technological_development"`
	Security         *domain.Security                 `json:"security"`
}

// Update patches scalar fields and replaces any factor group present in the
// body wholesale.
func (h *LocationHandler) Update(c echo.Context) error {
	locationID := c.Param("id")
	if !id.Valid(locationID) {
		return badRequest(c, "Invalid location id")
	}
	var req updateLocationReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.Update(c.Request().Context(), locationID, func(cur *domain.Location) {
		if req.Name != "" {
			cur.Name = req.Name
		}
		if req.GovernmentType != "" {
			cur.GovernmentType = domain.GovernmentType(req.GovernmentType)
		}
		if req.Economic != nil {
			cur.Economic = *req.Economic
		}
		if req.Legal != nil {
			cur.Legal = *req.Legal
		}
		if req.Cultural != nil {
			cur.Cultural = *req.Cultural
		}
		if req.Geopolitical != nil {
			cur.Geopolitical = *req.Geopolitical
		}
		if req.NaturalResources != nil {
			cur.NaturalResources = *req.NaturalResources
		}
		if req.MarketSize != nil {
			cur.MarketSize = *req.MarketSize
		}
		if req.Technological != nil {
			cur.Technological = *req.Technological
		}
		if req.Security != nil {
			cur.Security = *req.Security
		}
	})
	return write(c, env)
}
