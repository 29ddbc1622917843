package http

import (
	"github.com/labstack/echo/v4"

	"bizlend-backend/internal/adapter/middleware"
	"bizlend-backend/internal/respond"
	"bizlend-backend/internal/usecase/user"
	"bizlend-backend/pkg/id"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type registerReq struct {
	Name string `json:"name" validate:"omitempty,min=2,max=120"`
	PIN  string `json:"pin" validate:"omitempty,numeric,min=4,max=6"`
}

// Register turns a verified social identity into a user account. The body
// may override the profile name and set a PIN; identity fields come from the
// token, never the body.
func (h *UserHandler) Register(c echo.Context) error {
	claims, ok := middleware.VerifiedClaims(c)
	if !ok {
		return write(c, respond.New(respond.MsgUnauthorized, nil, respond.CodeUnauthorized))
	}
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	name := claims.Name
	if req.Name != "" {
		name = req.Name
	}
	env := h.uc.Register(c.Request().Context(), user.RegisterInput{
		SubID:   claims.Subject,
		Email:   claims.Email,
		Name:    name,
		Channel: claims.Channel,
		PIN:     req.PIN,
	})
	return write(c, env)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("userId")
	if !id.Valid(userID) {
		return badRequest(c, "Invalid user id")
	}
	return write(c, h.uc.GetByID(c.Request().Context(), userID))
}

type updateUserReq struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=120"`
	Email string `json:"email" validate:"omitempty,email"`
	PIN   string `json:"pin" validate:"omitempty,numeric,min=4,max=6"`
}

// Update patches the authenticated user's own profile.
func (h *UserHandler) Update(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return write(c, respond.New(respond.MsgUnauthorized, nil, respond.CodeUnauthorized))
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.UpdateProfile(c.Request().Context(), current.ID, user.UpdateInput(req))
	return write(c, env)
}

type chooseLocationReq struct {
	LocationID string `json:"location_id" validate:"required,hex24"`
}

func (h *UserHandler) ChooseLocation(c echo.Context) error {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		return write(c, respond.New(respond.MsgUnauthorized, nil, respond.CodeUnauthorized))
	}
	var req chooseLocationReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return invalid(c, err)
	}
	env := h.uc.ChooseLocation(c.Request().Context(), current.ID, req.LocationID)
	return write(c, env)
}
