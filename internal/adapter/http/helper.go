package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"bizlend-backend/internal/respond"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// write maps an envelope onto the transport: the code doubles as the HTTP
// status and the "status" body field.
func write(c echo.Context, env respond.Envelope) error {
	return c.JSON(env.Code, map[string]any{
		"status":  env.Code,
		"message": env.Message,
		"data":    env.Data,
	})
}

func badRequest(c echo.Context, message string) error {
	return write(c, respond.New(message, nil, respond.CodeBadRequest))
}

func invalid(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, map[string]any{
		"status":  http.StatusBadRequest,
		"message": respond.MsgValidationFailed,
		"data":    ToFieldErrors(err),
	})
}

// pageParams reads ?page=&limit=; zero values defer to the store defaults.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
