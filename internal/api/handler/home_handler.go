package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-system/internal/api/flash"
)

// HomeHandler renders the public landing page.
type HomeHandler struct {
	flashes *flash.Manager
}

func NewHomeHandler(flashes *flash.Manager) *HomeHandler {
	return &HomeHandler{flashes: flashes}
}

func (h *HomeHandler) Home(c echo.Context) error {
	return render(c, h.flashes, "index", nil)
}
