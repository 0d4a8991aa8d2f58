package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndanilkin/minimarket/internal/transport"
)

func (h *SessionHTTP) CartAdd(c echo.Context) error {
	var req transport.CartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return c.JSON(http.StatusOK, h.Session.CartAdd(c.Request().Context(), req.ProductID))
}

func (h *SessionHTTP) CartRemove(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.Session.CartRemove(c.Request().Context(), id))
}
