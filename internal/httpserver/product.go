package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndanilkin/minimarket/internal/logging"
	"github.com/ndanilkin/minimarket/internal/transport"
)

func (h *SessionHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		logging.FromContext(ctx).Warn("product_bad_request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	return c.JSON(http.StatusOK, h.Session.SubmitProduct(ctx, req))
}

func (h *SessionHTTP) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req transport.PatchProductRequest
	if err := c.Bind(&req); err != nil {
		logging.FromContext(ctx).Warn("product_bad_request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	return c.JSON(http.StatusOK, h.Session.EditProduct(ctx, id, req))
}

func (h *SessionHTTP) DeleteProduct(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.Session.RemoveProduct(c.Request().Context(), id))
}
