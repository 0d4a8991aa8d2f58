package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndanilkin/minimarket/internal/logging"
	"github.com/ndanilkin/minimarket/internal/models"
	"github.com/ndanilkin/minimarket/internal/session"
)

// StateResponse is everything the presentational layer may read.
type StateResponse struct {
	User       *models.User      `json:"user"`
	Page       session.Page      `json:"page"`
	Selected   *models.Product   `json:"selected_product,omitempty"`
	Catalog    []models.Product  `json:"catalog"`
	Cart       []models.Product  `json:"cart"`
	Purchases  []models.Purchase `json:"purchases"`
	Categories []string          `json:"categories"`
}

func (h *SessionHTTP) State(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "state")

	catalog, err := h.Session.Catalog(ctx)
	if err != nil {
		l.Error("state_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read catalog")
	}

	cart, err := h.Session.CartContents(ctx)
	if err != nil {
		l.Error("state_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read cart")
	}

	purchases, err := h.Session.Purchases(ctx)
	if err != nil {
		l.Error("state_failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot read purchases")
	}

	return c.JSON(http.StatusOK, StateResponse{
		User:       h.Session.User(),
		Page:       h.Session.Page(),
		Selected:   h.Session.Selected(),
		Catalog:    catalog,
		Cart:       cart,
		Purchases:  purchases,
		Categories: models.Categories,
	})
}
