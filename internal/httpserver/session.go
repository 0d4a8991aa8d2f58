package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ndanilkin/minimarket/internal/logging"
	"github.com/ndanilkin/minimarket/internal/session"
	"github.com/ndanilkin/minimarket/internal/transport"
)

// SessionHTTP exposes the intent surface. Every intent answers 200 with
// a Result body; failures are state, not transport errors.
type SessionHTTP struct {
	Session *session.Session
}

func idParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not an integer")
	}
	return uint(id), nil
}

func (h *SessionHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		logging.FromContext(ctx).Warn("login_bad_request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	return c.JSON(http.StatusOK, h.Session.Login(ctx, req.Email, req.Password))
}

func (h *SessionHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		logging.FromContext(ctx).Warn("register_bad_request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	return c.JSON(http.StatusOK, h.Session.Register(ctx, req.Email, req.Password, req.Username))
}

func (h *SessionHTTP) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Session.Logout(c.Request().Context()))
}

func (h *SessionHTTP) Navigate(c echo.Context) error {
	var req transport.NavigateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	return c.JSON(http.StatusOK, h.Session.Navigate(session.Page(req.Page)))
}

func (h *SessionHTTP) Select(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.Session.Select(c.Request().Context(), id))
}

func (h *SessionHTTP) Checkout(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Session.Checkout(c.Request().Context()))
}

func (h *SessionHTTP) PatchProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.PatchProfileRequest
	if err := c.Bind(&req); err != nil {
		logging.FromContext(ctx).Warn("profile_bad_request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	return c.JSON(http.StatusOK, h.Session.UpdateProfile(ctx, req))
}
