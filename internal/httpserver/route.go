package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ndanilkin/minimarket/internal/logging"
	"github.com/ndanilkin/minimarket/internal/session"
)

type Deps struct {
	Session *session.Session
	Log     *slog.Logger
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	if d.Log != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx := logging.IntoContext(c.Request().Context(), d.Log)
				c.SetRequest(c.Request().WithContext(ctx))
				return next(c)
			}
		})
	}

	h := &SessionHTTP{Session: d.Session}

	api := e.Group("/api")
	api.GET("/state", h.State)

	sess := api.Group("/session")
	sess.POST("/login", h.Login)
	sess.POST("/register", h.Register)
	sess.POST("/logout", h.Logout)
	sess.POST("/navigate", h.Navigate)
	sess.POST("/select/:id", h.Select)

	products := api.Group("/products")
	products.POST("", h.CreateProduct)
	products.PATCH("/:id", h.PatchProduct)
	products.DELETE("/:id", h.DeleteProduct)

	cart := api.Group("/cart")
	cart.POST("", h.CartAdd)
	cart.DELETE("/:id", h.CartRemove)

	api.POST("/checkout", h.Checkout)
	api.PATCH("/profile", h.PatchProfile)
}
