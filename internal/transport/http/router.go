package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/MhMunna12/kutumbari-restaurant-server/internal/handlers"
	"github.com/MhMunna12/kutumbari-restaurant-server/internal/middleware/auth"
)

type Deps struct {
	DB             *gorm.DB
	JWTSecret      []byte
	MenuHandler    *handlers.MenuHandler
	ReviewHandler  *handlers.ReviewHandler
	CartHandler    *handlers.CartHandler
	UserHandler    *handlers.UserHandler
	PaymentHandler *handlers.PaymentHandler
	StatsHandler   *handlers.StatsHandler
	TokenHandler   *handlers.TokenHandler
}

func Register(e *echo.Echo, d *Deps) {
	requireLogin := auth.RequireLogin(d.JWTSecret)
	adminOnly := auth.AdminOnly(d.DB)

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Welcome Kutumbari!!!")
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.POST("/jwt", d.TokenHandler.IssueToken)

	e.GET("/menu", d.MenuHandler.GetMenu)
	e.GET("/menu/search", d.MenuHandler.SearchMenu)
	e.GET("/menu/:id", d.MenuHandler.GetMenuItem)
	e.POST("/menu", d.MenuHandler.CreateMenuItem, requireLogin, adminOnly)
	e.PATCH("/menu/:id", d.MenuHandler.PatchMenuItem, requireLogin, adminOnly)
	e.DELETE("/menu/:id", d.MenuHandler.DeleteMenuItem, requireLogin, adminOnly)

	e.GET("/reviews", d.ReviewHandler.GetReviews)

	e.GET("/carts", d.CartHandler.GetCart, requireLogin)
	e.POST("/carts", d.CartHandler.AddToCart)
	e.DELETE("/carts/:id", d.CartHandler.DeleteFromCart, requireLogin)

	e.GET("/users", d.UserHandler.GetUsers, requireLogin, adminOnly)
	e.POST("/users", d.UserHandler.Register)
	e.GET("/users/admin/:email", d.UserHandler.CheckAdmin, requireLogin)
	e.PATCH("/users/admin/:id", d.UserHandler.PromoteUser, requireLogin, adminOnly)
	e.DELETE("/users/:id", d.UserHandler.DeleteUser, requireLogin, adminOnly)

	e.POST("/create-payment-intent", d.PaymentHandler.CreatePaymentIntent)
	e.POST("/payments", d.PaymentHandler.RecordPayment)
	e.GET("/payment/:email", d.PaymentHandler.GetPayments, requireLogin)

	e.GET("/admin-stats", d.StatsHandler.AdminStats, requireLogin, adminOnly)
	e.GET("/order-stats", d.StatsHandler.OrderStats, requireLogin, adminOnly)
}
