package router

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/cache"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/handler/admin"
	"storefront/internal/handler/auth"
	"storefront/internal/handler/orders"
	"storefront/internal/handler/shop"
	"storefront/internal/middleware"
	"storefront/internal/worker"
)

// Setup registers every route and its middleware.
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, wp worker.Pool, uploadDir string) {
	// Public storefront.
	e.GET("/", shop.HomeHandler(db))
	e.GET("/news", shop.NewsListHandler(db))
	e.GET("/news/:id", shop.NewsDetailHandler(db))
	e.GET("/catalog", shop.CatalogHandler(db))
	e.GET("/product/:id", shop.ProductDetailHandler(db))

	// Order flow. OptionalAuth links orders to logged-in customers.
	e.GET("/order/create/:product_id", orders.OrderFormHandler(db))
	e.POST("/order/create/:product_id", orders.CreateOrderHandler(db), middleware.OptionalAuth)
	e.GET("/order/success/:id", orders.OrderSuccessHandler(db))
	e.GET("/order/status/:id", orders.OrderStatusHandler(db))

	// JSON API.
	e.GET("/api/products", shop.ProductsAPIHandler(db, cch))
	e.GET("/api/search", shop.SearchAPIHandler(db))
	e.GET("/ping", handler.PingHandler(db, cch))

	// Accounts.
	e.POST("/register", auth.RegisterHandler(db))
	e.POST("/login", auth.LoginHandler(db))
	e.GET("/logout", auth.LogoutHandler(), middleware.RequireAuth)
	e.GET("/profile", auth.ProfileHandler(db), middleware.RequireAuth)

	// Back office.
	adm := e.Group("/admin", middleware.RequireAdmin)
	adm.GET("", admin.DashboardHandler(db))

	adm.GET("/news", admin.NewsListHandler(db))
	adm.POST("/news", admin.CreateArticleHandler(db, uploadDir))
	adm.PUT("/news/:id", admin.UpdateArticleHandler(db, uploadDir))
	adm.DELETE("/news/:id", admin.DeleteArticleHandler(db, uploadDir))

	adm.GET("/products", admin.ProductsListHandler(db))
	adm.POST("/products", admin.CreateProductHandler(db, cch, wp, uploadDir))
	adm.PUT("/products/:id", admin.UpdateProductHandler(db, cch, wp, uploadDir))
	adm.DELETE("/products/:id", admin.DeleteProductHandler(db, cch, wp, uploadDir))
	adm.POST("/products/:id/toggle", admin.ToggleProductHandler(db, cch, wp))

	adm.GET("/orders", admin.OrdersListHandler(db))
	adm.GET("/orders/:id", admin.OrderDetailHandler(db))
	adm.PUT("/orders/:id", admin.UpdateOrderStatusHandler(db))

	adm.GET("/users", admin.UsersListHandler(db))
}
