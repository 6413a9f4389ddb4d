package router

import (
	"vibecart/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/logout", handler.Logout, authRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts, authRequired)
	products.GET("/categories", handler.GetCategories, authRequired)
	products.GET("/:id", handler.GetProductByID, authRequired)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupCartRoutes(api *echo.Group, handler *rest.CartHandler, authRequired echo.MiddlewareFunc) {
	cart := api.Group("/cart", authRequired)

	cart.GET("", handler.GetCart)
	cart.POST("", handler.AddItem)
	cart.PUT("/:id", handler.UpdateItem)
	cart.DELETE("/:id", handler.RemoveItem)
	cart.DELETE("", handler.ClearCart)
}

func SetupCheckoutRoutes(api *echo.Group, handler *rest.CheckoutHandler, authRequired echo.MiddlewareFunc) {
	checkout := api.Group("/checkout", authRequired)

	checkout.POST("", handler.CreateOrder)
	checkout.GET("/orders", handler.GetOwnOrders)
}

func SetupAdminOrderRoutes(api *echo.Group, handler *rest.AdminOrdersHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	orders := api.Group("/admin/orders", authRequired, adminOnly)

	orders.GET("", handler.GetAllOrders)
	orders.GET("/:id", handler.GetOrderByID)
	orders.PUT("/:id", handler.UpdateOrderStatus)
}
