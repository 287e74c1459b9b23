package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	CategoryHandler  *CategoryHandler
	ProductHandler   *ProductHandler
	CustomerHandler  *CustomerHandler
	OrderHandler     *OrderHandler
	OrderItemHandler *OrderItemHandler
	SearchHandler    *SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	categories := v1.Group("/categories")
	categories.GET("", d.CategoryHandler.GetCategories)
	categories.POST("", d.CategoryHandler.CreateCategory)
	categories.GET("/count", d.CategoryHandler.CountCategories)
	categories.GET("/by-name/:name", d.CategoryHandler.GetCategoryByName)
	categories.GET("/:id", d.CategoryHandler.GetCategory)
	categories.PUT("/:id", d.CategoryHandler.UpdateCategory)
	categories.DELETE("/:id", d.CategoryHandler.DeleteCategory)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.POST("", d.ProductHandler.CreateProduct)
	products.GET("/count", d.ProductHandler.CountProducts)
	products.GET("/search", d.ProductHandler.SearchProducts)
	products.GET("/price-range", d.ProductHandler.GetProductsByPriceRange)
	products.GET("/in-stock", d.ProductHandler.GetProductsInStock)
	products.GET("/top-selling", d.ProductHandler.GetTopSellingProducts)
	products.GET("/category/:categoryId", d.ProductHandler.GetProductsByCategory)
	products.GET("/category/:categoryId/by-price", d.ProductHandler.GetProductsByCategoryByPrice)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.PATCH("/:id/stock", d.ProductHandler.UpdateStock)
	products.PATCH("/:id/price", d.ProductHandler.UpdatePrice)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	customers := v1.Group("/customers")
	customers.GET("", d.CustomerHandler.GetCustomers)
	customers.POST("", d.CustomerHandler.CreateCustomer)
	customers.GET("/count", d.CustomerHandler.CountCustomers)
	customers.GET("/search", d.CustomerHandler.SearchCustomers)
	customers.GET("/active", d.CustomerHandler.GetActiveCustomers)
	customers.GET("/by-email/:email", d.CustomerHandler.GetCustomerByEmail)
	customers.GET("/status/:status", d.CustomerHandler.GetCustomersByStatus)
	customers.GET("/:id", d.CustomerHandler.GetCustomer)
	customers.PUT("/:id", d.CustomerHandler.UpdateCustomer)
	customers.PATCH("/:id/status", d.CustomerHandler.UpdateStatus)
	customers.POST("/:id/suspend", d.CustomerHandler.SuspendCustomer)
	customers.POST("/:id/activate", d.CustomerHandler.ActivateCustomer)
	customers.DELETE("/:id", d.CustomerHandler.DeleteCustomer)

	orders := v1.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/count", d.OrderHandler.CountOrders)
	orders.GET("/date-range", d.OrderHandler.GetOrdersByDateRange)
	orders.GET("/by-number/:orderNumber", d.OrderHandler.GetOrderByNumber)
	orders.GET("/status/:status", d.OrderHandler.GetOrdersByStatus)
	orders.GET("/customer/:customerId", d.OrderHandler.GetOrdersByCustomer)
	orders.GET("/customer/:customerId/with-items", d.OrderHandler.GetOrdersWithItemsByCustomer)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.PUT("/:id", d.OrderHandler.UpdateOrder)
	orders.PATCH("/:id/status", d.OrderHandler.UpdateStatus)
	orders.POST("/:id/cancel", d.OrderHandler.CancelOrder)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder)

	items := v1.Group("/order-items")
	items.GET("", d.OrderItemHandler.GetOrderItems)
	items.POST("", d.OrderItemHandler.CreateOrderItem)
	items.GET("/count", d.OrderItemHandler.CountOrderItems)
	items.GET("/order/:orderId", d.OrderItemHandler.GetOrderItemsByOrder)
	items.GET("/order/:orderId/count", d.OrderItemHandler.CountOrderItemsByOrder)
	items.GET("/product/:productId", d.OrderItemHandler.GetOrderItemsByProduct)
	items.GET("/:id", d.OrderItemHandler.GetOrderItem)
	items.PATCH("/:id/quantity", d.OrderItemHandler.UpdateQuantity)
	items.DELETE("/:id", d.OrderItemHandler.DeleteOrderItem)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.SearchProducts)
	}
}
