package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Quentin693/NestOrProject/internal/cart"
	"github.com/Quentin693/NestOrProject/internal/dessert"
	"github.com/Quentin693/NestOrProject/internal/drink"
	"github.com/Quentin693/NestOrProject/internal/menu"
	"github.com/Quentin693/NestOrProject/internal/order"
	"github.com/Quentin693/NestOrProject/internal/pizza"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Pizza   *pizza.Handler
	Drink   *drink.Handler
	Dessert *dessert.Handler
	Menu    *menu.Handler
	Cart    *cart.Handler
	Order   *order.Handler
}

func New(h Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.Default()
	r.Use(middleware...)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	pizzas := r.Group("/pizzas")
	{
		pizzas.GET("", h.Pizza.List)
		pizzas.GET("/search", h.Pizza.Search)
		pizzas.GET("/:id", h.Pizza.Get)
		pizzas.POST("", h.Pizza.Create)
		pizzas.PUT("/:id", h.Pizza.Update)
		pizzas.DELETE("/:id", h.Pizza.Delete)
	}

	drinks := r.Group("/drinks")
	{
		drinks.GET("", h.Drink.List)
		drinks.GET("/:id", h.Drink.Get)
		drinks.POST("", h.Drink.Create)
		drinks.PUT("/:id", h.Drink.Update)
		drinks.DELETE("/:id", h.Drink.Delete)
	}

	desserts := r.Group("/desserts")
	{
		desserts.GET("", h.Dessert.List)
		desserts.GET("/:id", h.Dessert.Get)
		desserts.POST("", h.Dessert.Create)
		desserts.PUT("/:id", h.Dessert.Update)
		desserts.DELETE("/:id", h.Dessert.Delete)
	}

	r.GET("/menu", h.Menu.GetFullMenu)
	r.GET("/menu/:category", h.Menu.GetByCategory)

	r.POST("/cart/quote", h.Cart.Quote)

	orders := r.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("", h.Order.Create)
		orders.PUT("/:id", h.Order.Update)
		orders.PATCH("/:id/processed", h.Order.MarkProcessed)
		orders.PATCH("/:id/price", h.Order.SetTotalPrice)
		orders.PATCH("/:id", h.Order.PatchField)
		orders.DELETE("/:id", h.Order.Delete)
	}

	return r
}
