package router

import (
	"github.com/gin-gonic/gin"

	"kitchen_orders/internal/interfaces/http/handler"
)

func RegisterRoutes(
	r *gin.Engine,
	health *handler.HealthHandler,
	dishes *handler.DishHandler,
	orders *handler.OrderHandler,
) {
	r.GET("/health", health.Health)

	api := r.Group("/api")
	{
		api.GET("/dishes", dishes.ListDishes)
		api.GET("/today-order", orders.TodayOrder)
		api.POST("/add-to-order", orders.AddToOrder)
		api.PUT("/order-item/:id", orders.UpdateItem)
		api.DELETE("/order-item/:id", orders.DeleteItem)
		api.POST("/submit-order", orders.SubmitOrder)
		api.POST("/finalize-order", orders.FinalizeOrder)
	}
}
