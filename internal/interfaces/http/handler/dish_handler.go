package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "kitchen_orders/internal/application/order"
)

type DishHandler struct {
	svc *app.Service
}

func NewDishHandler(svc *app.Service) *DishHandler {
	return &DishHandler{svc: svc}
}

// ListDishes returns the active menu with each dish's default cook joined.
func (h *DishHandler) ListDishes(c *gin.Context) {
	dishes, err := h.svc.ListDishes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dishes)
}
