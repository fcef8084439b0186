package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kitchen_orders/internal/domain/catalog"
	"kitchen_orders/internal/domain/order"
)

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// respondError maps domain errors onto the client-facing envelope: 404 for
// missing entities, 400 for validation and resolution failures, 500 for
// everything unclassified.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, catalog.ErrDishNotFound),
		errors.Is(err, catalog.ErrCookNotFound),
		errors.Is(err, order.ErrLineNotFound),
		errors.Is(err, order.ErrNothingToFinalize):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrPastOrderDate),
		errors.Is(err, order.ErrInvalidOrderDate),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrMissingDefaultCook),
		errors.Is(err, order.ErrEmptyUpdate):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}
