package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	finalizeapp "kitchen_orders/internal/application/finalize"
	app "kitchen_orders/internal/application/order"
	"kitchen_orders/internal/domain/repository"
)

type OrderHandler struct {
	svc      *app.Service
	finalize *finalizeapp.Service
}

func NewOrderHandler(svc *app.Service, finalize *finalizeapp.Service) *OrderHandler {
	return &OrderHandler{svc: svc, finalize: finalize}
}

// TodayOrder lists a day's order lines; the date defaults to today.
func (h *OrderHandler) TodayOrder(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}

	lines, err := h.svc.DayOrders(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"order_date":  date,
		"items":       lines,
		"total_items": len(lines),
	})
}

func (h *OrderHandler) AddToOrder(c *gin.Context) {
	var cmd app.AddToOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	line, err := h.svc.AddToOrder(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "dish added to day order", line)
}

type updateItemRequest struct {
	Quantity       *int    `json:"quantity"`
	Notes          *string `json:"notes"`
	AssignedCookID *string `json:"assigned_cook_id"`
}

func (h *OrderHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	line, err := h.svc.UpdateLine(c.Request.Context(), c.Param("id"), repository.LineUpdate{
		Quantity:       req.Quantity,
		Notes:          req.Notes,
		AssignedCookID: req.AssignedCookID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "order line updated", line)
}

func (h *OrderHandler) DeleteItem(c *gin.Context) {
	if err := h.svc.DeleteLine(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "order line deleted", nil)
}

// SubmitOrder takes a whole-day order. Persistence failures surface as
// errors; a failed partner forward still answers 201, reported through
// the external_sync fields.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var cmd app.SubmitOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	summary, err := h.svc.SubmitOrder(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "order recorded and forwarded to the partner"
	if !summary.ExternalSync {
		message = "order recorded, but the partner forward failed"
	}
	respondOK(c, http.StatusCreated, message, summary)
}

// FinalizeOrder closes a day's order and forwards it.
func (h *OrderHandler) FinalizeOrder(c *gin.Context) {
	orderDate := c.Query("order_date")
	if orderDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "order_date is required"})
		return
	}

	summary, err := h.finalize.Finalize(c.Request.Context(), orderDate)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "day order closed and forwarded to the partner"
	if !summary.ExternalSync {
		message = "day order closed, but the partner forward failed"
	}
	respondOK(c, http.StatusCreated, message, summary)
}
