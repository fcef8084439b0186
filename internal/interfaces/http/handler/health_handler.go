package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kitchen_orders/internal/config"
)

// PartnerPinger probes the external endpoint for liveness.
type PartnerPinger interface {
	Ping(ctx context.Context) bool
}

type HealthHandler struct {
	cfg     *config.Config
	partner PartnerPinger
}

func NewHealthHandler(cfg *config.Config, partner PartnerPinger) *HealthHandler {
	return &HealthHandler{cfg: cfg, partner: partner}
}

// Health reports configuration state; `?probe=true` additionally performs
// a short live probe against the partner endpoint.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := gin.H{
		"status":             "healthy",
		"timestamp":          time.Now().Format(time.RFC3339),
		"database_config":    h.cfg.DB.Host != "",
		"partner_configured": h.cfg.Partner.Configured(),
	}

	if c.Query("probe") == "true" && h.partner != nil {
		resp["partner_reachable"] = h.partner.Ping(c.Request.Context())
	}

	c.JSON(http.StatusOK, resp)
}
