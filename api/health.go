package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/tripverse/internal/service/health"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service health.HealthUseCase
}

func NewHealthHandler(service health.HealthUseCase) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) Register(router *gin.RouterGroup) {
	router.GET("/test", h.test)
}

// test answers with the row list of SELECT NOW().
func (h *HealthHandler) test(c *gin.Context) {
	now, err := h.service.Now(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, []gin.H{{"now": now.Format(time.RFC3339Nano)}})
}

func liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
