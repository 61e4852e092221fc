package api

import (
	"net/http"

	"github.com/Domenick1991/tripverse/internal/service/navigation"
	"github.com/gin-gonic/gin"
)

type ScreenHandler struct {
	service navigation.NavigationUseCase
}

func NewScreenHandler(service navigation.NavigationUseCase) *ScreenHandler {
	return &ScreenHandler{service: service}
}

func (h *ScreenHandler) Register(router *gin.RouterGroup) {
	router.GET("/screens", h.list)
	router.GET("/screens/:id", h.resolve)
	router.POST("/screens/splash/complete", h.completeSplash)
	router.GET("/menu", h.menu)
}

func (h *ScreenHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"start":   h.service.Start(),
		"screens": h.service.Screens(),
	})
}

func (h *ScreenHandler) resolve(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Resolve(c.Param("id")))
}

func (h *ScreenHandler) completeSplash(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CompleteSplash())
}

func (h *ScreenHandler) menu(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Menu())
}
