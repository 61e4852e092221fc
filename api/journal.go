package api

import (
	"net/http"

	"github.com/Domenick1991/tripverse/internal/service/journal"
	"github.com/gin-gonic/gin"
)

type JournalHandler struct {
	service journal.JournalUseCase
}

func NewJournalHandler(service journal.JournalUseCase) *JournalHandler {
	return &JournalHandler{service: service}
}

func (h *JournalHandler) Register(router *gin.RouterGroup, requireTraveler gin.HandlerFunc) {
	router.GET("/moods", h.moods)

	router.GET("", requireTraveler, h.list)
	router.POST("", requireTraveler, h.create)
	router.DELETE("/:id", requireTraveler, h.delete)
}

func (h *JournalHandler) moods(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Moods())
}

func (h *JournalHandler) list(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context(), travelerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *JournalHandler) create(c *gin.Context) {
	var input journal.CreateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	entry, err := h.service.CreateEntry(c.Request.Context(), travelerID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *JournalHandler) delete(c *gin.Context) {
	if err := h.service.DeleteEntry(c.Request.Context(), travelerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
