package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service    catalog.CatalogUseCase
	highlights int
}

func NewCatalogHandler(service catalog.CatalogUseCase, highlights int) *CatalogHandler {
	return &CatalogHandler{service: service, highlights: highlights}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/home", h.home)

	destinations := router.Group("/destinations")
	destinations.GET("", h.listDestinations)
	destinations.GET("/categories", h.destinationCategories)
	destinations.GET("/:id", h.getDestination)

	places := router.Group("/places")
	places.GET("", h.listPlaces)
	places.GET("/categories", h.placeCategories)
}

func (h *CatalogHandler) home(c *gin.Context) {
	highlights, err := h.service.Highlights(c.Request.Context(), h.highlights)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"highlights":  highlights,
		"suggestions": domain.TripSuggestions,
	})
}

func (h *CatalogHandler) listDestinations(c *gin.Context) {
	destinations, err := h.service.ListDestinations(c.Request.Context(), c.Query("category"), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *CatalogHandler) destinationCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.DestinationCategories())
}

func (h *CatalogHandler) getDestination(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	d, err := h.service.GetDestination(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *CatalogHandler) listPlaces(c *gin.Context) {
	places, err := h.service.ListPlaces(c.Request.Context(), c.Query("city"), c.Query("category"), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

func (h *CatalogHandler) placeCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.PlaceCategories())
}
