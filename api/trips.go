package api

import (
	"net/http"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/service/trips"
	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	service trips.TripUseCase
}

type estimateRequest struct {
	Stops []domain.TripStop `json:"stops"`
}

func NewTripHandler(service trips.TripUseCase) *TripHandler {
	return &TripHandler{service: service}
}

func (h *TripHandler) Register(router *gin.RouterGroup, requireTraveler gin.HandlerFunc) {
	router.GET("/planner", h.planner)
	router.POST("/estimate", h.estimate)

	router.GET("", requireTraveler, h.list)
	router.POST("", requireTraveler, h.create)
	router.GET("/:id", requireTraveler, h.get)
	router.DELETE("/:id", requireTraveler, h.delete)
}

func (h *TripHandler) planner(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Planner())
}

func (h *TripHandler) estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	est, err := h.service.Estimate(req.Stops)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_days":             est.TotalDays,
		"estimated_budget_paise": est.EstimatedBudgetPaise,
		"estimated_budget_label": domain.FormatRupees(est.EstimatedBudgetPaise),
	})
}

func (h *TripHandler) list(c *gin.Context) {
	list, err := h.service.ListTrips(c.Request.Context(), travelerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *TripHandler) create(c *gin.Context) {
	var input trips.CreateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	trip, err := h.service.CreateTrip(c.Request.Context(), travelerID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *TripHandler) get(c *gin.Context) {
	trip, err := h.service.GetTrip(c.Request.Context(), travelerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) delete(c *gin.Context) {
	if err := h.service.DeleteTrip(c.Request.Context(), travelerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
