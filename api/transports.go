package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/service/transport"
	"github.com/gin-gonic/gin"
)

type TransportHandler struct {
	service transport.TransportUseCase
}

type transportResponse struct {
	domain.Transport
	Route      string `json:"route"`
	Duration   string `json:"duration"`
	StopsLabel string `json:"stops_label"`
	PriceLabel string `json:"price_label"`
}

func newTransportResponse(t domain.Transport) transportResponse {
	return transportResponse{
		Transport:  t,
		Route:      t.Route(),
		Duration:   t.DurationLabel(),
		StopsLabel: t.StopsLabel(),
		PriceLabel: domain.FormatRupees(t.PricePaise),
	}
}

func NewTransportHandler(service transport.TransportUseCase) *TransportHandler {
	return &TransportHandler{service: service}
}

func (h *TransportHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/modes", h.modes)
	router.GET("/:id", h.get)
}

func (h *TransportHandler) list(c *gin.Context) {
	transports, err := h.service.List(c.Request.Context(), c.Query("mode"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]transportResponse, 0, len(transports))
	for _, t := range transports {
		resp = append(resp, newTransportResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransportHandler) modes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Modes())
}

func (h *TransportHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "invalid id")
		return
	}
	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransportResponse(*t))
}
