package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/tripverse/internal/domain"
	"github.com/Domenick1991/tripverse/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	TransportID int64  `json:"transport_id" binding:"required"`
	SeatNumber  int    `json:"seat_number"`
	Email       string `json:"email"`
	Insurance   string `json:"insurance"`
}

type bookingResponse struct {
	Token       string `json:"token"`
	Reference   string `json:"reference"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
	TransportID int64  `json:"transport_id"`
	SeatNumber  int    `json:"seat_number"`
	Email       string `json:"email"`
	Insurance   string `json:"insurance"`
	TotalPaise  int64  `json:"total_paise"`
	TotalLabel  string `json:"total_label"`
}

func newBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		Token:       b.Token,
		Reference:   b.Reference(),
		Status:      string(b.Status),
		ExpiresAt:   b.ExpiresAt.Format(time.RFC3339),
		TransportID: b.TransportID,
		SeatNumber:  b.SeatNumber,
		Email:       b.Email,
		Insurance:   string(b.Insurance),
		TotalPaise:  b.TotalPaise,
		TotalLabel:  domain.FormatRupees(b.TotalPaise),
	}
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:token", h.get)
	router.PUT("/:token", h.confirm)
	router.DELETE("/:token", h.cancel)
}

func (h *BookingHandler) RegisterInsurance(router *gin.RouterGroup) {
	router.GET("/plans", h.insurancePlans)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		TransportID: req.TransportID,
		SeatNumber:  req.SeatNumber,
		Email:       req.Email,
		Insurance:   domain.InsurancePlanID(req.Insurance),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newBookingResponse(b))
}

func (h *BookingHandler) get(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingResponse(b))
}

func (h *BookingHandler) confirm(c *gin.Context) {
	b, err := h.service.ConfirmBooking(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingResponse(b))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	b, err := h.service.CancelBooking(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBookingResponse(b))
}

func (h *BookingHandler) insurancePlans(c *gin.Context) {
	c.JSON(http.StatusOK, domain.InsurancePlans)
}
