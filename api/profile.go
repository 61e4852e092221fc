package api

import (
	"net/http"

	"github.com/Domenick1991/tripverse/internal/service/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	service profile.ProfileUseCase
}

func NewProfileHandler(service profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Register(router *gin.RouterGroup, requireTraveler gin.HandlerFunc) {
	router.POST("/login", h.login)
	router.GET("/profile", requireTraveler, h.get)
	router.PUT("/profile", requireTraveler, h.update)
}

func (h *ProfileHandler) login(c *gin.Context) {
	var input profile.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}
	result, err := h.service.Login(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ProfileHandler) get(c *gin.Context) {
	p, err := h.service.GetProfile(c.Request.Context(), travelerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) update(c *gin.Context) {
	var patch profile.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, err.Error())
		return
	}
	p, err := h.service.UpdateProfile(c.Request.Context(), travelerID(c), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
