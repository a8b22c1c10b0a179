package handlers

import (
	"net/http"

	"mindwrite-api/helper"
	"mindwrite-api/models"
	"mindwrite-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CheckUsername answers available=false for a missing parameter rather than
// erroring, so the signup form can poll it freely.
func (h *AuthHandler) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusOK, models.CheckUsernameResponse{Available: false})
		return
	}

	available, err := h.authService.IsUsernameAvailable(username)
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CheckUsernameResponse{Available: available})
}

func (h *AuthHandler) GetPublicProfile(c *gin.Context) {
	profile, err := h.authService.GetPublicProfile(c.Param("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetProfile echoes the caller's token claims; no database round trip.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"id":        c.GetUint("user_id"),
		"username":  c.GetString("username"),
		"role":      c.GetString("role"),
		"firstName": c.GetString("first_name"),
		"lastName":  c.GetString("last_name"),
	})
}

func (h *AuthHandler) UpdateOwnProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}

	user, err := h.authService.UpdateOwnProfile(c.GetUint("user_id"), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
