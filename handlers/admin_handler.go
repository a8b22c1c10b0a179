package handlers

import (
	"net/http"
	"strconv"

	"mindwrite-api/helper"
	"mindwrite-api/models"
	"mindwrite-api/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the admin-only user management routes. Role gating
// happens in the router middleware; self-targeting rules live in the service.
type AdminHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAdminHandler(authService services.AuthService, h *helper.HTTPHelper) *AdminHandler {
	return &AdminHandler{authService: authService, Helper: h}
}

func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.authService.GetAllUsers()
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid user ID")
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	user, err := h.authService.UpdateUserRole(c.GetUint("user_id"), uint(targetID), req.Role)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "user role updated",
		"user":    gin.H{"id": user.ID, "username": user.Username, "role": user.Role},
	})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid user ID")
		return
	}

	if err := h.authService.DeactivateUser(c.GetUint("user_id"), uint(targetID)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deactivated"})
}
