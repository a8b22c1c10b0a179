package handlers

import (
	"net/http"
	"strconv"

	"mindwrite-api/helper"
	"mindwrite-api/models"
	"mindwrite-api/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, h *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, Helper: h}
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.postService.GetPosts()
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid post ID")
		return
	}

	post, err := h.postService.GetPost(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	post, err := h.postService.CreatePost(req, c.GetUint("user_id"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost lets the author or any admin through; everyone else gets 403.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid post ID")
		return
	}

	post, err := h.postService.GetPost(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if !h.canManage(c, post) {
		h.Helper.SendForbiddenError(c, "you may not modify this post")
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	updated, err := h.postService.UpdatePost(uint(id), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid post ID")
		return
	}

	post, err := h.postService.GetPost(uint(id))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	if !h.canManage(c, post) {
		h.Helper.SendForbiddenError(c, "you may not delete this post")
		return
	}

	if err := h.postService.DeletePost(uint(id)); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (h *PostHandler) canManage(c *gin.Context, post *models.Post) bool {
	if c.GetString("role") == string(models.RoleAdmin) {
		return true
	}
	return post.AuthorID == c.GetUint("user_id")
}
