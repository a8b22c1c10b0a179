package handlers

import (
	"net/http"
	"strconv"

	"mindwrite-api/helper"
	"mindwrite-api/models"
	"mindwrite-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "invalid request body")
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	comment, err := h.commentService.CreateComment(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) GetCommentsByPost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid post ID")
		return
	}

	comments, err := h.commentService.GetCommentsByPost(uint(postID))
	if err != nil {
		h.Helper.SendInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
