package handlers

import (
	"net/http"

	"mindwrite-api/middleware"
	"mindwrite-api/models"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the full route table. main and the tests share it so the
// tested routes are exactly the served ones.
func NewRouter(
	authHandler *AuthHandler,
	adminHandler *AdminHandler,
	postHandler *PostHandler,
	commentHandler *CommentHandler,
	tagHandler *TagHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	requireAuth := middleware.AuthMiddleware()

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/check-username", authHandler.CheckUsername)
		auth.GET("/users/:username", authHandler.GetPublicProfile)
		auth.GET("/profile", requireAuth, authHandler.GetProfile)
		auth.PUT("/me", requireAuth, authHandler.UpdateOwnProfile)
	}

	admin := router.Group("/admin")
	admin.Use(requireAuth, middleware.RequireRole(string(models.RoleAdmin)))
	{
		admin.GET("/users", adminHandler.GetUsers)
		admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", postHandler.GetPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.POST("", requireAuth, postHandler.CreatePost)
		posts.PUT("/:id", requireAuth, postHandler.UpdatePost)
		posts.DELETE("/:id", requireAuth, postHandler.DeletePost)
	}

	comments := router.Group("/comments")
	{
		comments.POST("", requireAuth, commentHandler.CreateComment)
		comments.GET("/post/:postId", commentHandler.GetCommentsByPost)
	}

	tags := router.Group("/tags")
	{
		tags.GET("", tagHandler.GetTags)
		tags.GET("/with-count", tagHandler.GetTagsWithCount)
		tags.POST("", requireAuth, tagHandler.CreateTag)
	}

	return router
}
