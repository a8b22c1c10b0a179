package main

import (
	"net/http"
	"os"

	"mindwrite-api/cache"
	"mindwrite-api/config"
	"mindwrite-api/handlers"
	"mindwrite-api/helper"
	"mindwrite-api/repositories"
	"mindwrite-api/services"

	"github.com/joho/godotenv"
)

func main() {
	logger := config.InitLogger()

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found")
	}

	db := config.InitDB()
	appCache := cache.New(config.InitRedis())

	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo, tagRepo, commentRepo, appCache)
	commentService := services.NewCommentService(commentRepo, postRepo)
	tagService := services.NewTagService(tagRepo, appCache)

	httpHelper := helper.NewHTTPHelper()

	router := handlers.NewRouter(
		handlers.NewAuthHandler(authService, httpHelper),
		handlers.NewAdminHandler(authService, httpHelper),
		handlers.NewPostHandler(postService, httpHelper),
		handlers.NewCommentHandler(commentService, httpHelper),
		handlers.NewTagHandler(tagService, httpHelper),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
