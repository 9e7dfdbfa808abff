package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/abhishek98s/LITMARK-BACKEND2/config"
	"github.com/abhishek98s/LITMARK-BACKEND2/database"
	"github.com/abhishek98s/LITMARK-BACKEND2/handlers"
	"github.com/abhishek98s/LITMARK-BACKEND2/logger"
	"github.com/abhishek98s/LITMARK-BACKEND2/middleware"
	"github.com/abhishek98s/LITMARK-BACKEND2/models"
	"github.com/abhishek98s/LITMARK-BACKEND2/repositories"
	"github.com/abhishek98s/LITMARK-BACKEND2/services"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting litmark service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.SetLevel(cfg.Log.Level)

	db, err := database.Open(&cfg.Database)
	if err != nil {
		log.Fatalf("init mysql failed: %v", err)
	}

	db.AutoMigrate(
		&models.User{},
		&models.Image{},
		&models.Folder{},
		&models.Chip{},
		&models.Bookmark{},
	)
	log.Println("database migration completed")

	redisClient := database.OpenRedis(&cfg.Redis)

	if err := os.MkdirAll(filepath.Join(cfg.Storage.BasePath, "images"), 0o755); err != nil {
		log.Fatalf("create images dir failed: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(cfg.Storage.BasePath, "thumbnails"), 0o755); err != nil {
		log.Fatalf("create thumbnails dir failed: %v", err)
	}

	repoContainer := repositories.NewGormRepositories(db, redisClient).BuildContainer()
	lookup := services.NewHTTPPageLookup(time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second)
	serviceContainer := services.NewContainer(repoContainer, lookup)
	handlers.SetServices(serviceContainer)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	r.Static("/static", cfg.Storage.BasePath)
	setupRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", handlers.GetProfile)

		protected.GET("/folders", handlers.ListTopFolders)
		protected.GET("/folders/sort", handlers.SortFolders)
		protected.GET("/folders/:id", handlers.GetFolder)
		protected.GET("/folders/:id/children", handlers.ListChildFolders)
		protected.POST("/folders", handlers.CreateFolder)
		protected.PATCH("/folders/:id", handlers.RenameFolder)
		protected.PATCH("/folders/:id/move", handlers.MoveFolder)
		protected.DELETE("/folders/:id", handlers.DeleteFolder)

		protected.GET("/bookmarks", handlers.ListBookmarks)
		protected.GET("/bookmarks/:id", handlers.GetBookmark)
		protected.POST("/bookmarks", handlers.CreateBookmark)
		protected.PATCH("/bookmarks/:id", handlers.UpdateBookmark)
		protected.DELETE("/bookmarks/:id", handlers.DeleteBookmark)
		protected.PATCH("/bookmarks/:id/click", handlers.MarkBookmarkClicked)
		protected.PATCH("/bookmarks/:id/unclick", handlers.UnmarkBookmarkClicked)
		protected.GET("/bookmarks/folder/:folder_id", handlers.ListFolderBookmarks)
		protected.GET("/bookmarks/folder/:folder_id/search", handlers.SearchBookmarks)
		protected.GET("/bookmarks/folder/:folder_id/sort", handlers.SortBookmarks)

		protected.GET("/recent", handlers.ListRecentBookmarks)
		protected.GET("/recent/sort", handlers.SortRecentBookmarks)
		protected.GET("/recent/search", handlers.SearchRecentBookmarks)
		protected.GET("/recent/chip/:chip_id", handlers.FilterRecentBookmarksByChip)

		protected.GET("/chips", handlers.ListChips)
		protected.GET("/chips/folder/:folder_id", handlers.ListFolderChips)
		protected.POST("/chips", handlers.CreateChip)
		protected.PATCH("/chips/:id", handlers.RenameChip)
		protected.DELETE("/chips/:id", handlers.DeleteChip)

		protected.GET("/images/:id", handlers.GetImage)
		protected.POST("/images", handlers.UploadImage)
		protected.PATCH("/images/:id", handlers.UpdateImage)
		protected.DELETE("/images/:id", handlers.DeleteImage)

		protected.GET("/users/:id", handlers.GetUser)
		protected.PATCH("/users/:id", handlers.UpdateUser)
		protected.DELETE("/users/:id", handlers.DeleteUser)
	}
}
