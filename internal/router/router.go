package router

import (
	"net/http"

	"bookvault/internal/config"
	"bookvault/internal/handler"
	"bookvault/internal/middleware"
	"bookvault/internal/service"
	"bookvault/internal/storage"
	"bookvault/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires handlers to services.
func SetupRouter(cfg *config.Config, db *gorm.DB, uploader storage.Uploader) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	dataStore := store.NewGormStore(db)
	authService := service.NewAuthService(dataStore, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	bookService := service.NewBookService(dataStore, uploader)

	// liveness
	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ====== API ======
	api := r.Group("/api")

	// 登录/注册接口（不需要鉴权）
	authHandler := handler.NewAuthHandler(authService)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// 需要登录才能访问的接口
	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(authService),
		middleware.AuditMiddleware(db),
	)

	protected.GET("/me", handler.GetMe)

	bookHandler := handler.NewBookHandler(bookService)
	protected.POST("/books", bookHandler.CreateBook)
	protected.GET("/books", bookHandler.ListBooks)
	protected.GET("/books/stats", bookHandler.GetStats)
	protected.GET("/books/:id", bookHandler.GetBook)
	protected.PATCH("/books/:id", bookHandler.UpdateBook)
	protected.DELETE("/books/:id", bookHandler.DeleteBook)

	exportHandler := handler.NewExportHandler(bookService)
	protected.GET("/books/export/csv", exportHandler.ExportCSV)
	protected.GET("/books/export/xlsx", exportHandler.ExportXLSX)

	logHandler := handler.NewLogHandler(db, cfg.App.PageSize)
	protected.GET("/logs", logHandler.ListLogs)

	return r
}
