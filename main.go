// main.go
package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"go-coach-register/config"
	"go-coach-register/controllers"
	"go-coach-register/database"
	"go-coach-register/middleware"
	"go-coach-register/services"
)

func main() {
	// Configuration is built exactly once; it is never re-read per request.
	config.LoadConfig()
	if err := config.AppConfig.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if config.AppConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the sqlite store and run idempotent migrations.
	database.ConnectDb(config.AppConfig.DBPath)

	store := services.NewStoreService(database.Database.Db, config.AppConfig.Location())
	notifier := services.NewNotifyService(config.AppConfig)

	registration := controllers.NewRegistrationController(store, notifier)
	admin := controllers.NewAdminController(store)

	router := gin.Default()

	// Session store for the staged step-1 contact info. Each client's
	// in-progress registration lives in its own signed cookie session.
	sessionStore := cookie.NewStore([]byte(config.AppConfig.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400, // 1 day
		HttpOnly: true,
		Secure:   config.AppConfig.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("coachsession", sessionStore))

	// Load HTML templates and static assets.
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	// Health check for the deployment platform.
	router.GET("/health", controllers.Health)

	// Registration flow.
	router.GET("/", registration.Index)
	router.GET("/basic", registration.ShowBasicForm)
	router.POST("/basic", registration.SubmitBasicInfo)
	router.GET("/certificates", middleware.StagedInfoRequired, registration.ShowCertificateForm)
	router.POST("/certificates", middleware.StagedInfoRequired, registration.SubmitCertificates)

	// Admin report and form-share QR code.
	router.GET("/admin", admin.AdminReport)
	router.GET("/qrcode", controllers.GetQRCode)

	if err := router.Run(":" + config.AppConfig.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
