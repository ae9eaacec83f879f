// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-coach-register/config"
	"go-coach-register/logger"
	"go-coach-register/services"
)

// Health responds to the deployment platform's health checks.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: health check requested")
	c.String(http.StatusOK, "OK")
}

// GetQRCode serves a PNG QR code linking to the registration form, so
// the form URL can be printed and posted at venues.
func GetQRCode(c *gin.Context) {
	formURL := config.AppConfig.ApplicationURL + "/basic"
	png, err := services.GenerateQRCode(formURL, 256)
	if err != nil {
		logger.Error.Println("GetQRCode: failed to generate QR code:", err)
		c.String(http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
