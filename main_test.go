// main_test.go
package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"go-coach-register/controllers"
)

// TestHealthEndpoint tests the /health endpoint.
// Given: A router with the health endpoint registered.
// When: A GET request is made to /health.
// Then: It should return HTTP 200 and the expected content.
func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	router.GET("/health", controllers.Health)

	req, _ := http.NewRequest("GET", "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, resp.Code)
	}
	if resp.Body.String() != "OK" {
		t.Errorf("Expected response body 'OK', got %q", resp.Body.String())
	}
}
