// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"go-coach-register/middleware"
)

// setupTestRouter creates a new Gin engine with session middleware and fake HTML templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	// Set up sessions with cookie store.
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	// Create minimal templates to avoid panics during testing.
	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}

	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"main.html":         `<html><body>Basic info {{.Error}} {{.Name}} {{.School}} {{.Phone}}</body></html>`,
		"certificates.html": `<html><body>Certificates for {{.Info.Name}} {{.Error}}</body></html>`,
		"done.html":         `<html><body>Done {{.Name}}</body></html>`,
		"admin.html":        `<html><body>Report {{.TotalSubmissions}}/{{.TotalCertificates}}{{range .Rows}} {{.Name}}:{{.CertificateCount}}{{end}}</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SetSession sets the given key/value pairs in the session using a helper route
// and returns the session cookie that can be attached to subsequent test requests.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "testsession" {
			return cookie
		}
	}
	return nil
}

// stagedSessionCookie stages step-1 contact info in the session, as a
// completed basic-info step would, and returns the session cookie.
func stagedSessionCookie(router *gin.Engine, route, name, school, phone string) *http.Cookie {
	return SetSession(router, route, map[string]interface{}{
		middleware.SessionKeyName:   name,
		middleware.SessionKeySchool: school,
		middleware.SessionKeyPhone:  phone,
	})
}
