// Package middleware provides request filters and security checks for the application.
// File: middleware/staged.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-coach-register/logger"
)

// Session keys for the staged step-1 contact info. The values live in
// the client's signed cookie session, so each in-progress registration
// is isolated to its own browser.
const (
	SessionKeyName   = "stagedName"
	SessionKeySchool = "stagedSchool"
	SessionKeyPhone  = "stagedPhone"
)

// -------------- staged-info middleware --------------

// StagedInfoRequired ensures the client has completed step 1 before
// reaching the certificates step. A session without staged contact
// info (expired, direct navigation, or a replay after completion) is
// redirected back to the basic-info form; this is a normal flow, not
// an error.
// Usage:
//
//	router.GET("/certificates", middleware.StagedInfoRequired, ...)
func StagedInfoRequired(c *gin.Context) {
	session := sessions.Default(c)
	name, ok := session.Get(SessionKeyName).(string)

	if !ok || name == "" {
		logger.Warn.Println("StagedInfoRequired: no staged contact info in session, redirecting to /basic")
		c.Redirect(http.StatusFound, "/basic")
		c.Abort()
		return
	}

	logger.Debug.Println("[StagedInfoRequired] Staged contact info present - proceeding with request")
	c.Next()
}
