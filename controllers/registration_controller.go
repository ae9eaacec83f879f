// Package controllers handles the two-step registration workflow.
// File: controllers/registration_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"go-coach-register/logger"
	"go-coach-register/middleware"
	"go-coach-register/models"
	"go-coach-register/services"
)

// ---------------- Registration Controller ----------------

// RegistrationController drives the two-step form: basic contact info
// first, certificate entries second. Step-1 values are staged in the
// client's session between the steps and cleared once a run completes.
type RegistrationController struct {
	Store    services.StoreServiceInterface
	Notifier services.NotifyServiceInterface
}

// NewRegistrationController wires the controller to its store and
// notification dispatcher.
func NewRegistrationController(store services.StoreServiceInterface, notifier services.NotifyServiceInterface) *RegistrationController {
	return &RegistrationController{Store: store, Notifier: notifier}
}

// Index redirects the landing page to the first form step.
func (rc *RegistrationController) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/basic")
}

// ---------------- step 1: basic contact info ----------------

// ShowBasicForm renders the empty basic-info form.
func (rc *RegistrationController) ShowBasicForm(c *gin.Context) {
	c.HTML(http.StatusOK, "main.html", gin.H{})
}

// SubmitBasicInfo validates the step-1 fields and stages them in the
// session. All three fields must be non-empty after trimming; on
// failure the form is re-rendered with the submitted values preserved.
// A new submission overwrites any previously staged values for this
// session.
func (rc *RegistrationController) SubmitBasicInfo(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	school := strings.TrimSpace(c.PostForm("school"))
	phone := strings.TrimSpace(c.PostForm("phone"))

	if name == "" || school == "" || phone == "" {
		logger.Warn.Println("SubmitBasicInfo: missing required field, re-rendering form")
		c.HTML(http.StatusBadRequest, "main.html", gin.H{
			"Error":  "Please fill in all fields.",
			"Name":   name,
			"School": school,
			"Phone":  phone,
		})
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyName, name)
	session.Set(middleware.SessionKeySchool, school)
	session.Set(middleware.SessionKeyPhone, phone)
	if err := session.Save(); err != nil {
		logger.Error.Println("SubmitBasicInfo: failed to save session:", err)
		c.HTML(http.StatusInternalServerError, "main.html", gin.H{
			"Error":  "Internal error, please try again later.",
			"Name":   name,
			"School": school,
			"Phone":  phone,
		})
		return
	}

	logger.Info.Printf("SubmitBasicInfo: staged contact info for %s (%s)", name, school)
	c.Redirect(http.StatusFound, "/certificates")
}

// ---------------- step 2: certificate entries ----------------

// stagedContact reads the step-1 values back out of the session.
func stagedContact(c *gin.Context) models.StagedContact {
	session := sessions.Default(c)
	name, _ := session.Get(middleware.SessionKeyName).(string)
	school, _ := session.Get(middleware.SessionKeySchool).(string)
	phone, _ := session.Get(middleware.SessionKeyPhone).(string)
	return models.StagedContact{Name: name, School: school, Phone: phone}
}

// clearStagedContact removes the staged values once a run completes.
func clearStagedContact(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(middleware.SessionKeyName)
	session.Delete(middleware.SessionKeySchool)
	session.Delete(middleware.SessionKeyPhone)
	if err := session.Save(); err != nil {
		logger.Error.Println("clearStagedContact: failed to save session:", err)
	}
}

// ShowCertificateForm renders the certificate-entry form with the
// staged contact info. StagedInfoRequired guards this route.
func (rc *RegistrationController) ShowCertificateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "certificates.html", gin.H{
		"Info": stagedContact(c),
	})
}

// collectEntries pairs up the submitted coach_name / license_code
// lists, trims both sides, and drops any pair with an empty side.
// Submission order is preserved.
func collectEntries(c *gin.Context) []models.CertificateEntry {
	names := c.PostFormArray("coach_name")
	codes := c.PostFormArray("license_code")

	n := len(names)
	if len(codes) < n {
		n = len(codes)
	}

	entries := make([]models.CertificateEntry, 0, n)
	for i := 0; i < n; i++ {
		coachName := strings.TrimSpace(names[i])
		licenseCode := strings.TrimSpace(codes[i])
		if coachName == "" || licenseCode == "" {
			continue
		}
		entries = append(entries, models.CertificateEntry{
			CoachName:   coachName,
			LicenseCode: licenseCode,
		})
	}
	return entries
}

// SubmitCertificates completes a run: it validates the certificate
// pairs, persists the submission and all its certificates in one
// transaction, fires the best-effort notification, clears the staged
// contact info, and renders the confirmation. Notification runs only
// after the transaction has committed.
func (rc *RegistrationController) SubmitCertificates(c *gin.Context) {
	info := stagedContact(c)
	entries := collectEntries(c)

	if len(entries) == 0 {
		logger.Warn.Printf("SubmitCertificates: no valid certificate pairs from %s", info.Name)
		c.HTML(http.StatusBadRequest, "certificates.html", gin.H{
			"Info":  info,
			"Error": "Please enter at least one coach name and license code.",
		})
		return
	}

	submission, err := rc.Store.CreateSubmission(info.Name, info.School, info.Phone, entries)
	if err != nil {
		logger.Error.Printf("SubmitCertificates: failed to persist submission for %s: %v", info.Name, err)
		c.HTML(http.StatusInternalServerError, "certificates.html", gin.H{
			"Info":  info,
			"Error": "Something went wrong, please try again later.",
		})
		return
	}

	rc.Notifier.Notify("Coach certificate submission", notificationBody(submission, entries))

	clearStagedContact(c)
	c.HTML(http.StatusOK, "done.html", gin.H{
		"Name": submission.Name,
	})
}

// notificationBody formats the human-readable summary sent to the
// notification channel, mirroring what administrators expect to read
// in the Telegram chat.
func notificationBody(submission *models.Submission, entries []models.CertificateEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Submitted by: %s\n", submission.Name)
	fmt.Fprintf(&b, "School: %s\n", submission.School)
	fmt.Fprintf(&b, "Phone: %s\n", submission.Phone)
	b.WriteString("\nCoaches and licenses:\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "- %s: %s\n", entry.CoachName, entry.LicenseCode)
	}
	fmt.Fprintf(&b, "\nSubmitted at: %s", submission.CreatedAt.Format("2006-01-02 15:04:05"))
	return b.String()
}
