// Package controllers provides the admin report behind the shared-secret key.
// File: controllers/admin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-coach-register/config"
	"go-coach-register/logger"
	"go-coach-register/models"
	"go-coach-register/services"
)

// ---------------- Admin Controller ----------------

// AdminController serves the read-only submissions report.
type AdminController struct {
	Store services.StoreServiceInterface
}

// NewAdminController wires the controller to the store.
func NewAdminController(store services.StoreServiceInterface) *AdminController {
	return &AdminController{Store: store}
}

// reportRow is one submission with its full certificate list, as shown
// on the report page.
type reportRow struct {
	models.SubmissionSummary
	Certificates []models.Certificate
}

// AdminReport compares the `key` query parameter against the
// configured admin secret. A mismatch gets a bare 403 with no detail;
// a match gets the totals and per-submission certificate lists,
// newest first. The view is read-only.
func (ac *AdminController) AdminReport(c *gin.Context) {
	key := c.Query("key")
	if key != config.AppConfig.AdminKey {
		logger.Warn.Println("AdminReport: rejected request with invalid key")
		c.String(http.StatusForbidden, "Unauthorized")
		return
	}

	summaries, err := ac.Store.ListSubmissionsWithCounts()
	if err != nil {
		logger.Error.Println("AdminReport: failed to list submissions:", err)
		c.String(http.StatusInternalServerError, "Something went wrong, please try again later.")
		return
	}
	details, err := ac.Store.ListCertificateDetails()
	if err != nil {
		logger.Error.Println("AdminReport: failed to list certificates:", err)
		c.String(http.StatusInternalServerError, "Something went wrong, please try again later.")
		return
	}

	rows := make([]reportRow, 0, len(summaries))
	totalCertificates := 0
	for _, summary := range summaries {
		rows = append(rows, reportRow{
			SubmissionSummary: summary,
			Certificates:      details[summary.ID],
		})
		totalCertificates += summary.CertificateCount
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"TotalSubmissions":  len(summaries),
		"TotalCertificates": totalCertificates,
		"Rows":              rows,
	})
}
