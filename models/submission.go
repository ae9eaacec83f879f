// Package models defines data structures used across the application.
// File: models/submission.go
package models

import "time"

// ----------------------- submission model -----------------------

// Submission is one completed registration: the coach's contact
// details plus at least one certificate. Rows are immutable once
// written; there is no update or delete path in the application.
type Submission struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"not null" json:"name"`
	School       string        `gorm:"not null" json:"school"`
	Phone        string        `gorm:"not null" json:"phone"`
	CreatedAt    time.Time     `json:"created_at"` // local civil time, second precision
	Certificates []Certificate `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"certificates,omitempty"`
}

// ----------------------- certificate model -----------------------

// Certificate is one coach-name/license-code pair owned by a
// Submission. All certificates for a submission are inserted in the
// same transaction as their parent.
type Certificate struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SubmissionID uint   `gorm:"index;not null" json:"submission_id"`
	CoachName    string `gorm:"not null" json:"coach_name"`
	LicenseCode  string `gorm:"not null" json:"license_code"`
}

// CertificateEntry is a not-yet-persisted coach/license pair, carried
// from the form handler to the store.
type CertificateEntry struct {
	CoachName   string
	LicenseCode string
}

// SubmissionSummary is one row of the admin report: a submission and
// how many certificates it carries.
type SubmissionSummary struct {
	Submission
	CertificateCount int `json:"certificate_count"`
}

// ----------------------- staged contact info -----------------------

// StagedContact holds the step-1 values between the two form steps.
// It lives only in the client's cookie session, never in a package
// variable, so concurrent sessions cannot see each other's data.
type StagedContact struct {
	Name   string
	School string
	Phone  string
}
