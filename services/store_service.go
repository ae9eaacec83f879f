// Package services: services/store_service.go
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"go-coach-register/logger"
	"go-coach-register/models"
)

// ErrNoCertificates is returned when a submission arrives with zero
// certificate entries. The check runs before any row is written.
var ErrNoCertificates = errors.New("a submission requires at least one certificate")

// StoreServiceInterface is the persistence contract the controllers
// depend on. Writes are transactional; reads are snapshot-consistent
// per call.
type StoreServiceInterface interface {
	CreateSubmission(name, school, phone string, entries []models.CertificateEntry) (*models.Submission, error)
	ListSubmissionsWithCounts() ([]models.SubmissionSummary, error)
	ListCertificateDetails() (map[uint][]models.Certificate, error)
}

// StoreService implements StoreServiceInterface on a gorm handle.
type StoreService struct {
	db  *gorm.DB
	loc *time.Location
}

// NewStoreService creates a StoreService writing timestamps in the
// given location.
func NewStoreService(db *gorm.DB, loc *time.Location) *StoreService {
	return &StoreService{db: db, loc: loc}
}

// ------------------- writes -------------------

// CreateSubmission inserts one submission and all its certificates in
// a single transaction: either every row commits or none do. A crash
// mid-write can never leave a submission without certificates.
func (s *StoreService) CreateSubmission(name, school, phone string, entries []models.CertificateEntry) (*models.Submission, error) {
	if len(entries) == 0 {
		return nil, ErrNoCertificates
	}

	submission := models.Submission{
		Name:      name,
		School:    school,
		Phone:     phone,
		CreatedAt: time.Now().In(s.loc).Truncate(time.Second),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&submission).Error; err != nil {
			return err
		}
		certificates := make([]models.Certificate, 0, len(entries))
		for _, entry := range entries {
			certificates = append(certificates, models.Certificate{
				SubmissionID: submission.ID,
				CoachName:    entry.CoachName,
				LicenseCode:  entry.LicenseCode,
			})
		}
		return tx.Create(&certificates).Error
	})
	if err != nil {
		logger.Error.Printf("CreateSubmission: transaction failed for %s (%s): %v", name, school, err)
		return nil, err
	}

	logger.Info.Printf("CreateSubmission: stored submission %d with %d certificate(s)", submission.ID, len(entries))
	return &submission, nil
}

// ------------------- reads -------------------

// ListSubmissionsWithCounts returns every submission, newest first,
// each with its certificate count.
func (s *StoreService) ListSubmissionsWithCounts() ([]models.SubmissionSummary, error) {
	var submissions []models.Submission
	if err := s.db.Order("created_at DESC, id DESC").Find(&submissions).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		SubmissionID uint
		Count        int
	}
	var counts []countRow
	if err := s.db.Model(&models.Certificate{}).
		Select("submission_id, count(*) as count").
		Group("submission_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	countBySubmission := make(map[uint]int, len(counts))
	for _, row := range counts {
		countBySubmission[row.SubmissionID] = row.Count
	}

	summaries := make([]models.SubmissionSummary, 0, len(submissions))
	for _, sub := range submissions {
		summaries = append(summaries, models.SubmissionSummary{
			Submission:       sub,
			CertificateCount: countBySubmission[sub.ID],
		})
	}
	return summaries, nil
}

// ListCertificateDetails returns every certificate grouped by owning
// submission, in insertion order within each group.
func (s *StoreService) ListCertificateDetails() (map[uint][]models.Certificate, error) {
	var certificates []models.Certificate
	if err := s.db.Order("id ASC").Find(&certificates).Error; err != nil {
		return nil, err
	}

	details := make(map[uint][]models.Certificate)
	for _, cert := range certificates {
		details[cert.SubmissionID] = append(details[cert.SubmissionID], cert)
	}
	return details, nil
}
