package services

import (
	"github.com/stretchr/testify/mock"

	"go-coach-register/models"
)

// Ensure MockStoreService implements StoreServiceInterface
var _ StoreServiceInterface = (*MockStoreService)(nil)

// MockStoreService is a mock implementation for testing and extends `mock.Mock`
type MockStoreService struct {
	mock.Mock
}

// CreateSubmission (Mocked)
func (m *MockStoreService) CreateSubmission(name, school, phone string, entries []models.CertificateEntry) (*models.Submission, error) {
	args := m.Called(name, school, phone, entries)
	if sub, ok := args.Get(0).(*models.Submission); ok {
		return sub, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListSubmissionsWithCounts (Mocked)
func (m *MockStoreService) ListSubmissionsWithCounts() ([]models.SubmissionSummary, error) {
	args := m.Called()
	if summaries, ok := args.Get(0).([]models.SubmissionSummary); ok {
		return summaries, args.Error(1)
	}
	return nil, args.Error(1)
}

// ListCertificateDetails (Mocked)
func (m *MockStoreService) ListCertificateDetails() (map[uint][]models.Certificate, error) {
	args := m.Called()
	if details, ok := args.Get(0).(map[uint][]models.Certificate); ok {
		return details, args.Error(1)
	}
	return nil, args.Error(1)
}
