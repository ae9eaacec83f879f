package services

import "github.com/stretchr/testify/mock"

// Ensure MockNotifyService implements NotifyServiceInterface
var _ NotifyServiceInterface = (*MockNotifyService)(nil)

// MockNotifyService is a mock implementation for testing and extends `mock.Mock`
type MockNotifyService struct {
	mock.Mock
}

// Notify (Mocked)
func (m *MockNotifyService) Notify(subject, body string) {
	m.Called(subject, body)
}
