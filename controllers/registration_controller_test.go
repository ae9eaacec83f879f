// controllers/registration_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-coach-register/middleware"
	"go-coach-register/models"
	"go-coach-register/services"
)

// postForm sends an urlencoded form POST with the given cookie attached.
func postForm(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// responseSessionCookie returns the refreshed session cookie from a
// response, falling back to the previous one when the handler did not
// touch the session.
func responseSessionCookie(w *httptest.ResponseRecorder, previous *http.Cookie) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			return c
		}
	}
	return previous
}

func newRegistrationRouter(t *testing.T, store *services.MockStoreService, notifier *services.MockNotifyService) *gin.Engine {
	rc := NewRegistrationController(store, notifier)
	router := setupTestRouter(t)
	router.GET("/", rc.Index)
	router.GET("/basic", rc.ShowBasicForm)
	router.POST("/basic", rc.SubmitBasicInfo)
	router.GET("/certificates", middleware.StagedInfoRequired, rc.ShowCertificateForm)
	router.POST("/certificates", middleware.StagedInfoRequired, rc.SubmitCertificates)
	return router
}

func TestIndex_RedirectsToBasicForm(t *testing.T) {
	router := newRegistrationRouter(t, new(services.MockStoreService), new(services.MockNotifyService))

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/basic", w.Header().Get("Location"))
}

func TestSubmitBasicInfo_Success(t *testing.T) {
	router := newRegistrationRouter(t, new(services.MockStoreService), new(services.MockNotifyService))

	w := postForm(router, "/basic", url.Values{
		"name":   {"  Amy  "},
		"school": {"Central High"},
		"phone":  {"0912345678"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/certificates", w.Header().Get("Location"))

	// The staged values should let the certificates step render, with
	// the trimmed name shown.
	cookie := responseSessionCookie(w, nil)
	if cookie == nil {
		t.Fatal("Session cookie not found")
	}
	req, _ := http.NewRequest("GET", "/certificates", nil)
	req.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Amy")
}

func TestSubmitBasicInfo_MissingField(t *testing.T) {
	router := newRegistrationRouter(t, new(services.MockStoreService), new(services.MockNotifyService))

	w := postForm(router, "/basic", url.Values{
		"name":   {"Amy"},
		"school": {"   "}, // whitespace-only counts as empty
		"phone":  {"0912345678"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Submitted values are preserved for re-entry.
	assert.Contains(t, w.Body.String(), "Amy")
	assert.Contains(t, w.Body.String(), "0912345678")

	// No staged info was created: the certificates step stays locked.
	cookie := responseSessionCookie(w, nil)
	req, _ := http.NewRequest("GET", "/certificates", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusFound, w2.Code, "Should redirect without staged info")
	assert.Equal(t, "/basic", w2.Header().Get("Location"))
}

func TestShowCertificateForm_WithoutStagedInfo(t *testing.T) {
	router := newRegistrationRouter(t, new(services.MockStoreService), new(services.MockNotifyService))

	req, _ := http.NewRequest("GET", "/certificates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/basic", w.Header().Get("Location"))
}

func TestSubmitCertificates_Success(t *testing.T) {
	mockStore := new(services.MockStoreService)
	mockNotifier := new(services.MockNotifyService)
	router := newRegistrationRouter(t, mockStore, mockNotifier)

	entries := []models.CertificateEntry{
		{CoachName: "Amy", LicenseCode: "A12345"},
		{CoachName: "Ben", LicenseCode: "B67890"},
	}
	submission := &models.Submission{
		ID: 1, Name: "Amy", School: "Central High", Phone: "0912345678",
		CreatedAt: time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
	}
	mockStore.
		On("CreateSubmission", "Amy", "Central High", "0912345678", entries).
		Return(submission, nil).
		Once()
	mockNotifier.
		On("Notify", "Coach certificate submission", mock.MatchedBy(func(body string) bool {
			return strings.Contains(body, "Amy") &&
				strings.Contains(body, "Central High") &&
				strings.Contains(body, "0912345678") &&
				strings.Contains(body, "A12345") &&
				strings.Contains(body, "B67890") &&
				strings.Contains(body, "2025-03-01 10:30:00")
		})).
		Return().
		Once()

	cookie := stagedSessionCookie(router, "/stage-session", "Amy", "Central High", "0912345678")
	if cookie == nil {
		t.Fatal("Session cookie not found")
	}

	w := postForm(router, "/certificates", url.Values{
		"coach_name":   {"Amy", "Ben"},
		"license_code": {"A12345", "B67890"},
	}, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Done")
	mockStore.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)

	// The staged info is consumed: revisiting the certificates step
	// without redoing step 1 redirects to step 1.
	cookie = responseSessionCookie(w, cookie)
	req, _ := http.NewRequest("GET", "/certificates", nil)
	req.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusFound, w2.Code)
	assert.Equal(t, "/basic", w2.Header().Get("Location"))
}

func TestSubmitCertificates_FiltersInvalidPairs(t *testing.T) {
	mockStore := new(services.MockStoreService)
	mockNotifier := new(services.MockNotifyService)
	router := newRegistrationRouter(t, mockStore, mockNotifier)

	// Only the fully filled pairs survive, in submission order.
	surviving := []models.CertificateEntry{
		{CoachName: "Amy", LicenseCode: "A12345"},
		{CoachName: "Cara", LicenseCode: "C11111"},
	}
	mockStore.
		On("CreateSubmission", "Amy", "Central High", "0912345678", surviving).
		Return(&models.Submission{ID: 2, Name: "Amy"}, nil).
		Once()
	mockNotifier.On("Notify", mock.Anything, mock.Anything).Return().Once()

	cookie := stagedSessionCookie(router, "/stage-session", "Amy", "Central High", "0912345678")

	w := postForm(router, "/certificates", url.Values{
		"coach_name":   {" Amy ", "Ben", "", "Cara"},
		"license_code": {"A12345", "   ", "B22222", " C11111 "},
	}, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	mockStore.AssertExpectations(t)
}

func TestSubmitCertificates_NoValidPairs(t *testing.T) {
	mockStore := new(services.MockStoreService)
	mockNotifier := new(services.MockNotifyService)
	router := newRegistrationRouter(t, mockStore, mockNotifier)

	cookie := stagedSessionCookie(router, "/stage-session", "Amy", "Central High", "0912345678")

	w := postForm(router, "/certificates", url.Values{
		"coach_name":   {"Amy", ""},
		"license_code": {"   ", "B67890"},
	}, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	// The step re-renders with the staged info still present.
	assert.Contains(t, w.Body.String(), "Amy")
	mockStore.AssertNotCalled(t, "CreateSubmission", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestSubmitCertificates_StoreFailure(t *testing.T) {
	mockStore := new(services.MockStoreService)
	mockNotifier := new(services.MockNotifyService)
	router := newRegistrationRouter(t, mockStore, mockNotifier)

	mockStore.
		On("CreateSubmission", "Amy", "Central High", "0912345678", mock.Anything).
		Return(nil, assert.AnError).
		Once()

	cookie := stagedSessionCookie(router, "/stage-session", "Amy", "Central High", "0912345678")

	w := postForm(router, "/certificates", url.Values{
		"coach_name":   {"Amy"},
		"license_code": {"A12345"},
	}, cookie)

	// Generic failure, no storage internals, no notification for data
	// that did not commit.
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	mockNotifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
