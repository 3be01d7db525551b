package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/aegisready/readiness-roadmap/internal/client"
	"github.com/aegisready/readiness-roadmap/internal/domain"
	"github.com/aegisready/readiness-roadmap/internal/service/audit"
)

func setupAuditRouter(auditRepo domain.AuditRepository, queue client.ReminderQueue) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAuditHandler(audit.NewService(auditRepo, queue))

	router := gin.New()
	router.GET("/api/v1/organizations/:org_id/audits", h.HandleListAuditEvents)
	router.POST("/api/v1/organizations/:org_id/audits", h.HandleCreateAuditEvent)
	router.GET("/api/v1/organizations/:org_id/audits/:event_id", h.HandleGetAuditEvent)
	router.DELETE("/api/v1/organizations/:org_id/audits/:event_id", h.HandleDeleteAuditEvent)
	return router
}

func TestHandleGetAuditEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockAuditRepository(ctrl)
	mockQueue := client.NewMockReminderQueue(ctrl)

	stored := &domain.AuditEvent{
		ID:    "evt-1",
		OrgID: "org-1",
		Name:  "SOC 2 Type II audit",
	}
	mockRepo.EXPECT().
		GetAuditEvent(gomock.Any(), "org-1", "evt-1").
		Return(stored, nil)

	router := setupAuditRouter(mockRepo, mockQueue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/org-1/audits/evt-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var event domain.AuditEvent
	if err := json.Unmarshal(w.Body.Bytes(), &event); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if event.ID != "evt-1" {
		t.Errorf("id = %q, want evt-1", event.ID)
	}
	if event.Name != "SOC 2 Type II audit" {
		t.Errorf("name = %q, want SOC 2 Type II audit", event.Name)
	}
}

func TestHandleGetAuditEventNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockAuditRepository(ctrl)
	mockQueue := client.NewMockReminderQueue(ctrl)

	mockRepo.EXPECT().
		GetAuditEvent(gomock.Any(), "org-1", "missing").
		Return(nil, domain.ErrAuditEventNotFound)

	router := setupAuditRouter(mockRepo, mockQueue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/org-1/audits/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHandleCreateAuditEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockAuditRepository(ctrl)
	mockQueue := client.NewMockReminderQueue(ctrl)

	mockRepo.EXPECT().
		SaveAuditEvent(gomock.Any(), gomock.Any()).
		Return(nil)
	mockQueue.EXPECT().
		ScheduleReminder(gomock.Any(), gomock.Any()).
		Return(&client.TaskResponse{Name: "tasks/evt"}, nil)

	router := setupAuditRouter(mockRepo, mockQueue)

	body := `{"name":"SOC 2 Type II audit","framework":"soc2","scheduled_for":"2099-04-15T00:00:00Z","reminder_lead_days":14}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/organizations/org-1/audits", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", w.Code, w.Body.String())
	}

	var event domain.AuditEvent
	if err := json.Unmarshal(w.Body.Bytes(), &event); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if event.ID == "" {
		t.Error("event ID missing in response")
	}
	if event.OrgID != "org-1" {
		t.Errorf("org_id = %q, want org-1", event.OrgID)
	}
}

func TestHandleCreateAuditEventInvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockAuditRepository(ctrl)
	mockQueue := client.NewMockReminderQueue(ctrl)

	router := setupAuditRouter(mockRepo, mockQueue)

	// Missing required scheduled_for.
	body := `{"name":"ISO audit"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/organizations/org-1/audits", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleDeleteAuditEventNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockAuditRepository(ctrl)
	mockQueue := client.NewMockReminderQueue(ctrl)

	mockRepo.EXPECT().
		DeleteAuditEvent(gomock.Any(), "org-1", "missing").
		Return(domain.ErrAuditEventNotFound)

	router := setupAuditRouter(mockRepo, mockQueue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/organizations/org-1/audits/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
