package techstack

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

func TestGetStackNotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockTechStackRepository(ctrl)
	mockRepo.EXPECT().
		GetTechStack(gomock.Any(), "org-1").
		Return(nil, domain.ErrTechStackNotFound)

	svc := NewService(mockRepo)

	stack, err := svc.GetStack(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("GetStack() error = %v", err)
	}
	if stack.OrgID != "org-1" {
		t.Errorf("OrgID = %q, want org-1", stack.OrgID)
	}
	if stack.Entries == nil || len(stack.Entries) != 0 {
		t.Errorf("Entries = %v, want empty non-nil slice", stack.Entries)
	}
}

func TestGetStackRepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockTechStackRepository(ctrl)
	mockRepo.EXPECT().
		GetTechStack(gomock.Any(), "org-1").
		Return(nil, errors.New("redis down"))

	svc := NewService(mockRepo)

	if _, err := svc.GetStack(context.Background(), "org-1"); err == nil {
		t.Fatal("GetStack() expected error on repository failure")
	}
}

func TestReplaceStack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	mockRepo := domain.NewMockTechStackRepository(ctrl)
	mockRepo.EXPECT().
		SaveTechStack(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stack *domain.TechStack) error {
			if stack.OrgID != "org-1" {
				t.Errorf("OrgID = %q, want org-1", stack.OrgID)
			}
			if !stack.UpdatedAt.Equal(now) {
				t.Errorf("UpdatedAt = %v, want %v", stack.UpdatedAt, now)
			}
			return nil
		})

	svc := NewService(mockRepo)
	svc.now = func() time.Time { return now }

	entries := []domain.TechStackEntry{
		{Name: "AWS", Category: "cloud", Managed: true},
		{Name: "Okta", Category: "identity"},
	}

	stack, err := svc.ReplaceStack(context.Background(), "org-1", entries)
	if err != nil {
		t.Fatalf("ReplaceStack() error = %v", err)
	}
	if len(stack.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(stack.Entries))
	}
}

func TestReplaceStackNilEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := domain.NewMockTechStackRepository(ctrl)
	mockRepo.EXPECT().
		SaveTechStack(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := NewService(mockRepo)

	stack, err := svc.ReplaceStack(context.Background(), "org-1", nil)
	if err != nil {
		t.Fatalf("ReplaceStack() error = %v", err)
	}
	if stack.Entries == nil {
		t.Error("Entries = nil, want empty slice")
	}
}
