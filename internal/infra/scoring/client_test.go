package scoring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

func TestClientGetRoadmap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/organizations/org-1/roadmap" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("x-request-id"); got == "" {
			t.Error("missing x-request-id header")
		}

		resp := RoadmapResponse{
			OrgID: "org-1",
			Items: []domain.RoadmapItem{
				{FindingID: "f-1", Title: "Enable MFA", Effort: "low", RiskImpact: "critical"},
			},
			Count: 1,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	resp, err := client.GetRoadmap(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("GetRoadmap() error = %v", err)
	}
	if resp.Count != 1 || len(resp.Items) != 1 {
		t.Fatalf("GetRoadmap() count = %d, items = %d, want 1, 1", resp.Count, len(resp.Items))
	}
	if resp.Items[0].FindingID != "f-1" {
		t.Errorf("item finding_id = %q, want %q", resp.Items[0].FindingID, "f-1")
	}
}

func TestClientGetOrganizations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/organizations" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		resp := OrganizationsResponse{
			Organizations: []domain.Organization{
				{ID: "org-1", Name: "Acme"},
				{ID: "org-2", Name: "Globex"},
			},
			Count: 2,
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	orgs, err := client.GetOrganizations(context.Background())
	if err != nil {
		t.Fatalf("GetOrganizations() error = %v", err)
	}
	if len(orgs) != 2 {
		t.Fatalf("GetOrganizations() returned %d orgs, want 2", len(orgs))
	}
}

func TestClientUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	if _, err := client.GetRoadmap(context.Background(), "org-1"); err == nil {
		t.Fatal("GetRoadmap() expected error on 502 response")
	}
	if _, err := client.GetRubric(context.Background()); err == nil {
		t.Fatal("GetRubric() expected error on 502 response")
	}
}

func TestClientComputeScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/organizations/org-9/score" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		result := ScoreResult{OrgID: "org-9", Overall: 72.5, Maturity: "managed"}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	result, err := client.ComputeScore(context.Background(), "org-9")
	if err != nil {
		t.Fatalf("ComputeScore() error = %v", err)
	}
	if result.Overall != 72.5 {
		t.Errorf("ComputeScore() overall = %v, want 72.5", result.Overall)
	}
}
