package stub

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/aegisready/readiness-roadmap/internal/domain"
)

type orgSeed struct {
	Name     string
	Findings []SeedFinding
}

// FindingStorage holds seeded organizations and their raw findings, keyed by
// run ID so concurrent load-test runs do not collide.
type FindingStorage struct {
	mu   sync.RWMutex
	orgs map[string]map[string]*orgSeed // runID -> orgID -> seed
}

func NewFindingStorage() *FindingStorage {
	return &FindingStorage{
		orgs: make(map[string]map[string]*orgSeed),
	}
}

func (s *FindingStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orgs, runID)
}

func (s *FindingStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgs = make(map[string]map[string]*orgSeed)
}

func (s *FindingStorage) Seed(runID string, req SeedRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orgs[runID] == nil {
		s.orgs[runID] = make(map[string]*orgSeed)
	}

	name := req.OrgName
	if name == "" {
		name = "org " + req.OrgID
	}

	s.orgs[runID][req.OrgID] = &orgSeed{
		Name:     name,
		Findings: req.Findings,
	}
}

func (s *FindingStorage) GetOrganizations(runID string) []domain.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orgs := make([]domain.Organization, 0, len(s.orgs[runID]))
	for id, seed := range s.orgs[runID] {
		orgs = append(orgs, domain.Organization{
			ID:   id,
			Name: seed.Name,
		})
	}

	return orgs
}

// GetFindings expands the seeded finding templates into individual roadmap
// items with deterministic IDs.
func (s *FindingStorage) GetFindings(runID, orgID string) []domain.RoadmapItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seed, ok := s.orgs[runID][orgID]
	if !ok {
		return []domain.RoadmapItem{}
	}

	items := make([]domain.RoadmapItem, 0)
	for fi, f := range seed.Findings {
		count := f.Count
		if count <= 0 {
			count = 1
		}

		for i := 0; i < count; i++ {
			items = append(items, domain.RoadmapItem{
				FindingID:     generateFindingID(runID, orgID, fi, i),
				Title:         fmt.Sprintf("%s #%d", f.Title, i+1),
				NISTCategory:  f.Category,
				Severity:      f.Severity,
				Priority:      f.Priority,
				Effort:        f.Effort,
				RiskImpact:    f.RiskImpact,
				Phase:         f.Phase,
				TimelineLabel: f.TimelineLabel,
			})
		}
	}

	return items
}

func generateFindingID(runID, orgID string, findingIndex, itemIndex int) string {
	input := fmt.Sprintf("%s-%s-%d-%d", runID, orgID, findingIndex, itemIndex)
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:8])
}
