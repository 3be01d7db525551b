package config

import (
	"os"
	"strconv"
	"time"
)

const (
	snapshotTTLMinutesEnv   = "SNAPSHOT_TTL_MINUTES"
	orgListTTLMinutesEnv    = "ORG_LIST_TTL_MINUTES"
	quadrantDisplayLimitEnv = "QUADRANT_DISPLAY_LIMIT"

	defaultSnapshotTTLMinutes   = 5
	defaultOrgListTTLMinutes    = 10
	defaultQuadrantDisplayLimit = 5
)

type RoadmapConfig struct {
	SnapshotTTL          time.Duration
	OrgListTTL           time.Duration
	QuadrantDisplayLimit int
}

func LoadRoadmapConfig() *RoadmapConfig {
	snapshotTTL := defaultSnapshotTTLMinutes
	if v := os.Getenv(snapshotTTLMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			snapshotTTL = parsed
		}
	}

	orgListTTL := defaultOrgListTTLMinutes
	if v := os.Getenv(orgListTTLMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			orgListTTL = parsed
		}
	}

	displayLimit := defaultQuadrantDisplayLimit
	if v := os.Getenv(quadrantDisplayLimitEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			displayLimit = parsed
		}
	}

	return &RoadmapConfig{
		SnapshotTTL:          time.Duration(snapshotTTL) * time.Minute,
		OrgListTTL:           time.Duration(orgListTTL) * time.Minute,
		QuadrantDisplayLimit: displayLimit,
	}
}
