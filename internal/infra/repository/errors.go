package repository

import "errors"

var (
	ErrRedisConnection         = errors.New("redis connection error")
	ErrInvalidSnapshotData     = errors.New("invalid snapshot data")
	ErrInvalidOrganizationData = errors.New("invalid organization data")
	ErrInvalidAuditEventData   = errors.New("invalid audit event data")
	ErrInvalidTechStackData    = errors.New("invalid tech stack data")
)
