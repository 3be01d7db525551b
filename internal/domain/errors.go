package domain

import "errors"

var (
	ErrSnapshotNotFound      = errors.New("roadmap snapshot not found")
	ErrOrganizationsNotFound = errors.New("cached organization list not found")
	ErrAuditEventNotFound    = errors.New("audit event not found")
	ErrTechStackNotFound     = errors.New("tech stack not found")
)
