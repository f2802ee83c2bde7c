package services

import (
	"context"
	"fmt"

	"github.com/securelog/securelog/models"
	"github.com/securelog/securelog/repositories"
)

// Pagination limits for ListRecords
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// AuditService exposes the audit trail for reporting
type AuditService interface {
	ListRecords(ctx context.Context, pageSize, offset int) (*models.AuditPage, error)
}

// auditService implements AuditService interface
type auditService struct {
	auditRepo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditRepository) AuditService {
	return &auditService{auditRepo: auditRepo}
}

// ListRecords returns up to pageSize records, newest first, skipping offset
// records. pageSize above MaxPageSize is clamped.
func (s *auditService) ListRecords(ctx context.Context, pageSize, offset int) (*models.AuditPage, error) {
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}
	if offset < 0 {
		return nil, ErrInvalidOffset
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	records, total, err := s.auditRepo.Query(ctx, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit records: %w", err)
	}

	return &models.AuditPage{Records: records, Total: total}, nil
}
