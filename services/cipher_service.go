package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/securelog/securelog/cipher"
	"github.com/securelog/securelog/metrics"
	"github.com/securelog/securelog/models"
	"github.com/securelog/securelog/repositories"
)

// CipherService validates cipher requests, runs them and records the audit trail
type CipherService interface {
	Handle(ctx context.Context, kind models.OperationKind, keyText, dataText, clientAddress string) (*models.TransformResult, error)
	Encrypt(ctx context.Context, keyText, dataText, clientAddress string) (*models.TransformResult, error)
	Decrypt(ctx context.Context, keyText, dataText, clientAddress string) (*models.TransformResult, error)
}

// CipherOption configures a cipher service
type CipherOption func(*cipherService)

// WithClock sets the time source used for audit timestamps
func WithClock(clock func() time.Time) CipherOption {
	return func(s *cipherService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator sets the audit record ID generator
func WithIDGenerator(newID func() string) CipherOption {
	return func(s *cipherService) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) CipherOption {
	return func(s *cipherService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the collectors operations are reported to
func WithMetrics(m *metrics.Metrics) CipherOption {
	return func(s *cipherService) {
		s.metrics = m
	}
}

// cipherService implements CipherService interface
type cipherService struct {
	auditRepo repositories.AuditRepository
	clock     func() time.Time
	newID     func() string
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewCipherService creates a new cipher service
func NewCipherService(auditRepo repositories.AuditRepository, opts ...CipherOption) CipherService {
	s := &cipherService{
		auditRepo: auditRepo,
		clock:     time.Now,
		newID:     func() string { return uuid.NewString() },
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Encrypt applies the forward transform
func (s *cipherService) Encrypt(ctx context.Context, keyText, dataText, clientAddress string) (*models.TransformResult, error) {
	return s.Handle(ctx, models.OperationEncrypt, keyText, dataText, clientAddress)
}

// Decrypt applies the inverse transform
func (s *cipherService) Decrypt(ctx context.Context, keyText, dataText, clientAddress string) (*models.TransformResult, error) {
	return s.Handle(ctx, models.OperationDecrypt, keyText, dataText, clientAddress)
}

// Handle validates the request, transforms dataText and appends an audit
// record. The result is only returned once the record is committed; input
// errors leave no record behind.
func (s *cipherService) Handle(ctx context.Context, kind models.OperationKind, keyText, dataText, clientAddress string) (*models.TransformResult, error) {
	start := time.Now()

	result, err := s.handle(ctx, kind, keyText, dataText, clientAddress)

	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case IsClientError(err):
		outcome = metrics.OutcomeRejected
		s.logger.Debug("cipher request rejected",
			zap.String("operation", string(kind)),
			zap.String("client_address", clientAddress),
			zap.Error(err),
		)
	default:
		outcome = metrics.OutcomeFailed
		s.logger.Error("cipher request failed",
			zap.String("operation", string(kind)),
			zap.String("client_address", clientAddress),
			zap.Error(err),
		)
	}
	s.metrics.ObserveOperation(string(kind), outcome, time.Since(start))

	return result, err
}

func (s *cipherService) handle(ctx context.Context, kind models.OperationKind, keyText, dataText, clientAddress string) (*models.TransformResult, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, kind)
	}
	if strings.TrimSpace(keyText) == "" {
		return nil, ErrMissingKey
	}
	if strings.TrimSpace(dataText) == "" {
		return nil, ErrMissingData
	}

	shift, err := cipher.ParseShift(keyText)
	if err != nil {
		return nil, err
	}

	var out string
	if kind == models.OperationEncrypt {
		out = cipher.Transform(shift, dataText)
	} else {
		out = cipher.InverseTransform(shift, dataText)
	}

	record := &models.AuditRecord{
		ID:            s.newID(),
		Timestamp:     s.clock().Unix(),
		ClientAddress: clientAddress,
		Operation:     kind,
	}
	if err := s.auditRepo.Append(ctx, record); err != nil {
		s.metrics.IncrementAuditWriteFailures()
		return nil, fmt.Errorf("%w: %w", ErrAuditWriteFailed, err)
	}

	s.logger.Info("cipher operation recorded",
		zap.String("operation", string(kind)),
		zap.String("record_id", record.ID),
		zap.String("client_address", clientAddress),
	)

	return &models.TransformResult{Operation: kind, Data: out}, nil
}
