package services

import (
	"go.uber.org/zap"

	"github.com/securelog/securelog/metrics"
	"github.com/securelog/securelog/repositories"
)

// Services holds all service instances
type Services struct {
	Cipher CipherService
	Audit  AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, logger *zap.Logger, m *metrics.Metrics) *Services {
	return &Services{
		Cipher: NewCipherService(repos.Audit, WithLogger(logger), WithMetrics(m)),
		Audit:  NewAuditService(repos.Audit),
	}
}
