package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/internal/repository"
	"github.com/Astemirdum/lms-service/pkg/auth"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

// AuditLog ships audit events somewhere durable.
type AuditLog interface {
	Log(ctx context.Context, e kafka.AuditEvent) error
}

type Service struct {
	repo    repository.Repository
	reports repository.Reports
	tokens  *auth.TokenManager
	audit   AuditLog
	log     *zap.Logger
	now     func() time.Time
}

type Option func(*Service)

// WithAuditLog replaces the default audit sink, which writes straight into the audit tables.
func WithAuditLog(a AuditLog) Option {
	return func(s *Service) {
		s.audit = a
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	repo repository.Repository,
	reports repository.Reports,
	tokens *auth.TokenManager,
	log *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		repo:    repo,
		reports: reports,
		tokens:  tokens,
		log:     log.Named("service"),
		now:     time.Now,
	}
	s.audit = repoAuditLog{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
