package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/lms-service/lms/internal/repository"
	"github.com/Astemirdum/lms-service/pkg/kafka"
)

const (
	actionSignup         = "signup"
	actionProfileUpdate  = "profile_update"
	actionPasswordChange = "password_change"
	actionCreate         = "create"
	actionUpdate         = "update"
	actionDelete         = "delete"
	actionBorrow         = "borrow"
	actionIssue          = "issue"
	actionReturn         = "return"
	actionRequest        = "request"
	actionApprove        = "approve"
	actionReject         = "reject"
)

type repoAuditLog struct {
	repo repository.Repository
}

func (l repoAuditLog) Log(ctx context.Context, e kafka.AuditEvent) error {
	return l.repo.SaveAuditEvent(ctx, e)
}

// emit never fails the caller, a lost audit row is only logged.
func (s *Service) emit(ctx context.Context, entity kafka.Entity, entityID int, action string, actorID int, format string, args ...interface{}) {
	e := kafka.AuditEvent{
		ID:        uuid.NewString(),
		Timestamp: s.now().UTC(),
		Entity:    entity,
		EntityID:  entityID,
		Action:    action,
		ActorID:   actorID,
		Details:   fmt.Sprintf(format, args...),
	}
	if err := s.audit.Log(ctx, e); err != nil {
		s.log.Warn("audit.Log", zap.Error(err), zap.String("entity", string(entity)),
			zap.Int("entity_id", entityID), zap.String("action", action))
	}
}

// RecordAudit used by kafka consumer.
func (s *Service) RecordAudit(ctx context.Context, e kafka.AuditEvent) error {
	return s.repo.SaveAuditEvent(ctx, e)
}
