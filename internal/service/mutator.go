package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infoemi/campus-api/internal/models"
)

// mutationHooks bundles the side effects every catalog mutation performs
// after its primary write committed: audit recording and, for entities that
// feed the assistant context, cache invalidation. Audit failures never
// propagate; the business mutation has already succeeded.
type mutationHooks struct {
	audit     AuditService
	knowledge KnowledgeInvalidator
	logger    zerolog.Logger
}

// KnowledgeInvalidator is the slice of the knowledge service mutations need.
type KnowledgeInvalidator interface {
	Invalidate()
}

func newMutationHooks(audit AuditService, knowledge KnowledgeInvalidator, logger zerolog.Logger) mutationHooks {
	return mutationHooks{audit: audit, knowledge: knowledge, logger: logger}
}

func (h mutationHooks) created(ctx context.Context, actorID uint, table string, recordID uint, payload interface{}) {
	changes, err := CreateChangeSet(payload)
	if err != nil {
		h.logger.Warn().Err(err).Str("table", table).Msg("failed to build create change set")
	}

	h.record(ctx, models.AuditLog{
		AdminID:   actorID,
		Action:    models.AuditActionCreate,
		TableName: table,
		RecordID:  recordID,
		Changes:   changes,
	})
	h.invalidate()
}

// updated writes an audit entry even when the change set is empty; a no-op
// update is still an observed administrative action.
func (h mutationHooks) updated(ctx context.Context, actorID uint, table string, recordID uint, oldPayload, newPayload interface{}) {
	changes, err := ComputeChangeSet(oldPayload, newPayload)
	if err != nil {
		h.logger.Warn().Err(err).Str("table", table).Msg("failed to compute change set")
	}

	h.record(ctx, models.AuditLog{
		AdminID:   actorID,
		Action:    models.AuditActionUpdate,
		TableName: table,
		RecordID:  recordID,
		Changes:   changes,
	})
	h.invalidate()
}

func (h mutationHooks) deleted(ctx context.Context, actorID uint, table string, recordID uint) {
	h.record(ctx, models.AuditLog{
		AdminID:   actorID,
		Action:    models.AuditActionDelete,
		TableName: table,
		RecordID:  recordID,
	})
	h.invalidate()
}

func (h mutationHooks) record(ctx context.Context, entry models.AuditLog) {
	if h.audit == nil {
		return
	}
	h.audit.Record(ctx, entry)
}

func (h mutationHooks) invalidate() {
	if h.knowledge != nil {
		h.knowledge.Invalidate()
	}
}
