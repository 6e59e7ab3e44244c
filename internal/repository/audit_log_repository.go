package repository

import (
	"context"

	"hopyfy/internal/domain/model"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log model.AuditLog) error
}
