package repository

import (
	"context"

	"hopyfy/internal/domain/model"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}
