package repository

import (
	"context"

	"hopyfy/internal/domain/model"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]model.Category, error)
}
