package repository

import (
	"context"

	"shop/internal/domain/model"
)

type ReviewRepository interface {
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	FindByID(ctx context.Context, id int64) (model.Review, error)
	Create(ctx context.Context, rv model.Review) (model.Review, error)
	Update(ctx context.Context, rv model.Review) error
	Delete(ctx context.Context, id int64) error
	// 平均評価と件数
	AggregateByProductID(ctx context.Context, productID int64) (avg float64, count int64, err error)
}
