package repository

import (
	"context"

	"shop/internal/domain/model"
)

// 公開一覧の検索条件
type ProductListQuery struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *int64
	Sort       string
}

// 商品メタデータの永続化だけを約束。在庫の増減はInventoryRepositoryが担う。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	// 行は消さずis_activeを落とす（注文明細からの参照を守る）
	Deactivate(ctx context.Context, id int64) error
}
