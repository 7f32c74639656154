package repository

import (
	"context"

	"shop/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID int64, productID int64) (model.CartItem, error)
	// 同一商品は数量加算（(user_id, product_id)の一意制約でupsert）
	UpsertAdd(ctx context.Context, userID int64, productID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, userID int64, productID int64, qty int64) error
	DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
}
