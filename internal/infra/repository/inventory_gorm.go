package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫が足りるときだけ減らす。
// 読み→書きの分離はレースになるので、条件付きUPDATE1発で行い
// RowsAffectedで成否を判定する。
func (r *InventoryGormRepository) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND stock_quantity >= ?", productID, qty).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 在庫戻し（キャンセル）
func (r *InventoryGormRepository) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", qty))

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カート追加時などの早期リジェクト用。確定はDecreaseStockIfEnoughが行う。
func (r *InventoryGormRepository) CheckAvailable(ctx context.Context, productID int64, qty int64) (bool, error) {
	stock, err := r.CurrentStock(ctx, productID)
	if err != nil {
		return false, err
	}
	return stock >= qty, nil
}

func (r *InventoryGormRepository) CurrentStock(ctx context.Context, productID int64) (int64, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Select("stock_quantity").
		Where("id = ?", productID).
		First(&p).Error

	if isNotFound(err) {
		return 0, repo.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return p.StockQuantity, nil
}

// 管理者の在庫設定。設定と調整履歴を同一txで書く。
func (r *InventoryGormRepository) SetStockWithAdjustment(ctx context.Context, adminUserID int64, productID int64, newStock int64, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.Select("id", "stock_quantity").Where("id = ?", productID).First(&p).Error; err != nil {
			if isNotFound(err) {
				return repo.ErrNotFound
			}
			return err
		}

		res := tx.Model(&model.Product{}).
			Where("id = ?", productID).
			Update("stock_quantity", newStock)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		adj := model.InventoryAdjustment{
			ProductID:   productID,
			AdminUserID: adminUserID,
			Delta:       newStock - p.StockQuantity,
			Reason:      reason,
			CreatedAt:   time.Now(),
		}
		return tx.Create(&adj).Error
	})
}
