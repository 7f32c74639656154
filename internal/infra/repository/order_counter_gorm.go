package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop/internal/domain/model"
)

type OrderCounterGormRepository struct {
	db *gorm.DB
}

func NewOrderCounterGormRepository(db *gorm.DB) *OrderCounterGormRepository {
	return &OrderCounterGormRepository{db: db}
}

// 年次連番をアトミックに+1して返す。
// INSERT .. ON CONFLICT (year) DO UPDATE seq = seq + 1 RETURNING seq
// の1文なので、同時採番でも番号は重複しない。
func (r *OrderCounterGormRepository) Next(ctx context.Context, year string) (int64, error) {
	c := model.OrderYearCounter{Year: year, Seq: 1}

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "year"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"seq": gorm.Expr("order_year_counters.seq + 1"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "seq"}}},
		).
		Create(&c).Error
	if err != nil {
		return 0, err
	}

	return c.Seq, nil
}
