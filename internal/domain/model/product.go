package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 論理削除はis_activeで行う（注文明細から参照されるため行は消さない）
type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	SKU           string          `gorm:"column:sku;type:varchar(50);not null;uniqueIndex" json:"sku"`
	Description   string          `gorm:"type:text" json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StockQuantity int64           `gorm:"not null" json:"stock_quantity"`
	CategoryID    *int64          `gorm:"index" json:"category_id"`
	ImageURL      string          `gorm:"type:varchar(500)" json:"image_url"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
