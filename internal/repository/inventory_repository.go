package repository

import "context"

// 在庫数の唯一の変更経路。
// 読み→書きの2ステップは禁止で、必ず1回の条件付きUPDATEで行う。
type InventoryRepository interface {
	// 在庫が足りるときだけ減算。足りなければ何も変えずfalse。
	DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)

	// 在庫戻し（キャンセル時）。上限チェックは無し。
	IncreaseStock(ctx context.Context, productID int64, qty int64) error

	// 早期リジェクト用のヒント。確定経路の根拠には使わない。
	CheckAvailable(ctx context.Context, productID int64, qty int64) (bool, error)

	// 現在在庫（InsufficientStockのavailable表示用）
	CurrentStock(ctx context.Context, productID int64) (int64, error)

	// 管理者による在庫設定＋調整履歴の記録
	SetStockWithAdjustment(ctx context.Context, adminUserID int64, productID int64, newStock int64, reason string) error
}
