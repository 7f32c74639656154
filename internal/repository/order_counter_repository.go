package repository

import "context"

// 注文番号用の年次連番。Nextはアトミックに+1した値を返す。
// トランザクションがロールバックした場合の欠番は許容する。
type OrderCounterRepository interface {
	Next(ctx context.Context, year string) (int64, error)
}
