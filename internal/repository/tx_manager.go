package repository

import "context"

// トランザクション内で使うrepo一式
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	OrderCounters() OrderCounterRepository
	CartItems() CartItemRepository
	Inventory() InventoryRepository
	Products() ProductRepository
}

// Usecaseからtxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全部ロールバック。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
