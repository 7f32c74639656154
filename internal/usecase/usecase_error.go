package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 在庫不足。クライアントに残数を返すので専用型にする。
// 期待される結果でありシステム障害ではない（ログはエラー扱いしない）。
type InsufficientStockError struct {
	ProductID int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: available %d", e.ProductID, e.Available)
}

func AsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ie *InsufficientStockError
	ok := errors.As(err, &ie)
	return ie, ok
}

// ステータス遷移の不正（遷移表に無い組み合わせ）
func NewInvalidTransitionError(from, to string) error {
	return NewHTTPError(http.StatusConflict, fmt.Sprintf("invalid status transition: %s -> %s", from, to))
}
