package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	all := []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	}

	allowed := map[OrderStatus]map[OrderStatus]bool{
		OrderStatusPending:   {OrderStatusConfirmed: true, OrderStatusCancelled: true},
		OrderStatusConfirmed: {OrderStatusShipped: true},
		OrderStatusShipped:   {OrderStatusDelivered: true},
		OrderStatusDelivered: {},
		OrderStatusCancelled: {},
	}

	// 許可された組み合わせ以外は全部falseになること
	for _, from := range all {
		for _, to := range all {
			got := from.CanTransitionTo(to)
			assert.Equal(t, allowed[from][to], got, "%s -> %s", from, to)
		}
	}
}

func TestOrderStatusIsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.isTerminal())
	assert.False(t, OrderStatusConfirmed.isTerminal())
	assert.False(t, OrderStatusShipped.isTerminal())
	assert.True(t, OrderStatusDelivered.isTerminal())
	assert.True(t, OrderStatusCancelled.isTerminal())
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus("PENDING")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusPending, s)

	// 小文字や未知の値はパーサでは通さない（正規化は呼び出し側の責務）
	_, ok = ParseOrderStatus("pending")
	assert.False(t, ok)

	_, ok = ParseOrderStatus("UNKNOWN")
	assert.False(t, ok)
}
