package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"
)

func TestAdminList_InvalidPage(t *testing.T) {
	tx, _, _, _, _, _, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestAdminList_InvalidStatusFilter(t *testing.T) {
	tx, _, _, _, _, _, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 1, Limit: 20, Status: "SHIPPING"})
	assertErrContains(t, err, "invalid status")
}

func TestAdminList_FilterPassedThrough(t *testing.T) {
	tx, orders, orderItems, _, _, _, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	userID := int64(9)
	f := repo.AdminOrderListFilter{Page: 1, Limit: 20, Status: "PENDING", UserID: &userID}

	orders.On("ListAdmin", mock.Anything, f).Return([]model.Order{
		{ID: 10, UserID: 9, Status: model.OrderStatusPending},
	}, int64(1), nil)
	orderItems.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{}, nil)

	out, err := uc.List(context.Background(), f)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
}

func TestAdminUpdateStatus_ForwardDoesNotTouchInventory(t *testing.T) {
	tx, orders, orderItems, _, _, inventory, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, UserID: 9, Status: model.OrderStatusPending,
	}, nil)
	orderItems.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{
		{OrderID: 10, ProductID: 3, Quantity: 2},
	}, nil)
	orders.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusConfirmed, (*time.Time)(nil)).Return(nil)

	out, err := uc.UpdateStatus(context.Background(), 10, usecase.AdminUpdateOrderStatusInput{Status: "confirmed"})

	assert.NoError(t, err)
	assert.Equal(t, string(model.OrderStatusConfirmed), out.Status)
	inventory.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminUpdateStatus_CancelRestocks(t *testing.T) {
	tx, orders, orderItems, _, _, inventory, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, UserID: 9, Status: model.OrderStatusPending,
	}, nil)
	orderItems.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{
		{OrderID: 10, ProductID: 3, Quantity: 2},
		{OrderID: 10, ProductID: 7, Quantity: 1},
	}, nil)
	inventory.On("IncreaseStock", mock.Anything, int64(3), int64(2)).Return(nil)
	inventory.On("IncreaseStock", mock.Anything, int64(7), int64(1)).Return(nil)
	orders.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusCancelled, (*time.Time)(nil)).Return(nil)

	out, err := uc.UpdateStatus(context.Background(), 10, usecase.AdminUpdateOrderStatusInput{Status: "CANCELLED"})

	assert.NoError(t, err)
	assert.Equal(t, string(model.OrderStatusCancelled), out.Status)
	inventory.AssertCalled(t, "IncreaseStock", mock.Anything, int64(3), int64(2))
	inventory.AssertCalled(t, "IncreaseStock", mock.Anything, int64(7), int64(1))
}

func TestAdminUpdateStatus_DeliveredStampsDate(t *testing.T) {
	tx, orders, orderItems, _, _, _, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, UserID: 9, Status: model.OrderStatusShipped,
	}, nil)
	orderItems.On("ListByOrderID", mock.Anything, int64(10)).Return([]model.OrderItem{}, nil)

	var stamped *time.Time
	orders.On("UpdateStatus", mock.Anything, int64(10), model.OrderStatusDelivered, mock.Anything).
		Run(func(args mock.Arguments) { stamped, _ = args.Get(3).(*time.Time) }).
		Return(nil)

	out, err := uc.UpdateStatus(context.Background(), 10, usecase.AdminUpdateOrderStatusInput{Status: "DELIVERED"})

	assert.NoError(t, err)
	assert.Equal(t, string(model.OrderStatusDelivered), out.Status)
	if assert.NotNil(t, stamped) {
		assert.WithinDuration(t, time.Now(), *stamped, 5*time.Second)
	}
	assert.NotNil(t, out.DeliveredAt)
}

func TestAdminUpdateStatus_IllegalTransition(t *testing.T) {
	tx, orders, _, _, _, _, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, UserID: 9, Status: model.OrderStatusDelivered,
	}, nil)

	_, err := uc.UpdateStatus(context.Background(), 10, usecase.AdminUpdateOrderStatusInput{Status: "SHIPPED"})

	assertErrContains(t, err, "invalid status transition")
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusConflict, he.Status)
	}
}

// 同じステータスへの更新も遷移表に無いので不正
func TestAdminUpdateStatus_SameStatusRejected(t *testing.T) {
	tx, orders, _, _, _, _, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	orders.On("FindByID", mock.Anything, int64(10)).Return(model.Order{
		ID: 10, UserID: 9, Status: model.OrderStatusConfirmed,
	}, nil)

	_, err := uc.UpdateStatus(context.Background(), 10, usecase.AdminUpdateOrderStatusInput{Status: "CONFIRMED"})
	assertErrContains(t, err, "invalid status transition")
}

func TestAdminUpdateStatus_UnknownStatus(t *testing.T) {
	tx, _, _, _, _, _, _ := newOrderTxFixture()
	uc := usecase.NewAdminOrderUsecase(tx)

	_, err := uc.UpdateStatus(context.Background(), 10, usecase.AdminUpdateOrderStatusInput{Status: "TELEPORTED"})
	assertErrContains(t, err, "invalid status")
}
