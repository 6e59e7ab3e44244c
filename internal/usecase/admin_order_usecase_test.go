package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hopyfy/internal/domain/model"
	repo "hopyfy/internal/repository"
	"hopyfy/internal/usecase"
)

func TestAdminOrderUsecase_List_InvalidPage(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(TxManagerMock))

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestAdminOrderUsecase_List_InvalidLimit(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(TxManagerMock))

	_, err := uc.List(context.Background(), repo.AdminOrderListFilter{Page: 1, Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestAdminOrderUsecase_List_Success(t *testing.T) {
	ctx := context.Background()

	f := repo.AdminOrderListFilter{Page: 1, Limit: 20, Status: "pending"}

	orderRepo := new(OrderRepoMock)
	orderRepo.On("ListAdmin", mock.Anything, f).Return([]model.Order{
		{ID: 42, UserID: 7, Status: model.OrderStatusPending},
	}, int64(1), nil)

	itemRepo := new(OrderItemRepoMock)
	itemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{}, nil)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo, orderItems: itemRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	uc := usecase.NewAdminOrderUsecase(tx)

	outs, err := uc.List(ctx, f)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(outs))
	assert.Equal(t, int64(42), outs[0].ID)
}

func TestAdminOrderUsecase_UpdateStatus_InvalidStatus(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(TxManagerMock))

	_, err := uc.UpdateStatus(context.Background(), 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "teleported"})
	assertErrContains(t, err, "Invalid status")
}

func TestAdminOrderUsecase_UpdateStatus_PaidNotAssignable(t *testing.T) {
	uc := usecase.NewAdminOrderUsecase(new(TxManagerMock))

	// paid and failed belong to payment reconciliation.
	_, err := uc.UpdateStatus(context.Background(), 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "paid"})
	assertErrContains(t, err, "Invalid status")

	_, err = uc.UpdateStatus(context.Background(), 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "failed"})
	assertErrContains(t, err, "Invalid status")
}

func TestAdminOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByIDForUpdate", mock.Anything, int64(42)).Return(model.Order{}, repo.ErrNotFound)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo}
	tx.On("WithinTx", mock.Anything).Return(nil)

	uc := usecase.NewAdminOrderUsecase(tx)

	_, err := uc.UpdateStatus(ctx, 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assertErrContains(t, err, "not found")
}

func TestAdminOrderUsecase_UpdateStatus_ShipAndAudit(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByIDForUpdate", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, UserID: 7, Status: model.OrderStatusProcessing}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusShipped).Return(nil)

	itemRepo := new(OrderItemRepoMock)
	itemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{}, nil)

	invRepo := new(InventoryRepoMock)

	audit := new(AuditRepoMock)
	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.ActorUserID == 1 &&
			l.Action == model.AuditActionUpdateOrderStatus &&
			l.ResourceID == 42
	})).Return(nil)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo, orderItems: itemRepo, inventory: invRepo, audit: audit}
	tx.On("WithinTx", mock.Anything).Return(nil)

	uc := usecase.NewAdminOrderUsecase(tx)

	out, err := uc.UpdateStatus(ctx, 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assert.NoError(t, err)
	assert.Equal(t, string(model.OrderStatusShipped), out.Status)

	// Shipping does not touch stock.
	invRepo.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_CancelFromPaid_Restocks(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByIDForUpdate", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, UserID: 7, Status: model.OrderStatusPaid}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusCancelled).Return(nil)

	itemRepo := new(OrderItemRepoMock)
	itemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{
		{OrderID: 42, ProductID: 10, Quantity: 3},
	}, nil)

	invRepo := new(InventoryRepoMock)
	invRepo.On("IncreaseStock", mock.Anything, int64(10), int64(3)).Return(nil)

	audit := new(AuditRepoMock)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo, orderItems: itemRepo, inventory: invRepo, audit: audit}
	tx.On("WithinTx", mock.Anything).Return(nil)

	uc := usecase.NewAdminOrderUsecase(tx)

	out, err := uc.UpdateStatus(ctx, 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "cancelled"})
	assert.NoError(t, err)
	assert.Equal(t, string(model.OrderStatusCancelled), out.Status)

	invRepo.AssertExpectations(t)
}

func TestAdminOrderUsecase_UpdateStatus_CancelFromShipped_NoRestock(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByIDForUpdate", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, UserID: 7, Status: model.OrderStatusShipped}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusCancelled).Return(nil)

	itemRepo := new(OrderItemRepoMock)
	itemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{
		{OrderID: 42, ProductID: 10, Quantity: 3},
	}, nil)

	invRepo := new(InventoryRepoMock)

	audit := new(AuditRepoMock)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo, orderItems: itemRepo, inventory: invRepo, audit: audit}
	tx.On("WithinTx", mock.Anything).Return(nil)

	uc := usecase.NewAdminOrderUsecase(tx)

	_, err := uc.UpdateStatus(ctx, 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "cancelled"})
	assert.NoError(t, err)

	invRepo.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_SameStatus_NoOp(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByIDForUpdate", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, UserID: 7, Status: model.OrderStatusShipped}, nil)

	itemRepo := new(OrderItemRepoMock)
	itemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{}, nil)

	audit := new(AuditRepoMock)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo, orderItems: itemRepo, audit: audit}
	tx.On("WithinTx", mock.Anything).Return(nil)

	uc := usecase.NewAdminOrderUsecase(tx)

	out, err := uc.UpdateStatus(ctx, 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assert.NoError(t, err)
	assert.Equal(t, string(model.OrderStatusShipped), out.Status)

	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	audit.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminOrderUsecase_UpdateStatus_AuditFailureAbortsTx(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByIDForUpdate", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, UserID: 7, Status: model.OrderStatusProcessing}, nil)
	orderRepo.On("UpdateStatus", mock.Anything, int64(42), model.OrderStatusShipped).Return(nil)

	itemRepo := new(OrderItemRepoMock)
	itemRepo.On("ListByOrderID", mock.Anything, int64(42)).Return([]model.OrderItem{}, nil)

	audit := new(AuditRepoMock)
	audit.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	tx := new(TxManagerMock)
	tx.Repos = &TxReposMock{orders: orderRepo, orderItems: itemRepo, audit: audit}
	tx.On("WithinTx", mock.Anything).Return(nil)

	uc := usecase.NewAdminOrderUsecase(tx)

	// The audit row shares the transaction with the status change, so a
	// failed audit insert rolls the whole update back.
	_, err := uc.UpdateStatus(ctx, 1, 42, usecase.AdminUpdateOrderStatusInput{Status: "shipped"})
	assertErrContains(t, err, "db error")
}
