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

func TestWishlistUsecase_Add_ProductNotFound(t *testing.T) {
	ctx := context.Background()

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewWishlistUsecase(new(WishlistRepoMock), new(CartItemRepoMock), productRepo)

	_, err := uc.Add(ctx, 7, 99)
	assertErrContains(t, err, "product not found")
}

func TestWishlistUsecase_Add_Idempotent(t *testing.T) {
	ctx := context.Background()

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Air Max", IsActive: true}, nil)

	wishRepo := new(WishlistRepoMock)
	wishRepo.On("GetOrCreate", mock.Anything, int64(7), int64(10)).
		Return(model.WishlistItem{ID: 5, UserID: 7, ProductID: 10}, nil)

	uc := usecase.NewWishlistUsecase(wishRepo, new(CartItemRepoMock), productRepo)

	out, err := uc.Add(ctx, 7, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, int64(10), out.Product.ID)

	wishRepo.AssertExpectations(t)
}

func TestWishlistUsecase_MoveToCart_RemovesAndUpserts(t *testing.T) {
	ctx := context.Background()

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Air Max", Price: 4999, IsActive: true}, nil)

	wishRepo := new(WishlistRepoMock)
	wishRepo.On("DeleteByUserAndProduct", mock.Anything, int64(7), int64(10)).Return(nil)

	cartRepo := new(CartItemRepoMock)
	cartRepo.On("UpsertByUserAndProduct", mock.Anything, int64(7), int64(10), int64(1), "").
		Return(model.CartItem{ID: 1, UserID: 7, ProductID: 10, Quantity: 1}, nil)

	uc := usecase.NewWishlistUsecase(wishRepo, cartRepo, productRepo)

	out, err := uc.MoveToCart(ctx, 7, 10, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), out.ProductID)
	assert.Equal(t, int64(1), out.Quantity)
	assert.Equal(t, int64(4999), out.Subtotal)

	wishRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
}

func TestWishlistUsecase_MoveToCart_AbsentEntryStillAdds(t *testing.T) {
	ctx := context.Background()

	productRepo := new(ProductRepoMock)
	productRepo.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Air Max", Price: 4999, IsActive: true}, nil)

	wishRepo := new(WishlistRepoMock)
	wishRepo.On("DeleteByUserAndProduct", mock.Anything, int64(7), int64(10)).Return(repo.ErrNotFound)

	cartRepo := new(CartItemRepoMock)
	cartRepo.On("UpsertByUserAndProduct", mock.Anything, int64(7), int64(10), int64(2), "").
		Return(model.CartItem{ID: 1, UserID: 7, ProductID: 10, Quantity: 2}, nil)

	uc := usecase.NewWishlistUsecase(wishRepo, cartRepo, productRepo)

	out, err := uc.MoveToCart(ctx, 7, 10, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Quantity)
}

func TestWishlistUsecase_RemoveByProduct_NotFound(t *testing.T) {
	ctx := context.Background()

	wishRepo := new(WishlistRepoMock)
	wishRepo.On("DeleteByUserAndProduct", mock.Anything, int64(7), int64(10)).Return(repo.ErrNotFound)

	uc := usecase.NewWishlistUsecase(wishRepo, new(CartItemRepoMock), new(ProductRepoMock))

	err := uc.RemoveByProduct(ctx, 7, 10)
	assertErrContains(t, err, "not found")
}
