package usecase

import (
	"context"
	"net/http"

	"hopyfy/internal/domain/model"
	repo "hopyfy/internal/repository"
)

type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	cartRepo     repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewWishlistUsecase(
	wishlistRepo repo.WishlistRepository,
	cartRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *WishlistUsecase {
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		cartRepo:     cartRepo,
		productRepo:  productRepo,
	}
}

type WishlistItemResponse struct {
	ID      int64         `json:"id"`
	Product model.Product `json:"product"`
}

func (u *WishlistUsecase) List(ctx context.Context, userID int64) ([]WishlistItemResponse, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	items, err := u.wishlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]WishlistItemResponse, 0, len(items))
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			continue
		}
		out = append(out, WishlistItemResponse{ID: it.ID, Product: p})
	}
	return out, nil
}

func (u *WishlistUsecase) Add(ctx context.Context, userID int64, productID int64) (WishlistItemResponse, error) {
	if userID <= 0 {
		return WishlistItemResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return WishlistItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return WishlistItemResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return WishlistItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.wishlistRepo.GetOrCreate(ctx, userID, productID)
	if err != nil {
		return WishlistItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return WishlistItemResponse{ID: item.ID, Product: p}, nil
}

// MoveToCart drops the wishlist entry and upserts the product into the
// cart (same product adds quantity, as a direct cart add would).
func (u *WishlistUsecase) MoveToCart(ctx context.Context, userID int64, productID int64, qty int64) (CartItemResponse, error) {
	if userID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return CartItemResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if qty < 1 {
		qty = 1
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// A product no longer on the wishlist still lands in the cart.
	if err := u.wishlistRepo.DeleteByUserAndProduct(ctx, userID, productID); err != nil && err != repo.ErrNotFound {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	item, err := u.cartRepo.UpsertByUserAndProduct(ctx, userID, productID, qty, "")
	if err != nil {
		return CartItemResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartItemResponse{
		ID:        item.ID,
		ProductID: productID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  item.Quantity,
		Subtotal:  p.Price * item.Quantity,
	}, nil
}

func (u *WishlistUsecase) RemoveByProduct(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	err := u.wishlistRepo.DeleteByUserAndProduct(ctx, userID, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
