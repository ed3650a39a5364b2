package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deepaksuresh242006-wq/snekers-store/api/responses"
	"github.com/deepaksuresh242006-wq/snekers-store/api/validators"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
)

type cartStore interface {
	Cart() []marketplace.CartItem
	LastRemoved() (marketplace.CartItem, bool)
	ProductByID(id string) (marketplace.Product, bool)
	GetSellerByID(id string) (marketplace.SellerProfile, bool)
	AddToCart(ctx context.Context, product marketplace.Product)
	RemoveFromCart(ctx context.Context, productID string)
	UndoRemoveFromCart(ctx context.Context)
	ClearCart(ctx context.Context)
}

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

func currentCart(store cartStore) cartDTO {
	var lastRemoved *marketplace.CartItem
	if buffered, ok := store.LastRemoved(); ok {
		lastRemoved = &buffered
	}
	return toCartDTO(store.Cart(), lastRemoved)
}

// CartView returns the cart rows with line totals plus the undo-buffer
// snapshot so clients can offer the undo affordance.
func CartView(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}
		responses.WriteSuccess(w, currentCart(store))
	}
}

// CartAdd puts a buyer-visible listing in the cart, collapsing duplicates
// into a quantity bump.
func CartAdd(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var req addToCartRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, ok := store.ProductByID(req.ProductID)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		if seller, ok := store.GetSellerByID(product.SellerID); !ok || !seller.IsVerified {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		store.AddToCart(ctx, product)
		responses.WriteSuccess(w, currentCart(store))
	}
}

// CartRemove drops the whole row and parks it in the undo buffer.
func CartRemove(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		store.RemoveFromCart(ctx, chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, currentCart(store))
	}
}

// CartUndo restores the most recently removed row, if the window is open.
func CartUndo(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		store.UndoRemoveFromCart(ctx)
		responses.WriteSuccess(w, currentCart(store))
	}
}

// CartClear empties the cart. The undo buffer is deliberately untouched.
func CartClear(store cartStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		store.ClearCart(ctx)
		responses.WriteSuccess(w, currentCart(store))
	}
}
