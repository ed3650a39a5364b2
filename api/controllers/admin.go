package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deepaksuresh242006-wq/snekers-store/api/responses"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
)

type adminStore interface {
	Sellers() []marketplace.SellerProfile
	GetSellerByID(id string) (marketplace.SellerProfile, bool)
	VerifySeller(ctx context.Context, sellerID string)
}

// AdminSellers lists every seller with its verification state.
func AdminSellers(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store unavailable"))
			return
		}

		sellers := store.Sellers()
		out := make([]sellerDTO, 0, len(sellers))
		for _, s := range sellers {
			out = append(out, toSellerDTO(s))
		}
		responses.WriteSuccess(w, out)
	}
}

// AdminVerifySeller approves a pending seller, making its listings visible.
func AdminVerifySeller(store adminStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store unavailable"))
			return
		}

		sellerID := chi.URLParam(r, "sellerId")
		if _, ok := store.GetSellerByID(sellerID); !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found"))
			return
		}

		store.VerifySeller(ctx, sellerID)
		seller, _ := store.GetSellerByID(sellerID)
		responses.WriteSuccess(w, toSellerDTO(seller))
	}
}
