package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deepaksuresh242006-wq/snekers-store/api/responses"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/catalog"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
)

type catalogStore interface {
	Products() []marketplace.Product
	ProductByID(id string) (marketplace.Product, bool)
	GetSellerByID(id string) (marketplace.SellerProfile, bool)
}

// CatalogBrowse returns the buyer-visible catalog filtered by the query
// parameters and facet selections.
func CatalogBrowse(store catalogStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		query, err := catalog.ParseQuery(r.URL.Query())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		visible := catalog.Visible(store.Products(), store.GetSellerByID, query)
		responses.WriteSuccess(w, toProductDTOs(visible))
	}
}

// CatalogProductDetail returns one listing, gated the same way as browsing.
func CatalogProductDetail(store catalogStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		product, ok := store.ProductByID(chi.URLParam(r, "productId"))
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		if seller, ok := store.GetSellerByID(product.SellerID); !ok || !seller.IsVerified {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, toProductDTO(product))
	}
}

// CatalogSellerProfile resolves a seller id to its public profile.
func CatalogSellerProfile(store catalogStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		seller, ok := store.GetSellerByID(chi.URLParam(r, "sellerId"))
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "seller not found"))
			return
		}
		responses.WriteSuccess(w, toSellerDTO(seller))
	}
}
