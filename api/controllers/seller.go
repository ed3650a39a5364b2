package controllers

import (
	"context"
	"net/http"

	"github.com/deepaksuresh242006-wq/snekers-store/api/middleware"
	"github.com/deepaksuresh242006-wq/snekers-store/api/responses"
	"github.com/deepaksuresh242006-wq/snekers-store/api/validators"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/enums"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
	"github.com/shopspring/decimal"
)

type sellerStore interface {
	Products() []marketplace.Product
	AddProduct(ctx context.Context, input marketplace.ProductInput) marketplace.Product
}

type addProductRequest struct {
	Title       string `json:"title" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Size        string `json:"size" validate:"required"`
	Condition   string `json:"condition" validate:"required,oneof=New Used"`
	Category    string `json:"category" validate:"required,oneof=Men Women Kids Unisex"`
	OnSale      bool   `json:"onSale"`
}

// SellerProducts lists the authenticated seller's own listings, verified or
// not.
func SellerProducts(store sellerStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store unavailable"))
			return
		}

		sellerID := middleware.UserIDFromContext(ctx)
		if sellerID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing seller context"))
			return
		}

		var own []marketplace.Product
		for _, p := range store.Products() {
			if p.SellerID == sellerID {
				own = append(own, p)
			}
		}
		responses.WriteSuccess(w, toProductDTOs(own))
	}
}

// SellerAddProduct validates the listing form and appends it to the catalog.
func SellerAddProduct(store sellerStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store unavailable"))
			return
		}

		sellerID := middleware.UserIDFromContext(ctx)
		if sellerID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing seller context"))
			return
		}

		var req addProductRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price must be a non-negative amount").WithDetails(map[string]any{"field": "price"}))
			return
		}

		condition, err := enums.ParseCondition(req.Condition)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition"))
			return
		}
		category, err := enums.ParseCategory(req.Category)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid category"))
			return
		}

		product := store.AddProduct(ctx, marketplace.ProductInput{
			SellerID:    sellerID,
			Title:       req.Title,
			Price:       price,
			Image:       req.Image,
			Description: req.Description,
			Size:        req.Size,
			Condition:   condition,
			Category:    category,
			OnSale:      req.OnSale,
		})
		responses.WriteSuccessStatus(w, http.StatusCreated, toProductDTO(product))
	}
}
