package controllers

import (
	"net/http"

	"github.com/deepaksuresh242006-wq/snekers-store/api/responses"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/checkout"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
)

// CheckoutSummary prices the cart for the order details step.
func CheckoutSummary(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout unavailable"))
			return
		}

		summary, err := svc.Summary(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toOrderSummaryDTO(summary))
	}
}

// CheckoutPlace runs the simulated payment step and clears the cart.
func CheckoutPlace(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout unavailable"))
			return
		}

		confirmation, err := svc.PlaceOrder(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toOrderConfirmationDTO(confirmation))
	}
}
