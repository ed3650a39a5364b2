package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/deepaksuresh242006-wq/snekers-store/api/responses"
	"github.com/deepaksuresh242006-wq/snekers-store/api/validators"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/auth"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	BusinessName string `json:"businessName" validate:"required"`
}

func toSessionDTO(session *auth.Session) sessionDTO {
	return sessionDTO{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
		User:      toIdentityDTO(session.Identity),
	}
}

// AuthLogin matches credentials and issues a session token.
func AuthLogin(collab auth.Collaborator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if collab == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth unavailable"))
			return
		}

		var req loginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		session, err := collab.Login(ctx, req.Email, req.Password)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toSessionDTO(session))
	}
}

// AuthGuest creates an ephemeral buyer session without credentials.
func AuthGuest(collab auth.Collaborator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if collab == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth unavailable"))
			return
		}

		session, err := collab.Guest(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, toSessionDTO(session))
	}
}

// AuthRegister signs up a new seller account and issues its first session.
func AuthRegister(collab auth.Collaborator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if collab == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth unavailable"))
			return
		}

		var req registerRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		session, err := collab.Signup(ctx, auth.SignupInput{
			Name:         req.Name,
			Email:        req.Email,
			Password:     req.Password,
			BusinessName: req.BusinessName,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toSessionDTO(session))
	}
}

type marketplaceSession interface {
	Logout(ctx context.Context)
	CurrentUser() (marketplace.Identity, bool)
}

// AuthLogout ends the current session and clears the cart.
func AuthLogout(store marketplaceSession, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store unavailable"))
			return
		}

		store.Logout(ctx)
		responses.WriteSuccess(w, map[string]string{"status": "signed_out"})
	}
}

// AuthMe returns the current session principal.
func AuthMe(store marketplaceSession, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if store == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "store unavailable"))
			return
		}

		identity, ok := store.CurrentUser()
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session"))
			return
		}
		responses.WriteSuccess(w, toIdentityDTO(identity))
	}
}
