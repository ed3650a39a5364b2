package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	pkgauth "github.com/deepaksuresh242006-wq/snekers-store/pkg/auth"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/config"
	pkgerrors "github.com/deepaksuresh242006-wq/snekers-store/pkg/errors"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
)

const minPasswordLength = 8

// Failure reasons surfaced to the calling page for user-facing copy.
const (
	ReasonAccountExists    = "account-exists"
	ReasonInvalidEmail     = "invalid-email"
	ReasonWeakPassword     = "weak-password"
	ReasonPermissionDenied = "permission-denied"
)

type identityStore interface {
	Login(ctx context.Context, email, password string) bool
	GuestLogin(ctx context.Context) marketplace.Identity
	RegisterSeller(ctx context.Context, input marketplace.RegisterSellerInput) marketplace.SellerProfile
	SetAuthenticatedUser(ctx context.Context, id marketplace.Identity)
	CurrentUser() (marketplace.Identity, bool)
	GetSellerByID(id string) (marketplace.SellerProfile, bool)
	Sellers() []marketplace.SellerProfile
}

// Session is the outcome of a successful sign-in: the signed token clients
// carry between requests plus the resolved identity.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Identity  marketplace.Identity
}

// SignupInput carries a new seller registration through the collaborator.
type SignupInput struct {
	Name         string
	Email        string
	Password     string
	BusinessName string
}

// Collaborator is the authentication boundary the storefront talks to. The
// store itself only sees the narrow SessionEnder slice of it.
type Collaborator interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Guest(ctx context.Context) (*Session, error)
	Signup(ctx context.Context, input SignupInput) (*Session, error)
	Resume(ctx context.Context, token string) (marketplace.Identity, error)
	Logout(ctx context.Context) error
}

type service struct {
	mu         sync.Mutex
	store      identityStore
	cfg        config.SessionConfig
	logg       *logger.Logger
	now        func() time.Time
	activeJTIs map[string]struct{}
}

// NewService builds the token-issuing collaborator over the marketplace store.
func NewService(cfg config.SessionConfig, store identityStore, logg *logger.Logger) (Collaborator, error) {
	if store == nil {
		return nil, fmt.Errorf("identity store is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	return &service{
		store:      store,
		cfg:        cfg,
		logg:       logg,
		now:        time.Now,
		activeJTIs: make(map[string]struct{}),
	}, nil
}

// Login matches credentials through the store and mints a session token on
// success. Bad credentials come back as an unauthorized error, never a panic.
func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	if !s.store.Login(ctx, email, password) {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}
	identity, ok := s.store.CurrentUser()
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session missing after login")
	}
	return s.issue(ctx, identity)
}

// Guest creates an ephemeral buyer session.
func (s *service) Guest(ctx context.Context) (*Session, error) {
	return s.issue(ctx, s.store.GuestLogin(ctx))
}

// Signup registers a new seller account. Failures are categorized so the
// calling page can translate them to user-facing text.
func (s *service) Signup(ctx context.Context, input SignupInput) (*Session, error) {
	email := strings.TrimSpace(input.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email address is not valid").
			WithDetails(map[string]any{"reason": ReasonInvalidEmail})
	}
	if len(input.Password) < minPasswordLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is too short").
			WithDetails(map[string]any{"reason": ReasonWeakPassword})
	}
	for _, seller := range s.store.Sellers() {
		if strings.EqualFold(seller.Email, email) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "an account already exists for this email").
				WithDetails(map[string]any{"reason": ReasonAccountExists})
		}
	}

	seller := s.store.RegisterSeller(ctx, marketplace.RegisterSellerInput{
		Name:         input.Name,
		Email:        email,
		Password:     input.Password,
		BusinessName: input.BusinessName,
	})
	return s.issue(ctx, marketplace.Identity{User: seller.User, Seller: &seller})
}

// Resume validates a previously issued token and pushes the resolved profile
// into the store, mirroring an external provider's sign-in callback.
func (s *service) Resume(ctx context.Context, token string) (marketplace.Identity, error) {
	claims, err := pkgauth.ParseSessionToken(s.cfg, token)
	if err != nil {
		return marketplace.Identity{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "session token rejected")
	}

	s.mu.Lock()
	_, active := s.activeJTIs[claims.ID]
	s.mu.Unlock()
	if !active {
		return marketplace.Identity{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "session has ended")
	}

	identity := marketplace.Identity{User: marketplace.User{
		ID:   claims.UserID,
		Name: claims.Name,
		Role: claims.Role,
	}}
	if seller, ok := s.store.GetSellerByID(claims.UserID); ok {
		identity = marketplace.Identity{User: seller.User, Seller: &seller}
	}

	s.store.SetAuthenticatedUser(ctx, identity)
	return identity, nil
}

// Logout forgets every active session token. Idempotent.
func (s *service) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.activeJTIs = make(map[string]struct{})
	s.mu.Unlock()
	s.logg.Info(ctx, "auth session ended")
	return nil
}

func (s *service) issue(ctx context.Context, identity marketplace.Identity) (*Session, error) {
	now := s.now()
	payload := pkgauth.SessionTokenPayload{
		UserID: identity.ID,
		Name:   identity.Name,
		Role:   identity.Role,
	}
	token, err := pkgauth.MintSessionToken(s.cfg, now, payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting session token")
	}
	claims, err := pkgauth.ParseSessionToken(s.cfg, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying minted token")
	}

	s.mu.Lock()
	s.activeJTIs[claims.ID] = struct{}{}
	s.mu.Unlock()

	s.logg.Info(s.logg.WithRole(s.logg.WithUserID(ctx, identity.ID), string(identity.Role)), "session issued")
	return &Session{
		Token:     token,
		ExpiresAt: now.Add(s.cfg.TokenTTL()),
		Identity:  identity,
	}, nil
}
