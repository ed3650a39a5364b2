package marketplace

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/deepaksuresh242006-wq/snekers-store/pkg/enums"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/logger"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/metrics"
	"github.com/google/uuid"
)

const defaultUndoWindow = 5 * time.Second

// SessionEnder is the slice of the external auth collaborator the store needs:
// it only tells the collaborator to end its session on logout.
type SessionEnder interface {
	Logout(ctx context.Context) error
}

// Config tunes store behavior.
type Config struct {
	UndoWindow time.Duration
}

// Store is the single source of truth for session identity, the seller and
// product catalogs, and the cart. Every mutation goes through a named
// operation and holds the lock for its full duration, so each operation is
// atomic from the caller's perspective.
type Store struct {
	mu      sync.Mutex
	logg    *logger.Logger
	metrics *metrics.StoreMetrics

	undoWindow   time.Duration
	now          func() time.Time
	sessionEnder SessionEnder

	admin       User
	current     *Identity
	sellers     []SellerProfile
	products    []Product
	cart        []CartItem
	lastRemoved *CartItem
	undoTimer   *time.Timer
}

// New builds a store seeded with the provided catalog.
func New(cfg Config, seed Seed, logg *logger.Logger, m *metrics.StoreMetrics) (*Store, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	if seed.Admin.ID == "" {
		return nil, fmt.Errorf("seed admin required")
	}
	undoWindow := cfg.UndoWindow
	if undoWindow <= 0 {
		undoWindow = defaultUndoWindow
	}

	sellers := make([]SellerProfile, len(seed.Sellers))
	copy(sellers, seed.Sellers)
	products := make([]Product, len(seed.Products))
	copy(products, seed.Products)

	return &Store{
		logg:       logg,
		metrics:    m,
		undoWindow: undoWindow,
		now:        time.Now,
		admin:      seed.Admin,
		sellers:    sellers,
		products:   products,
	}, nil
}

// BindSessionEnder wires the external auth collaborator notified on logout.
func (s *Store) BindSessionEnder(ender SessionEnder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionEnder = ender
}

// Login matches credentials against the admin singleton first, then the
// seller list, by exact equality. It reports success and never fails hard.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == s.admin.Email && password == s.admin.Password {
		s.current = &Identity{User: s.admin}
		s.logg.Info(s.logg.WithUserID(ctx, s.admin.ID), "store.login.admin")
		return true
	}

	for i := range s.sellers {
		if s.sellers[i].Email == email && s.sellers[i].Password == password {
			seller := s.sellers[i]
			s.current = &Identity{User: seller.User, Seller: &seller}
			s.logg.Info(s.logg.WithSellerID(ctx, seller.ID), "store.login.seller")
			return true
		}
	}

	s.logg.Warn(ctx, "store.login.rejected")
	return false
}

// GuestLogin creates an ephemeral buyer identity with a fresh id.
func (s *Store) GuestLogin(ctx context.Context) Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	guest := Identity{User: User{
		ID:   "guest-" + uuid.NewString(),
		Name: "Guest Buyer",
		Role: enums.RoleBuyer,
	}}
	s.current = &guest
	s.logg.Info(s.logg.WithUserID(ctx, guest.ID), "store.login.guest")
	return guest
}

// SetAuthenticatedUser installs a profile produced by the external auth
// collaborator as the current session principal.
func (s *Store) SetAuthenticatedUser(ctx context.Context, id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &id
	s.logg.Info(s.logg.WithUserID(ctx, id.ID), "store.session.external")
}

// RegisterSeller appends an unverified seller and makes it the current user.
// The new seller stays invisible in the buyer catalog until verified.
func (s *Store) RegisterSeller(ctx context.Context, input RegisterSellerInput) SellerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	seller := SellerProfile{
		User: User{
			ID:       "s-" + uuid.NewString(),
			Name:     input.Name,
			Role:     enums.RoleSeller,
			Email:    input.Email,
			Password: input.Password,
		},
		BusinessName: input.BusinessName,
		IsVerified:   false,
		JoinedDate:   s.now().Format(time.DateOnly),
	}
	s.sellers = append(s.sellers, seller)
	s.current = &Identity{User: seller.User, Seller: &seller}
	s.metrics.IncRegistration()
	s.logg.Info(s.logg.WithSellerID(ctx, seller.ID), "store.seller.registered")
	return seller
}

// VerifySeller flips the verification flag for the matching seller.
// Unknown ids degrade to a no-op.
func (s *Store) VerifySeller(ctx context.Context, sellerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sellers {
		if s.sellers[i].ID == sellerID {
			s.sellers[i].IsVerified = true
			s.metrics.IncVerification()
			s.logg.Info(s.logg.WithSellerID(ctx, sellerID), "store.seller.verified")
			return
		}
	}
	s.logg.Warn(s.logg.WithSellerID(ctx, sellerID), "store.seller.verify.unknown")
}

// AddProduct appends a listing with a freshly generated id. Inputs are
// trusted; validation belongs to the calling form layer.
func (s *Store) AddProduct(ctx context.Context, input ProductInput) Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := Product{
		ID:          "p-" + uuid.NewString(),
		SellerID:    input.SellerID,
		Title:       input.Title,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		Size:        input.Size,
		Condition:   input.Condition,
		Category:    input.Category,
		OnSale:      input.OnSale,
	}
	s.products = append(s.products, product)
	s.logg.Info(s.logg.WithSellerID(ctx, product.SellerID), "store.product.added")
	return product
}

// AddToCart increments the quantity of an existing row or inserts a new row
// with quantity 1. The cart never holds two rows for the same product id.
func (s *Store) AddToCart(ctx context.Context, product Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == product.ID {
			s.cart[i].Quantity++
			s.metrics.IncCartAdd()
			s.logg.Info(ctx, "store.cart.incremented")
			return
		}
	}
	s.cart = append(s.cart, CartItem{Product: product, Quantity: 1})
	s.metrics.IncCartAdd()
	s.logg.Info(ctx, "store.cart.added")
}

// RemoveFromCart drops the whole row for the product id and parks it in the
// one-slot undo buffer. The buffer clears itself after the undo window unless
// an undo or a newer removal lands first; only the most recent removal is
// undoable.
func (s *Store) RemoveFromCart(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.cart {
		if s.cart[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	removed := s.cart[idx]
	s.cart = append(s.cart[:idx], s.cart[idx+1:]...)
	s.lastRemoved = &removed

	if s.undoTimer != nil {
		s.undoTimer.Stop()
	}
	// The identity guard keeps a stale timer from clearing a newer buffer
	// entry in case Stop raced with the callback.
	scheduledID := removed.ID
	s.undoTimer = time.AfterFunc(s.undoWindow, func() {
		s.expireUndoBuffer(scheduledID)
	})

	s.metrics.IncCartRemove()
	s.logg.Info(ctx, "store.cart.removed")
}

func (s *Store) expireUndoBuffer(scheduledID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRemoved != nil && s.lastRemoved.ID == scheduledID {
		s.lastRemoved = nil
	}
}

// UndoRemoveFromCart re-appends the buffered item at the tail of the cart and
// clears the buffer. A no-op when the buffer is empty.
func (s *Store) UndoRemoveFromCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastRemoved == nil {
		return
	}
	s.cart = append(s.cart, *s.lastRemoved)
	s.lastRemoved = nil
	if s.undoTimer != nil {
		s.undoTimer.Stop()
		s.undoTimer = nil
	}
	s.metrics.IncCartUndo()
	s.logg.Info(ctx, "store.cart.undo")
}

// ClearCart empties the cart unconditionally. The undo buffer is untouched.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.logg.Info(ctx, "store.cart.cleared")
}

// Logout notifies the auth collaborator, then drops the session and the cart.
// Safe to call repeatedly.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	ender := s.sessionEnder
	s.current = nil
	s.cart = nil
	s.mu.Unlock()

	if ender != nil {
		if err := ender.Logout(ctx); err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "store.logout.collaborator")
		}
	}
	s.logg.Info(ctx, "store.logout")
}

// GetSellerByID looks up a seller profile.
func (s *Store) GetSellerByID(id string) (SellerProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sellers {
		if s.sellers[i].ID == id {
			return s.sellers[i], true
		}
	}
	return SellerProfile{}, false
}

// ProductByID looks up a catalog listing.
func (s *Store) ProductByID(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			return s.products[i], true
		}
	}
	return Product{}, false
}

// CurrentUser returns the session principal, if any.
func (s *Store) CurrentUser() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Identity{}, false
	}
	return *s.current, true
}

// Sellers returns a copy of the seller list.
func (s *Store) Sellers() []SellerProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]SellerProfile, len(s.sellers))
	copy(out, s.sellers)
	return out
}

// Products returns a copy of the product catalog.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Cart returns a copy of the cart rows in insertion order.
func (s *Store) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// LastRemoved exposes the undo buffer contents, if present.
func (s *Store) LastRemoved() (CartItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRemoved == nil {
		return CartItem{}, false
	}
	return *s.lastRemoved, true
}

// Close stops any pending undo timer.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.undoTimer != nil {
		s.undoTimer.Stop()
		s.undoTimer = nil
	}
}
