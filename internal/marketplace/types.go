package marketplace

import (
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/enums"
	"github.com/shopspring/decimal"
)

// User is the base identity for every session principal.
// Passwords are plaintext and live only in process memory; nothing here is
// ever persisted.
type User struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Role     enums.Role `json:"role"`
	Email    string     `json:"email,omitempty"`
	Password string     `json:"-"`
}

// SellerProfile is a User with the seller-only fields attached.
type SellerProfile struct {
	User
	BusinessName string `json:"businessName"`
	IsVerified   bool   `json:"isVerified"`
	JoinedDate   string `json:"joinedDate"`
}

// Identity is the session principal variant. Role on the embedded User tags
// the variant; Seller is non-nil only when Role is SELLER.
type Identity struct {
	User
	Seller *SellerProfile `json:"seller,omitempty"`
}

// Product is a catalog listing. SellerID is a non-owning reference: a product
// whose seller has disappeared simply fails the visibility gate.
type Product struct {
	ID          string          `json:"id"`
	SellerID    string          `json:"sellerId"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Size        string          `json:"size"`
	Condition   enums.Condition `json:"condition"`
	Category    enums.Category  `json:"category"`
	OnSale      bool            `json:"onSale"`
}

// CartItem is a snapshot of a Product at add time plus a quantity. Catalog
// edits after the add do not reach items already in the cart.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// RegisterSellerInput carries the fields for a new seller registration.
type RegisterSellerInput struct {
	Name         string
	Email        string
	Password     string
	BusinessName string
}

// ProductInput carries the listing fields minus the generated id.
type ProductInput struct {
	SellerID    string
	Title       string
	Price       decimal.Decimal
	Image       string
	Description string
	Size        string
	Condition   enums.Condition
	Category    enums.Category
	OnSale      bool
}
