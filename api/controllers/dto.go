package controllers

import (
	"time"

	"github.com/deepaksuresh242006-wq/snekers-store/internal/checkout"
	"github.com/deepaksuresh242006-wq/snekers-store/internal/marketplace"
	"github.com/shopspring/decimal"
)

// Money renders as a fixed two-decimal dollar string.

type productDTO struct {
	ID          string `json:"id"`
	SellerID    string `json:"sellerId"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
	Size        string `json:"size,omitempty"`
	Condition   string `json:"condition"`
	Category    string `json:"category"`
	OnSale      bool   `json:"onSale"`
}

type sellerDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	BusinessName string `json:"businessName"`
	IsVerified   bool   `json:"isVerified"`
	JoinedDate   string `json:"joinedDate"`
}

type identityDTO struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Role   string     `json:"role"`
	Email  string     `json:"email,omitempty"`
	Seller *sellerDTO `json:"seller,omitempty"`
}

type cartItemDTO struct {
	productDTO
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type cartDTO struct {
	Items       []cartItemDTO `json:"items"`
	ItemCount   int           `json:"itemCount"`
	Subtotal    string        `json:"subtotal"`
	LastRemoved *cartItemDTO  `json:"lastRemoved,omitempty"`
}

type orderSummaryDTO struct {
	Lines     []cartItemDTO `json:"lines"`
	ItemCount int           `json:"itemCount"`
	Subtotal  string        `json:"subtotal"`
	Shipping  string        `json:"shipping"`
	Total     string        `json:"total"`
}

type orderConfirmationDTO struct {
	OrderID  string `json:"orderId"`
	Total    string `json:"total"`
	PlacedAt string `json:"placedAt"`
}

type sessionDTO struct {
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expiresAt"`
	User      identityDTO `json:"user"`
}

func toProductDTO(p marketplace.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Title:       p.Title,
		Price:       p.Price.StringFixed(2),
		Image:       p.Image,
		Description: p.Description,
		Size:        p.Size,
		Condition:   string(p.Condition),
		Category:    string(p.Category),
		OnSale:      p.OnSale,
	}
}

func toProductDTOs(products []marketplace.Product) []productDTO {
	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	return out
}

func toSellerDTO(s marketplace.SellerProfile) sellerDTO {
	return sellerDTO{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		BusinessName: s.BusinessName,
		IsVerified:   s.IsVerified,
		JoinedDate:   s.JoinedDate,
	}
}

func toIdentityDTO(id marketplace.Identity) identityDTO {
	dto := identityDTO{
		ID:    id.ID,
		Name:  id.Name,
		Role:  string(id.Role),
		Email: id.Email,
	}
	if id.Seller != nil {
		seller := toSellerDTO(*id.Seller)
		dto.Seller = &seller
	}
	return dto
}

func toCartItemDTO(item marketplace.CartItem) cartItemDTO {
	return cartItemDTO{
		productDTO: toProductDTO(item.Product),
		Quantity:   item.Quantity,
		LineTotal:  item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2),
	}
}

func toCartDTO(items []marketplace.CartItem, lastRemoved *marketplace.CartItem) cartDTO {
	dto := cartDTO{
		Items: make([]cartItemDTO, 0, len(items)),
	}
	subtotal := decimal.Zero
	for _, item := range items {
		dto.Items = append(dto.Items, toCartItemDTO(item))
		dto.ItemCount += item.Quantity
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	dto.Subtotal = subtotal.StringFixed(2)
	if lastRemoved != nil {
		buffered := toCartItemDTO(*lastRemoved)
		dto.LastRemoved = &buffered
	}
	return dto
}

func toOrderSummaryDTO(summary *checkout.OrderSummary) orderSummaryDTO {
	dto := orderSummaryDTO{
		Lines:     make([]cartItemDTO, 0, len(summary.Lines)),
		ItemCount: summary.ItemCount,
		Subtotal:  summary.Subtotal.StringFixed(2),
		Shipping:  summary.Shipping.StringFixed(2),
		Total:     summary.Total.StringFixed(2),
	}
	for _, line := range summary.Lines {
		dto.Lines = append(dto.Lines, cartItemDTO{
			productDTO: toProductDTO(line.Item.Product),
			Quantity:   line.Item.Quantity,
			LineTotal:  line.LineTotal.StringFixed(2),
		})
	}
	return dto
}

func toOrderConfirmationDTO(confirmation *checkout.OrderConfirmation) orderConfirmationDTO {
	return orderConfirmationDTO{
		OrderID:  confirmation.OrderID,
		Total:    confirmation.Total.StringFixed(2),
		PlacedAt: confirmation.PlacedAt.UTC().Format(time.RFC3339),
	}
}
