package marketplace

import (
	_ "embed"
	"fmt"

	"github.com/deepaksuresh242006-wq/snekers-store/pkg/enums"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed holds the catalog the store starts from.
type Seed struct {
	Admin    User
	Sellers  []SellerProfile
	Products []Product
}

type seedUser struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type seedSeller struct {
	ID           string `yaml:"id"`
	Name         string `yaml:"name"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	BusinessName string `yaml:"businessName"`
	IsVerified   bool   `yaml:"isVerified"`
	JoinedDate   string `yaml:"joinedDate"`
}

type seedProduct struct {
	ID          string `yaml:"id"`
	SellerID    string `yaml:"sellerId"`
	Title       string `yaml:"title"`
	Price       string `yaml:"price"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
	Size        string `yaml:"size"`
	Condition   string `yaml:"condition"`
	Category    string `yaml:"category"`
	OnSale      bool   `yaml:"onSale"`
}

type seedFile struct {
	Admin    seedUser      `yaml:"admin"`
	Sellers  []seedSeller  `yaml:"sellers"`
	Products []seedProduct `yaml:"products"`
}

// DefaultSeed parses the embedded mock catalog.
func DefaultSeed() (Seed, error) {
	return parseSeed(seedYAML)
}

func parseSeed(raw []byte) (Seed, error) {
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Seed{}, fmt.Errorf("parsing seed: %w", err)
	}

	adminRole, err := enums.ParseRole(file.Admin.Role)
	if err != nil {
		return Seed{}, fmt.Errorf("seed admin: %w", err)
	}
	seed := Seed{
		Admin: User{
			ID:       file.Admin.ID,
			Name:     file.Admin.Name,
			Role:     adminRole,
			Email:    file.Admin.Email,
			Password: file.Admin.Password,
		},
	}

	for _, entry := range file.Sellers {
		seed.Sellers = append(seed.Sellers, SellerProfile{
			User: User{
				ID:       entry.ID,
				Name:     entry.Name,
				Role:     enums.RoleSeller,
				Email:    entry.Email,
				Password: entry.Password,
			},
			BusinessName: entry.BusinessName,
			IsVerified:   entry.IsVerified,
			JoinedDate:   entry.JoinedDate,
		})
	}

	for _, entry := range file.Products {
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return Seed{}, fmt.Errorf("seed product %s price: %w", entry.ID, err)
		}
		condition, err := enums.ParseCondition(entry.Condition)
		if err != nil {
			return Seed{}, fmt.Errorf("seed product %s: %w", entry.ID, err)
		}
		category, err := enums.ParseCategory(entry.Category)
		if err != nil {
			return Seed{}, fmt.Errorf("seed product %s: %w", entry.ID, err)
		}
		seed.Products = append(seed.Products, Product{
			ID:          entry.ID,
			SellerID:    entry.SellerID,
			Title:       entry.Title,
			Price:       price,
			Image:       entry.Image,
			Description: entry.Description,
			Size:        entry.Size,
			Condition:   condition,
			Category:    category,
			OnSale:      entry.OnSale,
		})
	}

	return seed, nil
}
