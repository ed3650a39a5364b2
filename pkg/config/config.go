package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvPrefix = "snekers"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App         AppConfig
	Session     SessionConfig
	Marketplace MarketplaceConfig
	Checkout    CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if _, err := cfg.Checkout.ShippingFee(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SNEKERS_APP_ENV" default:"dev"`
	Port         string `envconfig:"SNEKERS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SNEKERS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SNEKERS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SessionConfig struct {
	Secret            string `envconfig:"SNEKERS_SESSION_SECRET" default:"dev-only-secret"`
	Issuer            string `envconfig:"SNEKERS_SESSION_ISSUER" default:"snekers-store"`
	ExpirationMinutes int    `envconfig:"SNEKERS_SESSION_EXPIRATION_MINUTES" default:"60"`
}

// TokenTTL returns the session token TTL configured in minutes.
func (s SessionConfig) TokenTTL() time.Duration {
	if s.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(s.ExpirationMinutes) * time.Minute
}

type MarketplaceConfig struct {
	UndoWindow time.Duration `envconfig:"SNEKERS_CART_UNDO_WINDOW" default:"5s"`
}

type CheckoutConfig struct {
	ProcessingDelay time.Duration `envconfig:"SNEKERS_CHECKOUT_PROCESSING_DELAY" default:"2s"`
	ShippingFeeUSD  string        `envconfig:"SNEKERS_CHECKOUT_SHIPPING_FEE_USD" default:"7.00"`
}

// ShippingFee returns the flat shipping fee as a decimal amount.
func (c CheckoutConfig) ShippingFee() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(strings.TrimSpace(c.ShippingFeeUSD))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing shipping fee %q: %w", c.ShippingFeeUSD, err)
	}
	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("shipping fee cannot be negative")
	}
	return fee, nil
}
