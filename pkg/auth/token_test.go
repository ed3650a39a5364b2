package auth

import (
	"testing"
	"time"

	"github.com/deepaksuresh242006-wq/snekers-store/pkg/config"
	"github.com/deepaksuresh242006-wq/snekers-store/pkg/enums"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:            "secret",
		Issuer:            "snekers-store",
		ExpirationMinutes: 30,
	}
}

func TestMintAndParseSessionToken(t *testing.T) {
	cfg := testSessionConfig()
	now := time.Now()

	token, err := MintSessionToken(cfg, now, SessionTokenPayload{
		UserID: "s1",
		Name:   "Jordan Mike",
		Role:   enums.RoleSeller,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseSessionToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "s1" {
		t.Fatalf("expected user id s1, got %s", claims.UserID)
	}
	if claims.Role != enums.RoleSeller {
		t.Fatalf("expected seller role, got %s", claims.Role)
	}
	if claims.ID == "" {
		t.Fatalf("expected a generated jti")
	}
}

func TestMintSessionTokenRejectsInvalidRole(t *testing.T) {
	_, err := MintSessionToken(testSessionConfig(), time.Now(), SessionTokenPayload{
		UserID: "u1",
		Role:   enums.Role("SUPERUSER"),
	})
	if err == nil {
		t.Fatalf("expected error for invalid role")
	}
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	cfg := testSessionConfig()
	token, err := MintSessionToken(cfg, time.Now(), SessionTokenPayload{
		UserID: "u1",
		Role:   enums.RoleBuyer,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := cfg
	other.Secret = "different"
	if _, err := ParseSessionToken(other, token); err == nil {
		t.Fatalf("expected parse failure with wrong secret")
	}
}
