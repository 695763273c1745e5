package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var issuedAt = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", 123, issuedAt, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != 123 {
		t.Errorf("expected UserID 123, got %d", token.UserID)
	}
	if token.Issuer != "test-issuer" || token.Subject != "123" {
		t.Errorf("unexpected claims: iss=%s sub=%s", token.Issuer, token.Subject)
	}
	if !token.ExpiresAt.Equal(issuedAt.Add(time.Hour)) {
		t.Errorf("expected exp %v, got %v", issuedAt.Add(time.Hour), token.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, issuedAt, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidTokenParams) {
				t.Errorf("expected ErrInvalidTokenParams, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", 456, issuedAt, time.Hour, "key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss", issuedAt.Add(59*time.Minute))
	if err != nil {
		t.Fatalf("expected token to be valid at T+59m, got: %v", err)
	}
	if parsed.UserID != 456 {
		t.Errorf("expected userID 456, got %d", parsed.UserID)
	}

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "key", "iss", issuedAt.Add(61*time.Minute))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired at T+61m, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	valid, _ := GenerateJWTToken("real-issuer", 1, issuedAt, time.Hour, "correct-key")
	now := issuedAt.Add(time.Minute)

	noneToken, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "real-issuer",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  "real-issuer",
		Subject: "1",
	}).SignedString([]byte("correct-key"))

	badSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "real-issuer",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
	}).SignedString([]byte("correct-key"))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "wrong-key", "real-issuer"},
		{"wrong issuer", valid.SignedString, "correct-key", "fake-issuer"},
		{"malformed", "not.a.token", "correct-key", "real-issuer"},
		{"alg none", noneToken, "correct-key", "real-issuer"},
		{"no expiry", noExp, "correct-key", "real-issuer"},
		{"non numeric subject", badSubject, "correct-key", "real-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, now); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAuthorizationHeader) {
				t.Errorf("ParseBearerToken(%q): expected ErrInvalidAuthorizationHeader, got %v", tt.header, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseBearerToken(%q) = %q, %v; want %q", tt.header, got, err, tt.want)
		}
	}
}
