package password_test

import (
	"errors"
	"strings"
	"testing"

	"lodge/shared/password"

	"golang.org/x/crypto/bcrypt"
)

func TestConstants(t *testing.T) {
	if password.DefaultCost != bcrypt.DefaultCost {
		t.Errorf("expected DefaultCost to be %d, got %d", bcrypt.DefaultCost, password.DefaultCost)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{
			name:     "valid password",
			password: "validPassword123",
		},
		{
			name:        "empty password",
			password:    "",
			expectError: true,
		},
		{
			name:     "short password",
			password: "abc",
		},
		{
			name:     "maximum length password",
			password: strings.Repeat("a", 72),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if hash == "" {
				t.Error("expected non-empty hash")
			}

			if hash == tt.password {
				t.Error("hash must not equal the plaintext password")
			}
		})
	}
}

func TestHashProducesDistinctHashes(t *testing.T) {
	first, err := password.Hash("samePassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := password.Hash("samePassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected different salts to produce different hashes")
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("correctPassword123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		password    string
		hash        string
		expectError error
	}{
		{
			name:     "matching password",
			password: "correctPassword123",
			hash:     hash,
		},
		{
			name:        "wrong password",
			password:    "wrongPassword123",
			hash:        hash,
			expectError: password.ErrInvalidPassword,
		},
		{
			name:        "empty password",
			password:    "",
			hash:        hash,
			expectError: password.ErrInvalidPassword,
		},
		{
			name:        "empty hash",
			password:    "correctPassword123",
			hash:        "",
			expectError: password.ErrInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("expected error %v, got %v", tt.expectError, err)
				}

				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	err := password.Verify("anyPassword123", "not-a-bcrypt-hash")
	if err == nil {
		t.Error("expected error for malformed hash")
	}

	if errors.Is(err, password.ErrInvalidPassword) {
		t.Error("malformed hash must not be reported as a password mismatch")
	}
}
