package login

import (
	"errors"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		wantUserOK bool
		wantPassOK bool
	}{
		{"both correct", "root", "root", true, true},
		{"case insensitive", "Root", "ROOT", true, true},
		{"wrong password", "root", "secret", true, false},
		{"wrong username", "admin", "root", false, true},
		{"both wrong", "admin", "secret", false, false},
		{"both empty", "", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userOK, passOK, err := CheckCredentials(strPtr(tt.username), strPtr(tt.password))
			if err != nil {
				t.Fatalf("CheckCredentials failed: %v", err)
			}
			if userOK != tt.wantUserOK {
				t.Errorf("Expected username match %v, got %v", tt.wantUserOK, userOK)
			}
			if passOK != tt.wantPassOK {
				t.Errorf("Expected password match %v, got %v", tt.wantPassOK, passOK)
			}
		})
	}
}

func TestCheckCredentialsNilField(t *testing.T) {
	tests := []struct {
		name     string
		username *string
		password *string
	}{
		{"nil username", nil, strPtr("root")},
		{"nil password", strPtr("root"), nil},
		{"both nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userOK, passOK, err := CheckCredentials(tt.username, tt.password)
			if !errors.Is(err, ErrMissingCredential) {
				t.Errorf("Expected ErrMissingCredential, got %v", err)
			}
			if userOK || passOK {
				t.Errorf("Expected no match on error, got (%v, %v)", userOK, passOK)
			}
		})
	}
}

func TestNewAccount(t *testing.T) {
	account := NewAccount("root", "root", 1)

	if account.Username != "root" {
		t.Errorf("Expected username 'root', got %q", account.Username)
	}
	if account.Level != 1 {
		t.Errorf("Expected level 1, got %d", account.Level)
	}
}
