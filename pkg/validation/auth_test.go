package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := NewAuthRequestValidator()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "ivan@example.com", false},
		{"valid with plus", "ivan+fit@example.com", false},
		{"valid subdomain", "ivan@mail.example.co.uk", false},
		{"empty", "", true},
		{"no at sign", "ivan.example.com", true},
		{"no domain", "ivan@", true},
		{"no tld", "ivan@example", true},
		{"spaces", "ivan @example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	v := NewAuthRequestValidator()

	assert.NoError(t, v.ValidatePassword("secret"))
	assert.Error(t, v.ValidatePassword(""))
	assert.Error(t, v.ValidatePassword("short"))
	assert.Error(t, v.ValidatePassword(strings.Repeat("a", 129)))
	assert.NoError(t, v.ValidatePassword(strings.Repeat("a", 128)))
}

func TestValidateUsername(t *testing.T) {
	v := NewAuthRequestValidator()

	assert.NoError(t, v.ValidateUsername("ivan"))
	assert.Error(t, v.ValidateUsername(""))
	assert.Error(t, v.ValidateUsername(strings.Repeat("a", 101)))
}

func TestValidateRegisterRequest(t *testing.T) {
	v := NewAuthRequestValidator()

	assert.NoError(t, v.ValidateRegisterRequest("ivan@example.com", "ivan", "secret123"))
	assert.Error(t, v.ValidateRegisterRequest("bad-email", "ivan", "secret123"))
	assert.Error(t, v.ValidateRegisterRequest("ivan@example.com", "", "secret123"))
	assert.Error(t, v.ValidateRegisterRequest("ivan@example.com", "ivan", "123"))
}

func TestValidateLoginRequest(t *testing.T) {
	v := NewAuthRequestValidator()

	assert.NoError(t, v.ValidateLoginRequest("ivan@example.com", "secret123"))
	assert.Error(t, v.ValidateLoginRequest("", "secret123"))
	assert.Error(t, v.ValidateLoginRequest("ivan@example.com", ""))
}
