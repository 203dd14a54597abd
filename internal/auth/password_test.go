package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	// Hashing the same password twice yields different digests (random salt)
	hash2, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		digest   string
		want     bool
	}{
		{name: "correct password", password: "secret123", digest: hash, want: true},
		{name: "wrong password", password: "wrong", digest: hash, want: false},
		{name: "empty password", password: "", digest: hash, want: false},
		{name: "malformed digest", password: "secret123", digest: "not-a-bcrypt-hash", want: false},
		{name: "empty digest", password: "secret123", digest: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPassword(tt.password, tt.digest))
		})
	}
}
