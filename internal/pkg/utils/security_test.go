package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("HashAndVerify", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		assert.NoError(t, err)
		assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		assert.NoError(t, err)
		assert.False(t, CheckPasswordHash("wrong password", hash))
	})

	t.Run("GarbageHash", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("anything", "not-a-bcrypt-hash"))
	})
}

func TestLocalAdminJWT(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		token, err := GenerateLocalAdminJWT("admin", "test-secret", time.Hour)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		username, err := ParseLocalAdminJWT(token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, "admin", username)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateLocalAdminJWT("admin", "test-secret", time.Hour)
		assert.NoError(t, err)

		_, err = ParseLocalAdminJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token, err := GenerateLocalAdminJWT("admin", "test-secret", -time.Minute)
		assert.NoError(t, err)

		_, err = ParseLocalAdminJWT(token, "test-secret")
		assert.Error(t, err)
	})

	t.Run("NotAToken", func(t *testing.T) {
		_, err := ParseLocalAdminJWT("garbage", "test-secret")
		assert.Error(t, err)
	})
}
