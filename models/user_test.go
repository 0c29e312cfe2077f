package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		u := User{}
		assert.Equal(t, "users", u.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		u := User{}
		err := u.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID)
	})

	t.Run("SetPassword", func(t *testing.T) {
		u := User{}
		err := u.SetPassword("short")
		assert.Equal(t, ErrPasswordTooShort, err)

		err = u.SetPassword("correct-horse-battery")
		assert.NoError(t, err)
		assert.NotEmpty(t, u.PasswordHash)
		assert.NotEqual(t, "correct-horse-battery", u.PasswordHash)
	})

	t.Run("CheckPassword", func(t *testing.T) {
		u := User{}
		assert.NoError(t, u.SetPassword("correct-horse-battery"))
		assert.True(t, u.CheckPassword("correct-horse-battery"))
		assert.False(t, u.CheckPassword("wrong-password"))
	})

	t.Run("UpdateLastLogin", func(t *testing.T) {
		u := User{}
		assert.Nil(t, u.LastLoginAt)
		u.UpdateLastLogin()
		assert.NotNil(t, u.LastLoginAt)
	})

	t.Run("Validate", func(t *testing.T) {
		u := User{Email: "alice@example.com", PasswordHash: "hash"}
		assert.NoError(t, u.Validate())

		u.Email = "not-an-email"
		assert.Equal(t, ErrInvalidEmail, u.Validate())

		u.Email = "alice@example.com"
		u.PasswordHash = ""
		assert.Equal(t, ErrInvalidPassword, u.Validate())
	})
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.co"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail("plainstring"))
	assert.False(t, IsEmail("missing-dot@domain"))
}

func TestHashPassword(t *testing.T) {
	_, err := HashPassword("short")
	assert.Equal(t, ErrPasswordTooShort, err)

	hash, err := HashPassword("long-enough-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
}
