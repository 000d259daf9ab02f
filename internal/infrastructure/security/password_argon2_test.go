// File: internal/infrastructure/security/password_argon2_test.go
package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniell17/football-app/internal/config"
)

func testHashParams() config.PasswordHashConfig {
	// Сниженные параметры, чтобы тесты не жгли память
	return config.PasswordHashConfig{
		Memory:      8 * 1024,
		Iterations:  1,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

func TestNewArgon2idPasswordServiceValidatesParams(t *testing.T) {
	_, err := NewArgon2idPasswordService(config.PasswordHashConfig{})
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	svc, err := NewArgon2idPasswordService(testHashParams())
	require.NoError(t, err)

	hash, err := svc.HashPassword("S3curePass!word")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	match, err := svc.CheckPasswordHash("S3curePass!word", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = svc.CheckPasswordHash("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestHashPasswordSaltsAreUnique(t *testing.T) {
	svc, err := NewArgon2idPasswordService(testHashParams())
	require.NoError(t, err)

	first, err := svc.HashPassword("same-password")
	require.NoError(t, err)
	second, err := svc.HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestCheckPasswordHashRejectsMalformed(t *testing.T) {
	svc, err := NewArgon2idPasswordService(testHashParams())
	require.NoError(t, err)

	for _, bad := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=8192,t=1,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=8192,t=1,p=2$c2FsdA$aGFzaA",
	} {
		_, err := svc.CheckPasswordHash("password", bad)
		assert.Error(t, err, "hash %q", bad)
	}
}

func TestDummyCheckDoesNotPanic(t *testing.T) {
	svc, err := NewArgon2idPasswordService(testHashParams())
	require.NoError(t, err)
	svc.DummyCheck()
}
