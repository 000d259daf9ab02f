// File: internal/infrastructure/security/pquerna_totp_service_test.go
package security

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	svc := NewPquernaTOTPService("FootballApp")

	secret, url, err := svc.GenerateSecret("fan@club.example")
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.True(t, strings.HasPrefix(url, "otpauth://totp/FootballApp:fan@club.example"))
}

func TestGenerateSecretRejectsBadAccountNames(t *testing.T) {
	svc := NewPquernaTOTPService("FootballApp")

	_, _, err := svc.GenerateSecret("")
	assert.Error(t, err)

	_, _, err = svc.GenerateSecret("with:colon")
	assert.Error(t, err)
}

func TestValidateCode(t *testing.T) {
	svc := NewPquernaTOTPService("FootballApp")

	secret, _, err := svc.GenerateSecret("fan@club.example")
	require.NoError(t, err)

	code, err := totp.GenerateCodeCustom(secret, time.Now().UTC(), totp.ValidateOpts{
		Period:    30,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	require.NoError(t, err)

	valid, err := svc.ValidateCode(secret, code)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = svc.ValidateCode(secret, "000000")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidateCodeEmptyInputs(t *testing.T) {
	svc := NewPquernaTOTPService("FootballApp")

	_, err := svc.ValidateCode("", "123456")
	assert.Error(t, err)

	_, err = svc.ValidateCode("JBSWY3DPEHPK3PXP", "")
	assert.Error(t, err)
}
