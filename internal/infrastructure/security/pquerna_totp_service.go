// File: internal/infrastructure/security/pquerna_totp_service.go
package security

import (
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/Daniell17/football-app/internal/domain/service"
)

// pquernaTOTPService implements the TOTPService using the pquerna/otp library.
type pquernaTOTPService struct {
	issuerName string
}

// NewPquernaTOTPService creates a new pquernaTOTPService.
// issuerName is shown in authenticator apps as the label prefix.
func NewPquernaTOTPService(issuerName string) service.TOTPService {
	if strings.TrimSpace(issuerName) == "" {
		issuerName = "FootballApp"
	}
	return &pquernaTOTPService{issuerName: issuerName}
}

var _ service.TOTPService = (*pquernaTOTPService)(nil)

// GenerateSecret creates a new TOTP secret.
func (s *pquernaTOTPService) GenerateSecret(accountName string) (string, string, error) {
	if strings.TrimSpace(accountName) == "" {
		return "", "", fmt.Errorf("accountName cannot be empty for TOTP secret generation")
	}
	if strings.Contains(accountName, ":") {
		return "", "", fmt.Errorf("accountName cannot contain a colon character")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuerName,
		AccountName: accountName,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
		SecretSize:  20,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to generate TOTP key: %w", err)
	}

	return key.Secret(), key.URL(), nil
}

// ValidateCode checks if the provided TOTP code is valid for the given secret.
func (s *pquernaTOTPService) ValidateCode(secretBase32 string, code string) (bool, error) {
	if strings.TrimSpace(secretBase32) == "" {
		return false, fmt.Errorf("secret cannot be empty")
	}
	if strings.TrimSpace(code) == "" {
		return false, fmt.Errorf("code cannot be empty")
	}

	valid, err := totp.ValidateCustom(code, secretBase32, time.Now().UTC(), totp.ValidateOpts{
		Period:    30,
		Skew:      1, // one period of clock drift on either side
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		return false, fmt.Errorf("error during TOTP code validation: %w", err)
	}

	return valid, nil
}
