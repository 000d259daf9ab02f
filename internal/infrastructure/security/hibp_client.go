// File: internal/infrastructure/security/hibp_client.go
package security

import (
	"bufio"
	"context"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/config"
	"github.com/Daniell17/football-app/internal/domain/service"
)

const hibpRangeURL = "https://api.pwnedpasswords.com/range/%s"

// HIBPClient checks passwords against the Pwned Passwords range API using
// k-anonymity: only the first five hex characters of the SHA-1 ever leave
// the process.
type HIBPClient struct {
	httpClient *http.Client
	userAgent  string
	enabled    bool
	logger     *zap.Logger
}

// NewHIBPClient creates a new HIBP client.
func NewHIBPClient(cfg config.HIBPConfig, logger *zap.Logger) service.BreachChecker {
	return &HIBPClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		userAgent:  cfg.UserAgent,
		enabled:    cfg.Enabled,
		logger:     logger.Named("hibp_client"),
	}
}

var _ service.BreachChecker = (*HIBPClient)(nil)

// IsPwned reports whether the password appears in the breach corpus. Callers
// must treat (false, err) as "not pwned": an unreachable checker never blocks
// registration or password changes.
func (c *HIBPClient) IsPwned(ctx context.Context, password string) (bool, error) {
	if !c.enabled {
		return false, nil
	}
	if password == "" {
		return false, fmt.Errorf("password cannot be empty")
	}

	h := sha1.New()
	if _, err := io.WriteString(h, password); err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	hash := fmt.Sprintf("%X", h.Sum(nil))

	prefix := hash[:5]
	suffix := hash[5:]

	apiURL := fmt.Sprintf(hibpRangeURL, prefix)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create HIBP request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("HIBP API request failed", zap.Error(err))
		return false, fmt.Errorf("HIBP API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("HIBP API returned non-OK status", zap.Int("status_code", resp.StatusCode))
		return false, fmt.Errorf("HIBP API returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Split(line, ":")
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(parts[0], suffix) {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		c.logger.Warn("Error reading HIBP API response body", zap.Error(err))
		return false, fmt.Errorf("failed to read HIBP response: %w", err)
	}

	return false, nil
}
