// File: internal/infrastructure/payment/paysera_gateway.go
package payment

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/Daniell17/football-app/internal/config"
	"github.com/Daniell17/football-app/internal/domain/service"
)

// Параметры callback, которые присылает шлюз
const (
	CallbackParamOrderID = "orderid"
	CallbackParamStatus  = "status"

	// StatusPaid is the processor status code for a successful payment.
	StatusPaid = "1"
)

// payseraGateway implements the Paysera request signing scheme: the ordered
// query string is base64-encoded into `data` and signed with
// md5(data + signPassword) transported as `sign`.
type payseraGateway struct {
	projectID    string
	signPassword string
	gatewayURL   string
	acceptURL    string
	cancelURL    string
	callbackURL  string
	testMode     bool
}

// NewPayseraGateway creates a PaymentGateway for the configured project.
func NewPayseraGateway(cfg config.PaymentsConfig) (service.PaymentGateway, error) {
	if cfg.ProjectID == "" || cfg.SignPassword == "" {
		return nil, errors.New("paysera project id and sign password must be configured")
	}
	return &payseraGateway{
		projectID:    cfg.ProjectID,
		signPassword: cfg.SignPassword,
		gatewayURL:   cfg.GatewayURL,
		acceptURL:    cfg.AcceptURL,
		cancelURL:    cfg.CancelURL,
		callbackURL:  cfg.CallbackURL,
		testMode:     cfg.TestMode,
	}, nil
}

var _ service.PaymentGateway = (*payseraGateway)(nil)

func (g *payseraGateway) BuildRedirect(req service.PaymentRedirectRequest) (string, error) {
	if req.OrderID == "" {
		return "", errors.New("order id is required")
	}

	test := "0"
	if g.testMode {
		test = "1"
	}

	// Канонический порядок параметров фиксирован; значения percent-encoded
	pairs := [][2]string{
		{"projectid", g.projectID},
		{"orderid", req.OrderID},
		{"accepturl", g.acceptURL},
		{"cancelurl", g.cancelURL},
		{"callbackurl", g.callbackURL},
		{"amount", strconv.FormatInt(req.Amount, 10)},
		{"currency", req.Currency},
		{"test", test},
	}
	if req.Email != "" {
		pairs = append(pairs, [2]string{"p_email", req.Email})
	}

	parts := make([]string, 0, len(pairs))
	for _, kv := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%s", kv[0], url.QueryEscape(kv[1])))
	}

	data := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, "&")))
	sign := g.sign(data)

	return fmt.Sprintf("%s?data=%s&sign=%s",
		g.gatewayURL, url.QueryEscape(data), url.QueryEscape(sign)), nil
}

func (g *payseraGateway) Verify(encodedData, signature string) bool {
	expected := g.sign(encodedData)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// Decode base64-decodes the payload and parses it as a query string. Using
// the query parser keeps values containing `=` intact, which naive
// split-on-equals parsing would corrupt.
func (g *payseraGateway) Decode(encodedData string) (map[string]string, error) {
	decoded, err := base64.StdEncoding.DecodeString(encodedData)
	if err != nil {
		// The gateway may emit URL-safe base64 in callback parameters.
		decoded, err = base64.URLEncoding.DecodeString(encodedData)
		if err != nil {
			return nil, fmt.Errorf("failed to decode payload: %w", err)
		}
	}

	values, err := url.ParseQuery(string(decoded))
	if err != nil {
		return nil, fmt.Errorf("failed to parse payload: %w", err)
	}

	params := make(map[string]string, len(values))
	for key := range values {
		params[key] = values.Get(key)
	}
	return params, nil
}

func (g *payseraGateway) sign(data string) string {
	sum := md5.Sum([]byte(data + g.signPassword))
	return hex.EncodeToString(sum[:])
}
