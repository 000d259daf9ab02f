// File: internal/infrastructure/payment/paysera_gateway_test.go
package payment

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniell17/football-app/internal/config"
	"github.com/Daniell17/football-app/internal/domain/service"
)

func testGateway(t *testing.T) *payseraGateway {
	t.Helper()
	gw, err := NewPayseraGateway(config.PaymentsConfig{
		ProjectID:    "123456",
		SignPassword: "test-sign-password",
		GatewayURL:   "https://bank.paysera.com/pay/",
		AcceptURL:    "https://club.example/accept",
		CancelURL:    "https://club.example/cancel",
		CallbackURL:  "https://club.example/callback",
		TestMode:     true,
	})
	require.NoError(t, err)
	return gw.(*payseraGateway)
}

func TestNewPayseraGatewayRequiresCredentials(t *testing.T) {
	_, err := NewPayseraGateway(config.PaymentsConfig{})
	assert.Error(t, err)
}

func TestBuildRedirect(t *testing.T) {
	gw := testGateway(t)

	redirect, err := gw.BuildRedirect(service.PaymentRedirectRequest{
		OrderID:  "order-42",
		Amount:   1500,
		Currency: "EUR",
		Email:    "fan@club.example",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(redirect, "https://bank.paysera.com/pay/?data="))

	parsed, err := url.Parse(redirect)
	require.NoError(t, err)
	data := parsed.Query().Get("data")
	sign := parsed.Query().Get("sign")
	require.NotEmpty(t, data)
	require.NotEmpty(t, sign)

	// Подпись redirect проверяется той же схемой, что и callback
	assert.True(t, gw.Verify(data, sign))

	params, err := gw.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "123456", params["projectid"])
	assert.Equal(t, "order-42", params["orderid"])
	assert.Equal(t, "1500", params["amount"])
	assert.Equal(t, "EUR", params["currency"])
	assert.Equal(t, "1", params["test"])
	assert.Equal(t, "fan@club.example", params["p_email"])
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	gw := testGateway(t)

	data := base64.StdEncoding.EncodeToString([]byte("orderid=order-1&status=1"))
	sign := gw.sign(data)
	assert.True(t, gw.Verify(data, sign))

	tampered := base64.StdEncoding.EncodeToString([]byte("orderid=order-2&status=1"))
	assert.False(t, gw.Verify(tampered, sign))
	assert.False(t, gw.Verify(data, "deadbeef"))
	assert.False(t, gw.Verify(data, ""))
}

func TestDecodeKeepsEqualSignsInValues(t *testing.T) {
	gw := testGateway(t)

	raw := "orderid=order-1&status=1&payment=eyJhbGciOiJIUzI1NiJ9%3D%3D"
	data := base64.StdEncoding.EncodeToString([]byte(raw))

	params, err := gw.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "order-1", params["orderid"])
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9==", params["payment"])
}

func TestDecodeURLSafeBase64(t *testing.T) {
	gw := testGateway(t)

	// Payload, чье std-base64 представление содержит + и /
	raw := "orderid=order-1&note=" + url.QueryEscape("šaltinis>?~")
	data := base64.URLEncoding.EncodeToString([]byte(raw))

	params, err := gw.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "order-1", params["orderid"])
}

func TestDecodeRejectsGarbage(t *testing.T) {
	gw := testGateway(t)

	_, err := gw.Decode("!!!not-base64!!!")
	assert.Error(t, err)
}
