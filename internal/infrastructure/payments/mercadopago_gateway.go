package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates hosted checkout preferences for credit payments.
// The preference's init point is the redirect URL handed back to the browser.

type MercadoPagoGateway struct {
	client   preference.Client
	currency string
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:   preference.NewClient(cfg),
		currency: getenvDefault("MERCADOPAGO_CURRENCY", "ILS"),
	}, nil
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, quoteID, title string, price float64) (string, error) {
	if g != nil && g.mockMode {
		url := fmt.Sprintf("https://payment.local/checkout?quote_id=%s&amount=%s", quoteID, floatString(price))
		log.Printf("[payment][gateway] mock checkout quote_id=%s redirect=%s", quoteID, url)
		return url, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] checkout create start quote_id=%s amount=%.2f", quoteID, price)

	req := preference.Request{
		ExternalReference: quoteID,
		Items: []preference.ItemRequest{
			{
				ID:         quoteID,
				Title:      title,
				Quantity:   1,
				CurrencyID: g.currency,
				UnitPrice:  price,
			},
		},
	}
	if successURL := strings.TrimSpace(os.Getenv("PAYMENT_SUCCESS_URL")); successURL != "" {
		req.BackURLs = &preference.BackURLsRequest{
			Success: successURL,
			Pending: successURL,
			Failure: strings.TrimSpace(getenvDefault("PAYMENT_FAILURE_URL", successURL)),
		}
		req.AutoReturn = "approved"
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed quote_id=%s err=%v", quoteID, err)
		return "", err
	}

	redirect := resp.InitPoint
	if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") && resp.SandboxInitPoint != "" {
		redirect = resp.SandboxInitPoint
	}
	log.Printf("[payment][gateway] checkout create success quote_id=%s preference_id=%s", quoteID, resp.ID)

	return redirect, nil
}

func floatString(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
