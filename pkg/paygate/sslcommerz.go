package paygate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Gateway starts a hosted payment session and returns the page the payer is
// redirected to. The gateway later calls back one of the three callback URLs
// with the transaction reference, a status code and the settled amount.
type Gateway interface {
	InitiateSession(ctx context.Context, req *SessionRequest) (string, error)
}

// SessionRequest is the initiation payload.
type SessionRequest struct {
	Amount     decimal.Decimal
	Currency   string
	TranRef    string
	SuccessURL string
	FailURL    string
	CancelURL  string

	CustomerName  string
	CustomerEmail string
	ProductName   string

	// Opaque values echoed back on the callback (message, anonymity flag).
	ValueA string
	ValueB string
	ValueC string
}

// SSLCommerzClient talks to the SSLCommerz session API.
type SSLCommerzClient struct {
	endpoint   string
	storeID    string
	storePass  string
	httpClient *http.Client
}

func NewSSLCommerzClient(endpoint, storeID, storePass string) *SSLCommerzClient {
	return &SSLCommerzClient{
		endpoint:  endpoint,
		storeID:   storeID,
		storePass: storePass,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type sessionResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

// InitiateSession registers the transaction with the gateway and returns the
// hosted payment page URL. There is no retry: a network failure surfaces
// immediately and the donor must resubmit.
func (c *SSLCommerzClient) InitiateSession(ctx context.Context, req *SessionRequest) (string, error) {
	form := url.Values{}
	form.Set("store_id", c.storeID)
	form.Set("store_passwd", c.storePass)
	form.Set("total_amount", req.Amount.StringFixed(2))
	form.Set("currency", req.Currency)
	form.Set("tran_id", req.TranRef)
	form.Set("success_url", req.SuccessURL)
	form.Set("fail_url", req.FailURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("cus_name", req.CustomerName)
	form.Set("cus_email", req.CustomerEmail)
	form.Set("product_name", req.ProductName)
	form.Set("product_category", "Donation")
	form.Set("product_profile", "non-physical-goods")
	form.Set("shipping_method", "NO")
	form.Set("value_a", req.ValueA)
	form.Set("value_b", req.ValueB)
	form.Set("value_c", req.ValueC)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	var res sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if res.GatewayPageURL == "" {
		reason := res.FailedReason
		if reason == "" {
			reason = res.Status
		}
		return "", fmt.Errorf("payment initiation failed: %s", reason)
	}

	return res.GatewayPageURL, nil
}
