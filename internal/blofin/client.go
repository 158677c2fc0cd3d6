package blofin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"bf-tradehook/internal/config"
	"bf-tradehook/internal/model"
)

// ErrMissingCredentials is returned before any network activity when the
// BloFin key, secret or passphrase is absent.
var ErrMissingCredentials = errors.New("blofin api credentials are not configured")

const requestTimeout = 10 * time.Second

// Client submits orders to the BloFin REST trading API. One attempt per
// call; retry policy belongs to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	passphrase string
	signer     *Signer
	httpClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		baseURL:    cfg.BlofinBaseURL,
		apiKey:     cfg.BlofinKey,
		passphrase: cfg.BlofinPassphrase,
		signer:     NewSigner(cfg.BlofinSecret),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Close wipes the signing secret.
func (c *Client) Close() {
	c.signer.Wipe()
}

// PlaceOrder signs and submits a single order. The returned result always
// carries whatever status and body were observed; err is non-nil for
// configuration errors, transport failures and non-2xx exchange responses,
// with enough context in its message to diagnose without re-querying.
func (c *Client) PlaceOrder(ctx context.Context, instr model.TradeInstruction) (model.ExchangeOrderResult, error) {
	var res model.ExchangeOrderResult
	if c.apiKey == "" || c.passphrase == "" || !c.signer.hasSecret() {
		res.ErrorMessage = ErrMissingCredentials.Error()
		return res, ErrMissingCredentials
	}

	body, err := buildOrderBody(instr)
	if err != nil {
		res.ErrorMessage = err.Error()
		return res, fmt.Errorf("encode order body: %w", err)
	}

	signature, timestamp, nonce := c.signer.Sign(http.MethodPost, orderPath, body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+orderPath, bytes.NewReader(body))
	if err != nil {
		res.ErrorMessage = err.Error()
		return res, err
	}
	req.Header.Set("ACCESS-KEY", c.apiKey)
	req.Header.Set("ACCESS-SIGN", signature)
	req.Header.Set("ACCESS-TIMESTAMP", timestamp)
	req.Header.Set("ACCESS-NONCE", nonce)
	req.Header.Set("ACCESS-PASSPHRASE", c.passphrase)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		res.ErrorMessage = err.Error()
		return res, fmt.Errorf("blofin request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		res.HTTPStatus = resp.StatusCode
		res.ErrorMessage = err.Error()
		return res, fmt.Errorf("blofin response read failed: %w", err)
	}

	res.HTTPStatus = resp.StatusCode
	res.Body = classifyBody(raw)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		res.ErrorMessage = fmt.Sprintf("blofin order failed: %d %s", resp.StatusCode, string(raw))
		return res, errors.New(res.ErrorMessage)
	}

	res.OK = true
	return res, nil
}

// classifyBody parses the exchange response as JSON; when that fails the raw
// text is kept under a marker key so no information is lost.
func classifyBody(raw []byte) any {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return map[string]string{"raw_text": string(raw)}
	}
	return parsed
}
