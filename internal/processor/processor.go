// Package processor talks to the payment processor's REST API. Only the
// payment-intent lifecycle is used: create an intent, read its status back.
package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ekarpova/taskhub/pkg/clients"
	"go.uber.org/zap"
)

var ErrProcessor = errors.New("payment processor request failed")

// Intent statuses the settlement logic reacts to. Anything else is treated
// as in-flight.
const (
	IntentSucceeded = "succeeded"
	IntentCanceled  = "canceled"
)

type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
}

type Client struct {
	url    string
	apiKey string
	client clients.HTTPClientI
}

func New(apiURL, apiKey string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    apiURL,
		apiKey: apiKey,
		client: client,
	}
}

// CreateIntent registers a charge for amount in minor units (cents) and
// returns the intent with its client-side confirmation secret.
func (c *Client) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error) {
	form := url.Values{}
	form.Set("amount", fmt.Sprintf("%d", amountMinorUnits))
	form.Set("currency", currency)
	for key, value := range metadata {
		form.Set("metadata["+key+"]", value)
	}

	statusCode, respBody, err := c.client.PostForm(c.url+"/payment_intents", form, c.headers())
	if err != nil {
		zap.L().Error("can't create payment intent", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrProcessor, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("payment intent creation rejected", zap.Int("status", statusCode))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProcessor, statusCode)
	}

	var intent Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessor, err)
	}
	return &intent, nil
}

// RetrieveIntent re-reads the intent from the processor. The returned status
// is the source of truth for settlement, never the caller's word.
func (c *Client) RetrieveIntent(ctx context.Context, intentID string) (*Intent, error) {
	statusCode, respBody, _, err := c.client.Get(c.url+"/payment_intents/"+intentID, c.headers())
	if err != nil {
		zap.L().Error("can't retrieve payment intent", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrProcessor, err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProcessor, statusCode)
	}

	var intent Intent
	if err := json.Unmarshal(respBody, &intent); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProcessor, err)
	}
	return &intent, nil
}

func (c *Client) headers() http.Header {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.apiKey)
	return headers
}
