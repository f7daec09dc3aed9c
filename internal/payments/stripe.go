// Package payments talks to the payment provider's connected-accounts API.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultAPIURL = "https://api.stripe.com"

type Client struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a connected-accounts client. apiURL is overridable so
// staging can point at a Stripe twin instead of the live API.
func NewClient(apiURL, secretKey string, logger *zap.Logger) *Client {
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	return &Client{
		apiURL:    apiURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type deletedAccount struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// DeleteAccount removes a connected account (DELETE /v1/accounts/{id}).
// Deleting an account is irreversible; callers run it only after their own
// records are gone.
func (c *Client) DeleteAccount(ctx context.Context, accountID string) error {
	if accountID == "" {
		return fmt.Errorf("account id is required")
	}

	url := c.apiURL + "/v1/accounts/" + accountID
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete connected account %s: %w", accountID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("failed to delete connected account %s: %s", accountID, apiErr.Error.Message)
		}
		return fmt.Errorf("failed to delete connected account %s: status %d", accountID, resp.StatusCode)
	}

	var deleted deletedAccount
	if err := json.Unmarshal(body, &deleted); err != nil {
		return fmt.Errorf("unexpected response deleting account %s: %w", accountID, err)
	}
	if !deleted.Deleted {
		return fmt.Errorf("connected account %s was not deleted", accountID)
	}

	c.logger.Info("connected account deleted", zap.String("account_id", accountID))
	return nil
}
