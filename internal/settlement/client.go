package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// Client is the HTTP implementation of Service.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL string, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
}

func (c *Client) MintBadge(ctx context.Context, walletAddress string, badgeID string) (MintReceipt, error) {
	payload := map[string]any{
		"wallet_address": walletAddress,
		"badge_id":       badgeID,
	}
	var receipt MintReceipt
	if err := c.post(ctx, "/v1/badges/mint", payload, &receipt); err != nil {
		return MintReceipt{}, err
	}
	return receipt, nil
}

func (c *Client) BurnPoints(ctx context.Context, walletAddress string, amount int64) (BurnReceipt, error) {
	payload := map[string]any{
		"wallet_address": walletAddress,
		"amount":         amount,
	}
	var receipt BurnReceipt
	if err := c.post(ctx, "/v1/points/burn", payload, &receipt); err != nil {
		return BurnReceipt{}, err
	}
	return receipt, nil
}

func (c *Client) CreatePointsMint(ctx context.Context, authority string) (MintInfo, error) {
	payload := map[string]any{"authority": authority}
	var info MintInfo
	if err := c.post(ctx, "/v1/points/mint", payload, &info); err != nil {
		return MintInfo{}, err
	}
	return info, nil
}

func (c *Client) LookupMint(ctx context.Context, mintAddress string) (MintInfo, error) {
	endpoint, err := url.JoinPath(c.BaseURL, "/v1/points/mint", url.PathEscape(mintAddress))
	if err != nil {
		return MintInfo{}, fmt.Errorf("build mint lookup url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return MintInfo{}, fmt.Errorf("build mint lookup request: %w", err)
	}
	c.setHeaders(req)

	var info MintInfo
	if err := c.do(req, &info); err != nil {
		return MintInfo{}, err
	}
	return info, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode settlement payload: %w", err)
	}

	endpoint, err := url.JoinPath(c.BaseURL, path)
	if err != nil {
		return fmt.Errorf("build settlement url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build settlement request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	return c.do(req, out)
}

func (c *Client) setHeaders(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("X-Service-Token", c.Token)
	}
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}
