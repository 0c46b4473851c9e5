package solscan

import (
	"context"
	"net/url"
)

// GetMarketTokenInfo returns market data for an SPL token.
func (c *Client) GetMarketTokenInfo(ctx context.Context, tokenAddress string) (string, error) {
	if err := requireString("tokenAddress", tokenAddress); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/market/token/"+url.PathEscape(tokenAddress))
	return string(data), err
}
