package solscan

import (
	"context"
	"net/url"
)

// GetLastTransaction returns the most recent transactions.
func (c *Client) GetLastTransaction(ctx context.Context, limit int) (string, error) {
	if err := requirePositive("limit", int64(limit)); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/transaction/last", queryInt("limit", int64(limit)))
	return string(data), err
}

// GetTransactionSignatureInfo returns detail for one transaction signature.
func (c *Client) GetTransactionSignatureInfo(ctx context.Context, signature string) (string, error) {
	if err := requireString("signature", signature); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/transaction/"+url.PathEscape(signature))
	return string(data), err
}
