package solscan

import "context"

// GetChainInfo returns chain-wide statistics.
func (c *Client) GetChainInfo(ctx context.Context) (string, error) {
	data, err := c.Get(ctx, "/chaininfo")
	return string(data), err
}
