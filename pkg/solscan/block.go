package solscan

import (
	"context"
	"fmt"
)

// GetLastBlock returns the most recent blocks. The limit is passed through
// to the API unvalidated.
func (c *Client) GetLastBlock(ctx context.Context, limit int) (string, error) {
	data, err := c.Get(ctx, "/block/last", queryInt("limit", int64(limit)))
	return string(data), err
}

// GetBlockTransactions returns transactions contained in a block.
func (c *Client) GetBlockTransactions(ctx context.Context, block int64, limit, offset int) (string, error) {
	if err := requirePositive("block", block); err != nil {
		return "", err
	}
	if err := requirePositive("limit", int64(limit)); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/block/transactions",
		queryInt("block", block),
		queryInt("limit", int64(limit)),
		queryInt("offset", int64(offset)),
	)
	return string(data), err
}

// GetBlockInfo returns detail for a single block.
func (c *Client) GetBlockInfo(ctx context.Context, block int64) (string, error) {
	if err := requirePositive("block", block); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, fmt.Sprintf("/block/%d", block))
	return string(data), err
}
