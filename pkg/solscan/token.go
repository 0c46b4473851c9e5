package solscan

import "context"

// GetTokenHolders returns the holders of an SPL token.
func (c *Client) GetTokenHolders(ctx context.Context, tokenAddress string, limit, offset int) (string, error) {
	if err := requireString("tokenAddress", tokenAddress); err != nil {
		return "", err
	}
	if err := requirePositive("limit", int64(limit)); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/token/holders",
		query("tokenAddress", tokenAddress),
		queryInt("limit", int64(limit)),
		queryInt("offset", int64(offset)),
	)
	return string(data), err
}

// GetTokenMeta returns metadata for an SPL token.
func (c *Client) GetTokenMeta(ctx context.Context, tokenAddress string) (string, error) {
	if err := requireString("tokenAddress", tokenAddress); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/token/meta", query("tokenAddress", tokenAddress))
	return string(data), err
}

// GetTokenList returns the token listing. Empty sortBy and direction fall
// back to DefaultSortBy and DefaultDirection; the limit is passed through
// as given, matching the API's own defaulting.
func (c *Client) GetTokenList(ctx context.Context, sortBy, direction string, limit, offset int) (string, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	if direction == "" {
		direction = DefaultDirection
	}
	data, err := c.Get(ctx, "/token/list",
		query("sortBy", sortBy),
		query("direction", direction),
		queryInt("limit", int64(limit)),
		queryInt("offset", int64(offset)),
	)
	return string(data), err
}
