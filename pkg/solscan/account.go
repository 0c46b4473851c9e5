package solscan

import (
	"context"
	"net/url"
)

// GetAccountTokens returns the token accounts held by an account.
func (c *Client) GetAccountTokens(ctx context.Context, account string) (string, error) {
	if err := requireString("account", account); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/account/tokens", query("account", account))
	return string(data), err
}

// GetAccountTransactions returns transactions involving an account.
// An empty beforeHash starts from the most recent transaction.
func (c *Client) GetAccountTransactions(ctx context.Context, account, beforeHash string, limit int) (string, error) {
	if err := requireString("account", account); err != nil {
		return "", err
	}
	if err := requirePositive("limit", int64(limit)); err != nil {
		return "", err
	}
	fragments := []string{query("account", account)}
	if beforeHash != "" {
		fragments = append(fragments, query("beforeHash", beforeHash))
	}
	fragments = append(fragments, queryInt("limit", int64(limit)))

	data, err := c.Get(ctx, "/account/transactions", fragments...)
	return string(data), err
}

// GetAccountStakeAccounts returns the stake accounts owned by an account.
func (c *Client) GetAccountStakeAccounts(ctx context.Context, account string) (string, error) {
	if err := requireString("account", account); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/account/stakeAccounts", query("account", account))
	return string(data), err
}

// GetAccountSplTransfers returns SPL token transfers for an account.
// fromTime and toTime are unix timestamps; zero omits the bound.
func (c *Client) GetAccountSplTransfers(ctx context.Context, account string, limit, offset int, fromTime, toTime int64) (string, error) {
	return c.accountTransfers(ctx, "/account/splTransfers", account, limit, offset, fromTime, toTime)
}

// GetAccountSolTransfers returns native SOL transfers for an account.
// fromTime and toTime are unix timestamps; zero omits the bound.
func (c *Client) GetAccountSolTransfers(ctx context.Context, account string, limit, offset int, fromTime, toTime int64) (string, error) {
	return c.accountTransfers(ctx, "/account/solTransfers", account, limit, offset, fromTime, toTime)
}

func (c *Client) accountTransfers(ctx context.Context, endpoint, account string, limit, offset int, fromTime, toTime int64) (string, error) {
	if err := requireString("account", account); err != nil {
		return "", err
	}
	if err := requirePositive("limit", int64(limit)); err != nil {
		return "", err
	}
	fragments := []string{
		query("account", account),
		queryInt("limit", int64(limit)),
		queryInt("offset", int64(offset)),
	}
	if fromTime != 0 {
		fragments = append(fragments, queryInt("fromTime", fromTime))
	}
	if toTime != 0 {
		fragments = append(fragments, queryInt("toTime", toTime))
	}

	data, err := c.Get(ctx, endpoint, fragments...)
	return string(data), err
}

// GetAccountExportTransactions returns a CSV export of an account's
// transactions. An empty exportType means DefaultExportType; fromTime and
// toTime are unix timestamps and zero omits the bound.
func (c *Client) GetAccountExportTransactions(ctx context.Context, account, exportType string, fromTime, toTime int64) (string, error) {
	if err := requireString("account", account); err != nil {
		return "", err
	}
	if exportType == "" {
		exportType = DefaultExportType
	}
	fragments := []string{
		query("account", account),
		query("type", exportType),
	}
	if fromTime != 0 {
		fragments = append(fragments, queryInt("fromTime", fromTime))
	}
	if toTime != 0 {
		fragments = append(fragments, queryInt("toTime", toTime))
	}

	data, err := c.Get(ctx, "/account/exportTransactions", fragments...)
	return string(data), err
}

// GetAccountInfo returns detail for an account address.
func (c *Client) GetAccountInfo(ctx context.Context, account string) (string, error) {
	if err := requireString("account", account); err != nil {
		return "", err
	}
	data, err := c.Get(ctx, "/account/"+url.PathEscape(account))
	return string(data), err
}
