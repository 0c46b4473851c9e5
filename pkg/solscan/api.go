package solscan

import "context"

// API defines the full set of Solscan operations, so callers can substitute
// a fake client in tests.
type API interface {
	GetLastBlock(ctx context.Context, limit int) (string, error)
	GetBlockTransactions(ctx context.Context, block int64, limit, offset int) (string, error)
	GetBlockInfo(ctx context.Context, block int64) (string, error)
	GetLastTransaction(ctx context.Context, limit int) (string, error)
	GetTransactionSignatureInfo(ctx context.Context, signature string) (string, error)
	GetAccountTokens(ctx context.Context, account string) (string, error)
	GetAccountTransactions(ctx context.Context, account, beforeHash string, limit int) (string, error)
	GetAccountStakeAccounts(ctx context.Context, account string) (string, error)
	GetAccountSplTransfers(ctx context.Context, account string, limit, offset int, fromTime, toTime int64) (string, error)
	GetAccountSolTransfers(ctx context.Context, account string, limit, offset int, fromTime, toTime int64) (string, error)
	GetAccountExportTransactions(ctx context.Context, account, exportType string, fromTime, toTime int64) (string, error)
	GetAccountInfo(ctx context.Context, account string) (string, error)
	GetTokenHolders(ctx context.Context, tokenAddress string, limit, offset int) (string, error)
	GetTokenMeta(ctx context.Context, tokenAddress string) (string, error)
	GetTokenList(ctx context.Context, sortBy, direction string, limit, offset int) (string, error)
	GetMarketTokenInfo(ctx context.Context, tokenAddress string) (string, error)
	GetChainInfo(ctx context.Context) (string, error)
}

var _ API = (*Client)(nil)
