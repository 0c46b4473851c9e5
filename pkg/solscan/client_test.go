package solscan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmperLab/solscan-go/pkg/rest"
)

const testBody = `{"data":[]}`

type recorder struct {
	hits  int
	path  string
	query string
}

func newTestClient(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.hits++
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewClientWithConfig("test-key", ClientConfig{BaseURL: server.URL}), rec
}

func TestEndpointURLs(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		call      func(c *Client) (string, error)
		wantPath  string
		wantQuery string
	}{
		{
			name:      "GetLastBlock",
			call:      func(c *Client) (string, error) { return c.GetLastBlock(ctx, 10) },
			wantPath:  "/block/last",
			wantQuery: "limit=10",
		},
		{
			name:      "GetBlockTransactions",
			call:      func(c *Client) (string, error) { return c.GetBlockTransactions(ctx, 100, 10, 0) },
			wantPath:  "/block/transactions",
			wantQuery: "block=100&limit=10&offset=0",
		},
		{
			name:     "GetBlockInfo",
			call:     func(c *Client) (string, error) { return c.GetBlockInfo(ctx, 100) },
			wantPath: "/block/100",
		},
		{
			name:      "GetLastTransaction",
			call:      func(c *Client) (string, error) { return c.GetLastTransaction(ctx, 10) },
			wantPath:  "/transaction/last",
			wantQuery: "limit=10",
		},
		{
			name:     "GetTransactionSignatureInfo",
			call:     func(c *Client) (string, error) { return c.GetTransactionSignatureInfo(ctx, "5sig") },
			wantPath: "/transaction/5sig",
		},
		{
			name:      "GetAccountTokens",
			call:      func(c *Client) (string, error) { return c.GetAccountTokens(ctx, "Acc1") },
			wantPath:  "/account/tokens",
			wantQuery: "account=Acc1",
		},
		{
			name:      "GetAccountTransactions with beforeHash",
			call:      func(c *Client) (string, error) { return c.GetAccountTransactions(ctx, "Acc1", "hash9", 20) },
			wantPath:  "/account/transactions",
			wantQuery: "account=Acc1&beforeHash=hash9&limit=20",
		},
		{
			name:      "GetAccountStakeAccounts",
			call:      func(c *Client) (string, error) { return c.GetAccountStakeAccounts(ctx, "Acc1") },
			wantPath:  "/account/stakeAccounts",
			wantQuery: "account=Acc1",
		},
		{
			name: "GetAccountSplTransfers full range",
			call: func(c *Client) (string, error) {
				return c.GetAccountSplTransfers(ctx, "Acc1", 10, 0, 100, 200)
			},
			wantPath:  "/account/splTransfers",
			wantQuery: "account=Acc1&limit=10&offset=0&fromTime=100&toTime=200",
		},
		{
			name: "GetAccountSolTransfers no range",
			call: func(c *Client) (string, error) {
				return c.GetAccountSolTransfers(ctx, "Acc1", 10, 5, 0, 0)
			},
			wantPath:  "/account/solTransfers",
			wantQuery: "account=Acc1&limit=10&offset=5",
		},
		{
			name: "GetAccountExportTransactions default type",
			call: func(c *Client) (string, error) {
				return c.GetAccountExportTransactions(ctx, "Acc1", "", 0, 0)
			},
			wantPath:  "/account/exportTransactions",
			wantQuery: "account=Acc1&type=all",
		},
		{
			name: "GetAccountExportTransactions with range",
			call: func(c *Client) (string, error) {
				return c.GetAccountExportTransactions(ctx, "Acc1", "soltransfer", 100, 200)
			},
			wantPath:  "/account/exportTransactions",
			wantQuery: "account=Acc1&type=soltransfer&fromTime=100&toTime=200",
		},
		{
			name:     "GetAccountInfo",
			call:     func(c *Client) (string, error) { return c.GetAccountInfo(ctx, "Acc1") },
			wantPath: "/account/Acc1",
		},
		{
			name:      "GetTokenHolders",
			call:      func(c *Client) (string, error) { return c.GetTokenHolders(ctx, "Tok1", 10, 0) },
			wantPath:  "/token/holders",
			wantQuery: "tokenAddress=Tok1&limit=10&offset=0",
		},
		{
			name:      "GetTokenMeta",
			call:      func(c *Client) (string, error) { return c.GetTokenMeta(ctx, "Tok1") },
			wantPath:  "/token/meta",
			wantQuery: "tokenAddress=Tok1",
		},
		{
			name:      "GetTokenList defaults",
			call:      func(c *Client) (string, error) { return c.GetTokenList(ctx, "", "", 10, 0) },
			wantPath:  "/token/list",
			wantQuery: "sortBy=market_cap&direction=desc&limit=10&offset=0",
		},
		{
			name:      "GetTokenList explicit sort",
			call:      func(c *Client) (string, error) { return c.GetTokenList(ctx, "holder", "asc", 5, 10) },
			wantPath:  "/token/list",
			wantQuery: "sortBy=holder&direction=asc&limit=5&offset=10",
		},
		{
			name:     "GetMarketTokenInfo",
			call:     func(c *Client) (string, error) { return c.GetMarketTokenInfo(ctx, "Tok1") },
			wantPath: "/market/token/Tok1",
		},
		{
			name:     "GetChainInfo",
			call:     func(c *Client) (string, error) { return c.GetChainInfo(ctx) },
			wantPath: "/chaininfo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, testBody)
			body, err := tt.call(client)
			require.NoError(t, err)
			assert.Equal(t, testBody, body)
			assert.Equal(t, 1, rec.hits)
			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, tt.wantQuery, rec.query)
		})
	}
}

func TestValidationFailsBeforeNetwork(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func(c *Client) (string, error)
		wantErr error
	}{
		{"empty signature", func(c *Client) (string, error) { return c.GetTransactionSignatureInfo(ctx, "") }, ErrMissingParam},
		{"empty account tokens", func(c *Client) (string, error) { return c.GetAccountTokens(ctx, "") }, ErrMissingParam},
		{"empty account transactions", func(c *Client) (string, error) { return c.GetAccountTransactions(ctx, "", "", 10) }, ErrMissingParam},
		{"empty account stake", func(c *Client) (string, error) { return c.GetAccountStakeAccounts(ctx, "") }, ErrMissingParam},
		{"empty account spl", func(c *Client) (string, error) { return c.GetAccountSplTransfers(ctx, "", 10, 0, 0, 0) }, ErrMissingParam},
		{"empty account sol", func(c *Client) (string, error) { return c.GetAccountSolTransfers(ctx, "", 10, 0, 0, 0) }, ErrMissingParam},
		{"empty account export", func(c *Client) (string, error) { return c.GetAccountExportTransactions(ctx, "", "", 0, 0) }, ErrMissingParam},
		{"empty account info", func(c *Client) (string, error) { return c.GetAccountInfo(ctx, "") }, ErrMissingParam},
		{"empty token holders", func(c *Client) (string, error) { return c.GetTokenHolders(ctx, "", 10, 0) }, ErrMissingParam},
		{"empty token meta", func(c *Client) (string, error) { return c.GetTokenMeta(ctx, "") }, ErrMissingParam},
		{"empty market token", func(c *Client) (string, error) { return c.GetMarketTokenInfo(ctx, "") }, ErrMissingParam},

		{"block zero", func(c *Client) (string, error) { return c.GetBlockInfo(ctx, 0) }, ErrInvalidBound},
		{"block negative", func(c *Client) (string, error) { return c.GetBlockInfo(ctx, -5) }, ErrInvalidBound},
		{"block txs zero block", func(c *Client) (string, error) { return c.GetBlockTransactions(ctx, 0, 10, 0) }, ErrInvalidBound},
		{"block txs zero limit", func(c *Client) (string, error) { return c.GetBlockTransactions(ctx, 100, 0, 0) }, ErrInvalidBound},
		{"last tx zero limit", func(c *Client) (string, error) { return c.GetLastTransaction(ctx, 0) }, ErrInvalidBound},
		{"account txs zero limit", func(c *Client) (string, error) { return c.GetAccountTransactions(ctx, "Acc1", "", 0) }, ErrInvalidBound},
		{"account spl negative limit", func(c *Client) (string, error) { return c.GetAccountSplTransfers(ctx, "Acc1", -1, 0, 0, 0) }, ErrInvalidBound},
		{"account sol zero limit", func(c *Client) (string, error) { return c.GetAccountSolTransfers(ctx, "Acc1", 0, 0, 0, 0) }, ErrInvalidBound},
		{"token holders zero limit", func(c *Client) (string, error) { return c.GetTokenHolders(ctx, "Tok1", 0, 0) }, ErrInvalidBound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, rec := newTestClient(t, http.StatusOK, testBody)
			body, err := tt.call(client)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, body)
			assert.Zero(t, rec.hits, "validation failures must not reach the network")
		})
	}
}

// GetLastBlock and GetTokenList pass their limit through unchecked.
func TestUnvalidatedLimitsPassThrough(t *testing.T) {
	ctx := context.Background()

	t.Run("GetLastBlock", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, testBody)
		_, err := client.GetLastBlock(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, rec.hits)
		assert.Equal(t, "limit=0", rec.query)
	})

	t.Run("GetTokenList", func(t *testing.T) {
		client, rec := newTestClient(t, http.StatusOK, testBody)
		_, err := client.GetTokenList(ctx, "", "", -3, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, rec.hits)
		assert.Equal(t, "sortBy=market_cap&direction=desc&limit=-3&offset=0", rec.query)
	})
}

func TestBeforeHashOmittedWhenEmpty(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, testBody)
	_, err := client.GetAccountTransactions(context.Background(), "ABC", "", 5)
	require.NoError(t, err)
	assert.Equal(t, "account=ABC&limit=5", rec.query)
	assert.NotContains(t, rec.query, "beforeHash")
}

func TestQueryValuesPercentEncoded(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, testBody)
	_, err := client.GetAccountTokens(context.Background(), "a b&c")
	require.NoError(t, err)
	assert.Equal(t, "account=a+b%26c", rec.query)
}

func TestServerErrorReturnsBody(t *testing.T) {
	const errBody = `{"status":500,"error":"internal"}`
	client, rec := newTestClient(t, http.StatusInternalServerError, errBody)

	body, err := client.GetChainInfo(context.Background())

	require.Error(t, err)
	var statusErr *rest.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, 1, rec.hits)
	assert.Equal(t, errBody, body, "the body still comes back on HTTP failure")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("key")
	assert.Equal(t, DefaultBaseURL, client.BaseURL())
}
