package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/AmperLab/solscan-go/internal/config"
	"github.com/AmperLab/solscan-go/internal/logger"
	"github.com/AmperLab/solscan-go/pkg/solscan"
)

var (
	cfgPath string
	apiKey  string
	debug   bool

	client *solscan.Client
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "solscan",
		Short:        "Query the Solscan Pro API",
		Long:         "Query the Solscan Pro API. Responses are printed verbatim as returned by the API.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to yaml config file")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "Solscan API key (overrides config file and SOLSCAN_API_KEY)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newChainInfoCmd(),
		newBlockCmd(),
		newTxCmd(),
		newAccountCmd(),
		newTokenCmd(),
	)
	return root
}

func setup() error {
	// .env is optional; real env vars win over file values inside godotenv.
	_ = godotenv.Load()

	var cfg *config.Config
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}
	if apiKey != "" {
		cfg.Solscan.APIKey = apiKey
	}
	if cfg.Solscan.APIKey == "" {
		return errors.New("no API key: set --api-key, SOLSCAN_API_KEY or solscan.api_key in the config file")
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if debug {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})

	client = solscan.NewClientWithConfig(cfg.Solscan.APIKey, solscan.ClientConfig{
		BaseURL:        cfg.Solscan.BaseURL,
		RequestTimeout: cfg.Solscan.RequestTimeout.Std(),
	})
	return nil
}

// emit prints whatever body arrived, then propagates the error so HTTP
// failures still set a non-zero exit code.
func emit(body string, err error) error {
	if body != "" {
		fmt.Println(body)
	}
	return err
}

func parseBlock(arg string) (int64, error) {
	block, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block number %q", arg)
	}
	return block, nil
}

func newChainInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain-info",
		Short: "Chain-wide statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetChainInfo(cmd.Context()))
		},
	}
}

func newBlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Block queries",
	}

	var lastLimit int
	last := &cobra.Command{
		Use:   "last",
		Short: "Most recent blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetLastBlock(cmd.Context(), lastLimit))
		},
	}
	last.Flags().IntVar(&lastLimit, "limit", solscan.DefaultLimit, "number of blocks")

	var txsLimit, txsOffset int
	txs := &cobra.Command{
		Use:   "txs <block>",
		Short: "Transactions in a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := parseBlock(args[0])
			if err != nil {
				return err
			}
			return emit(client.GetBlockTransactions(cmd.Context(), block, txsLimit, txsOffset))
		},
	}
	txs.Flags().IntVar(&txsLimit, "limit", solscan.DefaultLimit, "number of transactions")
	txs.Flags().IntVar(&txsOffset, "offset", 0, "pagination offset")

	info := &cobra.Command{
		Use:   "info <block>",
		Short: "Detail for one block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := parseBlock(args[0])
			if err != nil {
				return err
			}
			return emit(client.GetBlockInfo(cmd.Context(), block))
		},
	}

	cmd.AddCommand(last, txs, info)
	return cmd
}

func newTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction queries",
	}

	var lastLimit int
	last := &cobra.Command{
		Use:   "last",
		Short: "Most recent transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetLastTransaction(cmd.Context(), lastLimit))
		},
	}
	last.Flags().IntVar(&lastLimit, "limit", solscan.DefaultLimit, "number of transactions")

	info := &cobra.Command{
		Use:   "info <signature>",
		Short: "Detail for one transaction signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetTransactionSignatureInfo(cmd.Context(), args[0]))
		},
	}

	cmd.AddCommand(last, info)
	return cmd
}

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account queries",
	}

	tokens := &cobra.Command{
		Use:   "tokens <account>",
		Short: "Token accounts held by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetAccountTokens(cmd.Context(), args[0]))
		},
	}

	var txsBefore string
	var txsLimit int
	txs := &cobra.Command{
		Use:   "txs <account>",
		Short: "Transactions involving an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetAccountTransactions(cmd.Context(), args[0], txsBefore, txsLimit))
		},
	}
	txs.Flags().StringVar(&txsBefore, "before", "", "paginate from this transaction hash backwards")
	txs.Flags().IntVar(&txsLimit, "limit", solscan.DefaultLimit, "number of transactions")

	stake := &cobra.Command{
		Use:   "stake-accounts <account>",
		Short: "Stake accounts owned by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetAccountStakeAccounts(cmd.Context(), args[0]))
		},
	}

	spl := newTransfersCmd("spl-transfers", "SPL token transfers for an account",
		func(cmd *cobra.Command, account string, limit, offset int, fromTime, toTime int64) error {
			return emit(client.GetAccountSplTransfers(cmd.Context(), account, limit, offset, fromTime, toTime))
		})

	sol := newTransfersCmd("sol-transfers", "Native SOL transfers for an account",
		func(cmd *cobra.Command, account string, limit, offset int, fromTime, toTime int64) error {
			return emit(client.GetAccountSolTransfers(cmd.Context(), account, limit, offset, fromTime, toTime))
		})

	var exportType string
	var exportFrom, exportTo int64
	export := &cobra.Command{
		Use:   "export <account>",
		Short: "CSV export of an account's transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetAccountExportTransactions(cmd.Context(), args[0], exportType, exportFrom, exportTo))
		},
	}
	export.Flags().StringVar(&exportType, "type", solscan.DefaultExportType, "export type")
	export.Flags().Int64Var(&exportFrom, "from-time", 0, "start unix timestamp")
	export.Flags().Int64Var(&exportTo, "to-time", 0, "end unix timestamp")

	info := &cobra.Command{
		Use:   "info <account>",
		Short: "Detail for an account address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetAccountInfo(cmd.Context(), args[0]))
		},
	}

	cmd.AddCommand(tokens, txs, stake, spl, sol, export, info)
	return cmd
}

func newTransfersCmd(use, short string, run func(cmd *cobra.Command, account string, limit, offset int, fromTime, toTime int64) error) *cobra.Command {
	var limit, offset int
	var fromTime, toTime int64
	cmd := &cobra.Command{
		Use:   use + " <account>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], limit, offset, fromTime, toTime)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", solscan.DefaultLimit, "number of transfers")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	cmd.Flags().Int64Var(&fromTime, "from-time", 0, "start unix timestamp")
	cmd.Flags().Int64Var(&toTime, "to-time", 0, "end unix timestamp")
	return cmd
}

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Token queries",
	}

	var holdersLimit, holdersOffset int
	holders := &cobra.Command{
		Use:   "holders <token-address>",
		Short: "Holders of an SPL token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetTokenHolders(cmd.Context(), args[0], holdersLimit, holdersOffset))
		},
	}
	holders.Flags().IntVar(&holdersLimit, "limit", solscan.DefaultLimit, "number of holders")
	holders.Flags().IntVar(&holdersOffset, "offset", 0, "pagination offset")

	meta := &cobra.Command{
		Use:   "meta <token-address>",
		Short: "Metadata for an SPL token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetTokenMeta(cmd.Context(), args[0]))
		},
	}

	var sortBy, direction string
	var listLimit, listOffset int
	list := &cobra.Command{
		Use:   "list",
		Short: "Token listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetTokenList(cmd.Context(), sortBy, direction, listLimit, listOffset))
		},
	}
	list.Flags().StringVar(&sortBy, "sort-by", solscan.DefaultSortBy, "sort field")
	list.Flags().StringVar(&direction, "direction", solscan.DefaultDirection, "sort direction (asc or desc)")
	list.Flags().IntVar(&listLimit, "limit", solscan.DefaultLimit, "number of tokens")
	list.Flags().IntVar(&listOffset, "offset", 0, "pagination offset")

	market := &cobra.Command{
		Use:   "market <token-address>",
		Short: "Market data for an SPL token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(client.GetMarketTokenInfo(cmd.Context(), args[0]))
		},
	}

	cmd.AddCommand(holders, meta, list, market)
	return cmd
}
