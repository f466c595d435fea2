package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/movekit/typeaccessor/config"
)

var (
	flagConfig  string
	flagVerbose bool

	cfg    config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "movetype",
	Short: "Field-type resolver for on-chain Move modules",
	Long: `movetype resolves the struct field types of on-chain Move modules.

Given one or more module identifiers it fetches each module's ABI from a
node REST API, records the declared type of every struct field, and
recursively resolves the modules those types reference until the index is
closed.

Examples:
  movetype resolve 0x1::coin
  movetype resolve --network testnet 0x1::coin 0x1::account
  movetype resolve --endpoint https://fullnode.mainnet.aptoslabs.com/v1 0x1::coin
  movetype resolve --no-recurse --output json 0x1::coin`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagConfig != "" {
			cfg, err = config.Load(flagConfig)
		} else {
			cfg = config.Default()
		}
		if err != nil {
			return err
		}

		level := zerolog.WarnLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
