package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	ta "github.com/movekit/typeaccessor"
	"github.com/movekit/typeaccessor/pkg/move"
)

var (
	flagEndpoint    string
	flagNetwork     string
	flagNoRecurse   bool
	flagConcurrency int
	flagOutput      string
	flagTimeout     time.Duration
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <module>...",
	Short: "Resolve the field types of one or more modules",
	Long: `Resolve fetches the named modules (address::name form), indexes every
struct field's declared type, and recursively resolves the modules those
types reference. The finished index is printed to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]move.ModuleID, 0, len(args))
		for _, arg := range args {
			id, err := move.ParseModuleID(arg)
			if err != nil {
				return fmt.Errorf("module %q: %w", arg, err)
			}
			ids = append(ids, id)
		}

		if flagEndpoint != "" {
			cfg.Endpoint = flagEndpoint
		} else if cfg.Endpoint == "" {
			network := ta.Network(flagNetwork)
			if !network.IsValid() {
				return fmt.Errorf("unknown network %q", flagNetwork)
			}
			cfg.Endpoint = network.Endpoint()
		}
		if flagConcurrency > 0 {
			cfg.FetchConcurrency = flagConcurrency
		}
		if flagNoRecurse {
			cfg.NoRecurse = true
		}

		src, err := cfg.Source()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if flagTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, flagTimeout)
			defer cancel()
		}

		builder := ta.NewBuilder(
			ta.WithLogger(logger),
			ta.WithFetchConcurrency(cfg.FetchConcurrency),
		).Source(src).LookupModules(ids...)
		if cfg.NoRecurse {
			builder.NoRecurse()
		}

		started := time.Now()
		accessor, err := builder.Build(ctx)
		if err != nil {
			return err
		}
		logger.Info().
			Int("modules", accessor.Len()).
			Dur("elapsed", time.Since(started)).
			Msg("index complete")

		switch flagOutput {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(accessor)
		case "text":
			printText(accessor)
			return nil
		default:
			return fmt.Errorf("unknown output format %q", flagOutput)
		}
	},
}

// printText renders the index as an indented module / struct / field tree.
func printText(accessor *ta.TypeAccessor) {
	for _, id := range accessor.Modules() {
		fmt.Println(id)
		for _, structName := range accessor.Structs(id) {
			fmt.Printf("  %s\n", structName)
			for _, fieldName := range accessor.Fields(id, structName) {
				typ, _ := accessor.Lookup(id, structName, fieldName)
				fmt.Printf("    %s: %s\n", fieldName, typ)
			}
		}
	}
}

func init() {
	resolveCmd.Flags().StringVarP(&flagEndpoint, "endpoint", "e", "", "node REST API base URL (overrides --network and config)")
	resolveCmd.Flags().StringVarP(&flagNetwork, "network", "n", "mainnet", "well-known network: mainnet, testnet, devnet")
	resolveCmd.Flags().BoolVar(&flagNoRecurse, "no-recurse", false, "index only the named modules")
	resolveCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "parallel fetches per round (0 = config value)")
	resolveCmd.Flags().StringVarP(&flagOutput, "output", "o", "text", "output format: text or json")
	resolveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "overall resolution deadline (0 = none)")

	rootCmd.AddCommand(resolveCmd)
}
