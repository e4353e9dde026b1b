package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-hse-client/hseapi"
	"github.com/jrsteele09/go-hse-client/internal/config"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "hsecli",
		Short:         "Query the HSE app backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newEmailCmd())
	return rootCmd
}

func newSearchCmd() *cobra.Command {
	var scope string
	var count int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search the dump API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := authenticatedClient(cmd.Context())
			if err != nil {
				return err
			}
			records, err := client.Search(cmd.Context(), args[0], hseapi.SearchScope(scope), count)
			if err != nil {
				return err
			}
			return printJSON(records)
		},
	}
	cmd.Flags().StringVarP(&scope, "type", "t", "", "search scope (student, staff, ...); all scopes when omitted")
	cmd.Flags().IntVarP(&count, "count", "c", hseapi.DefaultSearchCount, "number of records to return")
	return cmd
}

func newEmailCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>",
		Short: "Look up the record registered under an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := authenticatedClient(cmd.Context())
			if err != nil {
				return err
			}
			record, err := client.SearchByEmail(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(record)
		},
	}
}

func authenticatedClient(ctx context.Context) (*hseapi.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := hseapi.New(
		hseapi.Credentials{Username: cfg.Username, Password: cfg.Password, ClientID: cfg.ClientID},
		hseapi.WithHTTPTimeout(cfg.HTTPTimeout),
		hseapi.WithDebugLogging(cfg.Debug),
	)
	if err != nil {
		return nil, err
	}

	if err := client.Auth(ctx); err != nil {
		return nil, err
	}
	return client, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding result")
	}
	return nil
}
