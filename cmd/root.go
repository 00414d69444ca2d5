package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/materialsintelligence/matscholar-go/internal/config"
	matscholar "github.com/materialsintelligence/matscholar-go/pkg/matscholar-sdk"
)

var rootCmd = &cobra.Command{
	Use:   "matscholar",
	Short: "Command-line client for the MatScholar text-mining REST API",
	Long: "matscholar is a CLI wrapping the MatScholar SDK: semantic materials search, " +
		"nearest-neighbor word embeddings, co-mention lookup, text preprocessing and " +
		"embedding retrieval. Credentials come from MATERIALS_SCHOLAR_API_KEY (or a .env file).",

	SilenceUsage: true,
}

var endpointFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "override the service endpoint URL (optional)")
}

// Execute is the CLI entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds an SDK client from the environment config plus the
// --endpoint override.
func newClient() (*matscholar.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	endpoint := cfg.Endpoint
	if endpointFlag != "" {
		endpoint = endpointFlag
	}

	var opts []matscholar.Option
	if endpoint != "" {
		opts = append(opts, matscholar.WithEndpoint(endpoint))
	}
	return matscholar.New(cfg.APIKey, opts...)
}

// printJSON renders a result as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
