package cmd

import (
	"github.com/spf13/cobra"

	matscholar "github.com/materialsintelligence/matscholar-go/pkg/matscholar-sdk"
)

var (
	matsearchNegative     []string
	matsearchTopK         int
	matsearchGuessMissing bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "matsearch <positive word/phrase>...",
		Short: "Rank materials by similarity to the given words/phrases",
		Long: "Given positive (and optionally negative) words or phrases, returns a ranked " +
			"list of materials with mention counts and similarity scores.",
		Args: cobra.MinimumNArgs(1),
		RunE: runMatsearch,
	}

	cmd.Flags().StringSliceVar(&matsearchNegative, "negative", nil, "negative search criteria (repeatable)")
	cmd.Flags().IntVar(&matsearchTopK, "top-k", 10, "number of top results to return")
	cmd.Flags().BoolVar(&matsearchGuessMissing, "guess-missing", false, "guess embeddings for out-of-vocabulary words instead of ignoring them")

	rootCmd.AddCommand(cmd)
}

func runMatsearch(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	opts := []matscholar.QueryOption{matscholar.WithTopK(matsearchTopK)}
	if len(matsearchNegative) > 0 {
		opts = append(opts, matscholar.WithNegative(matsearchNegative...))
	}
	if matsearchGuessMissing {
		opts = append(opts, matscholar.WithGuessMissing())
	}

	res, err := c.MaterialsSearch(cmd.Context(), args, opts...)
	if err != nil {
		return err
	}
	return printJSON(res)
}
