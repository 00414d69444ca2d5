package cmd

import (
	"github.com/spf13/cobra"

	matscholar "github.com/materialsintelligence/matscholar-go/pkg/matscholar-sdk"
)

var (
	closeWordsNegative     []string
	closeWordsTopK         int
	closeWordsGuessMissing bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "close-words <positive word/phrase>...",
		Short: "List the words/phrases closest to the given ones by cosine similarity",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCloseWords,
	}

	cmd.Flags().StringSliceVar(&closeWordsNegative, "negative", nil, "negative contributions to the cumulative embedding (repeatable)")
	cmd.Flags().IntVar(&closeWordsTopK, "top-k", 10, "number of top results to return")
	cmd.Flags().BoolVar(&closeWordsGuessMissing, "guess-missing", false, "guess embeddings for out-of-vocabulary words instead of ignoring them")

	rootCmd.AddCommand(cmd)
}

func runCloseWords(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	opts := []matscholar.QueryOption{matscholar.WithTopK(closeWordsTopK)}
	if len(closeWordsNegative) > 0 {
		opts = append(opts, matscholar.WithNegative(closeWordsNegative...))
	}
	if closeWordsGuessMissing {
		opts = append(opts, matscholar.WithGuessMissing())
	}

	res, err := c.CloseWords(cmd.Context(), args, opts...)
	if err != nil {
		return err
	}
	return printJSON(res)
}
