package cmd

import (
	"github.com/spf13/cobra"

	matscholar "github.com/materialsintelligence/matscholar-go/pkg/matscholar-sdk"
)

var embedGuessMissing bool

func init() {
	cmd := &cobra.Command{
		Use:   "embed <wordphrase>...",
		Short: "Retrieve embedding vectors for one or more wordphrases",
		Long: "A single wordphrase is fetched with a GET to /embeddings/{wordphrase}; " +
			"several wordphrases are posted as a batch to /embeddings.",
		Args: cobra.MinimumNArgs(1),
		RunE: runEmbed,
	}

	cmd.Flags().BoolVar(&embedGuessMissing, "guess-missing", false, "guess embeddings for out-of-vocabulary words based on string similarity")

	rootCmd.AddCommand(cmd)
}

func runEmbed(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	var opts []matscholar.QueryOption
	if embedGuessMissing {
		opts = append(opts, matscholar.WithGuessMissing())
	}

	var res *matscholar.EmbeddingsResult
	if len(args) == 1 {
		res, err = c.GetEmbedding(cmd.Context(), args[0], opts...)
	} else {
		res, err = c.GetEmbeddings(cmd.Context(), args, opts...)
	}
	if err != nil {
		return err
	}
	return printJSON(res)
}
