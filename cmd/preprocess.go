package cmd

import (
	"github.com/spf13/cobra"

	matscholar "github.com/materialsintelligence/matscholar-go/pkg/matscholar-sdk"
)

var (
	preprocessExcludePunct bool
	preprocessPhrases      bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "preprocess <text>",
		Short: "Run chemistry-aware preprocessing on a piece of text",
		Long: "Tokenizes the text with materials-science-aware preprocessing. Sentence " +
			"structure is kept: the output is one token list per sentence.",
		Args: cobra.ExactArgs(1),
		RunE: runPreprocess,
	}

	cmd.Flags().BoolVar(&preprocessExcludePunct, "exclude-punct", false, "remove punctuation tokens")
	cmd.Flags().BoolVar(&preprocessPhrases, "phrases", false, "convert single words to common materials-science phrases separated by _")

	rootCmd.AddCommand(cmd)
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	var opts []matscholar.ProcessOption
	if preprocessExcludePunct {
		opts = append(opts, matscholar.WithExcludePunct())
	}
	if preprocessPhrases {
		opts = append(opts, matscholar.WithPhrases())
	}

	sentences, err := c.ProcessText(cmd.Context(), args[0], opts...)
	if err != nil {
		return err
	}
	return printJSON(sentences)
}
