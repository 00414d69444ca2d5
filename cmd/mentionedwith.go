package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mentionedWithMaterial string

func init() {
	cmd := &cobra.Command{
		Use:   "mentioned-with <word/phrase>...",
		Short: "Check whether a material is mentioned together with any of the words",
		Long: "Returns true when the material formula co-occurs with any of the given words " +
			"in the corpus of abstracts. Words should be preprocessed: lower cased, phrases joined with _.",
		Args: cobra.MinimumNArgs(1),
		RunE: runMentionedWith,
	}

	cmd.Flags().StringVar(&mentionedWithMaterial, "material", "", "material formula to look up (required)")
	_ = cmd.MarkFlagRequired("material")

	rootCmd.AddCommand(cmd)
}

func runMentionedWith(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer c.Close()

	mentioned, err := c.MentionedWith(cmd.Context(), mentionedWithMaterial, args)
	if err != nil {
		return err
	}
	fmt.Println(mentioned)
	return nil
}
