package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/wordguess/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage candidate words",
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <source>",
	Short: "Replace the stored word list with a file, URL or the builtin list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		src, err := words.Open(args[0], nil)
		if err != nil {
			return err
		}
		list, err := src.Load(ctx)
		if err != nil {
			return err
		}

		st, err := openStore("")
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.WordRepo().ReplaceWords(ctx, list)
		if err != nil {
			return fmt.Errorf("import words: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d words from %s.\n", n, src)
		return nil
	},
}

var wordsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print how many words the configured source offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := words.Open(cfg.Words, storeWords)
		if err != nil {
			return err
		}
		n, err := countWords(cmd.Context(), src)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d words in %s\n", n, src)
		return nil
	},
}

// countWords counts in the database for sqlite sources and loads the list
// otherwise.
func countWords(ctx context.Context, src words.Source) (int, error) {
	if ss, ok := src.(words.StoreSource); ok {
		if c, ok := ss.Repo.(interface {
			CountWords(context.Context) (int, error)
		}); ok {
			return c.CountWords(ctx)
		}
	}
	list, err := src.Load(ctx)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func init() {
	wordsCmd.AddCommand(wordsImportCmd)
	wordsCmd.AddCommand(wordsCountCmd)
}
